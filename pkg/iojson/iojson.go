// iojson are utilities for writing JSON IO from a command line interface
// perspective.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

// Error is the standard error format type that is written when errors
// happen.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func jsonError(msg string, jsonErr error) string {
	// Use json.Marshal to properly escape strings
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(jsonErr.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// MarshalError builds a JSON error document. If marshaling fails the
// returned blob still carries msg together with the marshal error.
func MarshalError(msg string, data map[string]any) string {
	bits, err := json.Marshal(Error{Message: msg, Data: data})
	if err != nil {
		return jsonError(msg, err)
	}
	return string(bits)
}

// WriteWith writes obj as indented JSON to w. Marshal failures are reported
// on ew.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, err = fmt.Fprintln(ew, jsonError("error marshaling in iojson.Write", err))
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write calls WriteWith with [os.Stdout] and [os.Stderr]
func Write(obj any) error {
	return WriteWith(os.Stdout, os.Stderr, obj)
}

// LineWriter writes one compact JSON document per line. It is safe for
// concurrent use.
type LineWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
	w   io.Writer
}

// NewLineWriter returns a LineWriter targeting w.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{enc: json.NewEncoder(w), w: w}
}

// Write encodes obj as a single line. When obj cannot be encoded an Error
// document is written in its place and the encode error is returned.
func (l *LineWriter) Write(obj any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.enc.Encode(obj); err != nil {
		_, _ = fmt.Fprintln(l.w, MarshalError("encode failed", map[string]any{"error": err.Error()}))
		return err
	}
	return nil
}
