// Package utils holds small IO helpers shared by commands.
package utils

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// DeferredWriter holds log output in memory while a full-screen program owns
// the terminal and releases it on Flush. Safe for concurrent use.
//
// When Limit is positive, whole writes that would grow the buffer past Limit
// bytes are discarded and counted; Flush reports how many were dropped.
type DeferredWriter struct {
	Limit int

	mu      sync.Mutex
	buf     bytes.Buffer
	dropped int
}

// NewDeferredWriter returns a DeferredWriter capped at limit bytes.
func NewDeferredWriter(limit int) *DeferredWriter {
	return &DeferredWriter{Limit: limit}
}

// Write stores p in the internal buffer. It never fails so log writers keep
// running when the cap is reached.
func (d *DeferredWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.Limit > 0 && d.buf.Len()+len(p) > d.Limit {
		d.dropped++
		return len(p), nil
	}
	return d.buf.Write(p)
}

// Dropped returns the number of writes discarded since the last Flush.
func (d *DeferredWriter) Dropped() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dropped
}

// Flush writes all buffered data to w and resets the buffer.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.buf.Len() > 0 {
		if _, err := d.buf.WriteTo(w); err != nil {
			return err
		}
	}
	if d.dropped > 0 {
		_, err := fmt.Fprintf(w, "(%d log writes dropped while the terminal was busy)\n", d.dropped)
		d.dropped = 0
		return err
	}
	return nil
}
