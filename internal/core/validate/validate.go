// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/hay-kot/criterio"
)

const (
	// MinMood and MaxMood bound the check-in mood rating.
	MinMood = 1
	MaxMood = 5
	// MaxNoteLength is the longest accepted check-in note, in runes.
	MaxNoteLength = 280
)

// Name validates a name is non-empty after trimming whitespace.
func Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// Mood validates a mood rating is within range.
func Mood(mood int) error {
	if mood < MinMood || mood > MaxMood {
		return fmt.Errorf("mood must be between %d and %d", MinMood, MaxMood)
	}
	return nil
}

// Note validates a free-form note does not exceed MaxNoteLength.
func Note(note string) error {
	if n := utf8.RuneCountInString(note); n > MaxNoteLength {
		return fmt.Errorf("note is %d characters, limit is %d", n, MaxNoteLength)
	}
	return nil
}

// Email validates an optional email address. Empty is accepted.
func Email(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("email %q is not a valid address", email)
	}
	return nil
}

// NameField returns a criterio validator for names.
func NameField(field, name string) error {
	return criterio.Run(field, name, Name)
}

// MoodField returns a criterio validator for mood ratings.
func MoodField(field string, mood int) error {
	return criterio.Run(field, mood, Mood)
}

// NoteField returns a criterio validator for notes.
func NoteField(field, note string) error {
	return criterio.Run(field, note, Note)
}

// EmailField returns a criterio validator for optional emails.
func EmailField(field, email string) error {
	return criterio.Run(field, email, Email)
}
