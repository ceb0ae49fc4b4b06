package commands

import (
	"context"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/Soumodip04/MindScope-sub001/internal/core/validate"
	"github.com/Soumodip04/MindScope-sub001/pkg/kv"
)

// CheckIn is one mood journal entry.
type CheckIn struct {
	Mood  int
	Note  string
	Email string
	At    time.Time
}

// Validate reports every invalid field of the entry.
func (c CheckIn) Validate() error {
	return criterio.ValidateStruct(
		validate.MoodField("mood", c.Mood),
		validate.NoteField("note", c.Note),
		validate.EmailField("email", c.Email),
	)
}

// entryKeyLayout is fixed width so keys sort in save order.
const entryKeyLayout = "2006-01-02T15:04:05.000000000Z"

// journal keeps check-ins in memory for the lifetime of the process. Save
// waits for latency to mimic a remote write.
type journal struct {
	entries *kv.Store[string, CheckIn]
	latency time.Duration
	now     func() time.Time
}

func newJournal(latency time.Duration) *journal {
	return &journal{
		entries: kv.New[string, CheckIn](),
		latency: latency,
		now:     time.Now,
	}
}

// Save stamps and stores c. It returns ctx.Err() if ctx ends first.
func (j *journal) Save(ctx context.Context, c CheckIn) (CheckIn, error) {
	if j.latency > 0 {
		timer := time.NewTimer(j.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return CheckIn{}, ctx.Err()
		case <-timer.C:
		}
	}

	c.At = j.now()
	j.entries.Set(c.At.UTC().Format(entryKeyLayout), c)
	return c, nil
}

// Entries returns saved check-ins, oldest first.
func (j *journal) Entries() []CheckIn {
	return j.entries.Values()
}
