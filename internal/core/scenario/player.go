package scenario

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Soumodip04/MindScope-sub001/internal/core/feedback"
	"github.com/Soumodip04/MindScope-sub001/internal/core/logging"
	"github.com/Soumodip04/MindScope-sub001/internal/core/notify"
)

// Target is the part of notify.Center a script drives.
type Target interface {
	feedback.Notifier
	Add(in notify.Input) string
	Remove(id string)
	Clear()
}

// Player executes scripts against a Target.
type Player struct {
	target Target
	log    zerolog.Logger
}

// NewPlayer creates a Player for the given target.
func NewPlayer(target Target) *Player {
	return &Player{
		target: target,
		log:    logging.Component("scenario"),
	}
}

// Play runs every step of s at its offset from the moment Play is called.
// Async steps run concurrently; Play returns once all of them have finished.
// If ctx is cancelled, pending steps are skipped, in-flight async steps are
// cancelled and ctx.Err() is returned.
func (p *Player) Play(ctx context.Context, s *Script) error {
	ctx = logging.WithOperation(ctx, "play:"+s.Name)
	start := time.Now()
	refs := make(map[string]string)

	var wg sync.WaitGroup
	defer wg.Wait()

	for i, step := range s.Steps {
		if err := sleepUntil(ctx, start.Add(step.At)); err != nil {
			p.log.Debug().Ctx(ctx).Int("remaining", len(s.Steps)-i).Msg("playback cancelled")
			return err
		}

		stepCtx := logging.WithStep(ctx, fmt.Sprintf("steps[%d]", i))
		p.log.Debug().Ctx(stepCtx).Str("kind", step.Kind()).Dur("at", step.At).Msg("step")

		switch {
		case step.Add != nil:
			id := p.target.Add(step.Add.Input(p.post))
			if step.Ref != "" {
				refs[step.Ref] = id
			}
		case step.Remove != "":
			if id, ok := refs[step.Remove]; ok {
				p.target.Remove(id)
			}
		case step.Clear:
			p.target.Clear()
		case step.Async != nil:
			wg.Add(1)
			go func(a AsyncStep) {
				defer wg.Done()
				_, _ = feedback.WithAsync(stepCtx, p.target, feedback.AsyncText{
					Loading: a.Loading,
					Success: a.Success,
					Error:   a.Error,
				}, simulate(a))
			}(*step.Async)
		case step.Validate != nil:
			feedback.Gate(p.target, step.Validate.Errors)
		}
	}

	return nil
}

func (p *Player) post(title, message string) {
	p.target.Info(title, message)
}

// simulate returns an operation that waits for a.Delay and then succeeds or
// fails according to a.Fail.
func simulate(a AsyncStep) func(context.Context) (struct{}, error) {
	return func(ctx context.Context) (struct{}, error) {
		if err := sleepUntil(ctx, time.Now().Add(a.Delay)); err != nil {
			return struct{}{}, err
		}
		if a.Fail != "" {
			return struct{}{}, errors.New(a.Fail)
		}
		return struct{}{}, nil
	}
}

func sleepUntil(ctx context.Context, deadline time.Time) error {
	d := time.Until(deadline)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
