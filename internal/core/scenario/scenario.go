// Package scenario loads and plays scripted notification timelines. A script
// drives a notify.Center the way application screens do: posting toasts,
// dismissing them, wrapping slow work and gating on validation results.
package scenario

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/Soumodip04/MindScope-sub001/internal/core/notify"
	"github.com/Soumodip04/MindScope-sub001/internal/core/validate"
)

//go:embed demo.yaml
var demoScript []byte

// Script is a named, time-ordered list of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is a single action scheduled At an offset from the start of playback.
// Exactly one of Add, Remove, Clear, Async or Validate is set.
type Step struct {
	At       time.Duration `yaml:"at"`
	Ref      string        `yaml:"ref,omitempty"`
	Add      *AddStep      `yaml:"add,omitempty"`
	Remove   string        `yaml:"remove,omitempty"`
	Clear    bool          `yaml:"clear,omitempty"`
	Async    *AsyncStep    `yaml:"async,omitempty"`
	Validate *ValidateStep `yaml:"validate,omitempty"`
}

// AddStep posts a notification. A nil Duration uses the center default and
// an explicit zero disables expiry.
type AddStep struct {
	Severity   notify.Severity `yaml:"severity"`
	Title      string          `yaml:"title"`
	Message    string          `yaml:"message"`
	Duration   *time.Duration  `yaml:"duration,omitempty"`
	Persistent bool            `yaml:"persistent,omitempty"`
	Actions    []ActionStep    `yaml:"actions,omitempty"`
}

// ActionStep declares a button on a notification.
type ActionStep struct {
	Label string             `yaml:"label"`
	Style notify.ActionStyle `yaml:"style,omitempty"`
}

// AsyncStep simulates a slow operation. A non-empty Fail makes it return an
// error with that message after Delay.
type AsyncStep struct {
	Loading string        `yaml:"loading,omitempty"`
	Success string        `yaml:"success,omitempty"`
	Error   string        `yaml:"error,omitempty"`
	Delay   time.Duration `yaml:"delay"`
	Fail    string        `yaml:"fail,omitempty"`
}

// ValidateStep gates on a list of validation errors.
type ValidateStep struct {
	Errors []string `yaml:"errors"`
}

// Kind names the action a step performs.
func (s Step) Kind() string {
	switch {
	case s.Add != nil:
		return "add"
	case s.Remove != "":
		return "remove"
	case s.Clear:
		return "clear"
	case s.Async != nil:
		return "async"
	case s.Validate != nil:
		return "validate"
	default:
		return ""
	}
}

func (s Step) actionCount() int {
	n := 0
	if s.Add != nil {
		n++
	}
	if s.Remove != "" {
		n++
	}
	if s.Clear {
		n++
	}
	if s.Async != nil {
		n++
	}
	if s.Validate != nil {
		n++
	}
	return n
}

// Input converts the step into a notify.Input. Action triggers post an info
// notification through post.
func (a AddStep) Input(post func(title, message string)) notify.Input {
	in := notify.Input{
		Severity:   a.Severity,
		Title:      a.Title,
		Message:    a.Message,
		Persistent: a.Persistent,
	}
	if in.Severity == "" {
		in.Severity = notify.SeverityInfo
	}
	if a.Duration != nil {
		in.Duration = *a.Duration
		if in.Duration <= 0 {
			in.Duration = notify.NoExpiry
		}
	}

	for _, act := range a.Actions {
		label := act.Label
		in.Actions = append(in.Actions, notify.Action{
			Label: label,
			Style: act.Style,
			Invoke: func() {
				if post != nil {
					post(label, fmt.Sprintf("%q was selected on %q", label, a.Title))
				}
			},
		})
	}
	return in
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &s, nil
}

// Load reads a script from disk.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(data)
}

// Demo returns the built-in demonstration script.
func Demo() *Script {
	s, err := Parse(demoScript)
	if err != nil {
		panic(fmt.Sprintf("embedded demo script: %v", err))
	}
	return s
}

// Duration returns the offset of the last step.
func (s *Script) Duration() time.Duration {
	var last time.Duration
	for _, step := range s.Steps {
		if step.At > last {
			last = step.At
		}
	}
	return last
}

// Validate checks the script for structural errors. Errors are keyed by
// step index, e.g. "steps[2].add.title".
func (s *Script) Validate() error {
	var errs criterio.FieldErrorsBuilder
	if err := validate.Name(s.Name); err != nil {
		errs = errs.Append("name", err)
	}
	if len(s.Steps) == 0 {
		errs = errs.Append("steps", fmt.Errorf("script has no steps"))
	}

	refs := make(map[string]bool)
	var prev time.Duration

	for i, step := range s.Steps {
		field := fmt.Sprintf("steps[%d]", i)

		switch step.actionCount() {
		case 0:
			errs = errs.Append(field, fmt.Errorf("no action (expected one of add, remove, clear, async, validate)"))
			continue
		case 1:
		default:
			errs = errs.Append(field, fmt.Errorf("more than one action"))
			continue
		}

		if step.At < 0 {
			errs = errs.Append(field+".at", fmt.Errorf("must not be negative"))
		} else if step.At < prev {
			errs = errs.Append(field+".at", fmt.Errorf("%s is earlier than the previous step (%s)", step.At, prev))
		} else {
			prev = step.At
		}

		if step.Ref != "" {
			if step.Add == nil {
				errs = errs.Append(field+".ref", fmt.Errorf("ref is only valid on add steps"))
			} else if refs[step.Ref] {
				errs = errs.Append(field+".ref", fmt.Errorf("duplicate ref %q", step.Ref))
			}
			refs[step.Ref] = true
		}

		switch {
		case step.Add != nil:
			errs = validateAdd(errs, field+".add", step.Add)
		case step.Async != nil:
			if step.Async.Delay < 0 {
				errs = errs.Append(field+".async.delay", fmt.Errorf("must not be negative"))
			}
		}
	}

	return errs.ToError()
}

func validateAdd(errs criterio.FieldErrorsBuilder, field string, a *AddStep) criterio.FieldErrorsBuilder {
	if a.Severity != "" && !a.Severity.IsValid() {
		errs = errs.Append(field+".severity", fmt.Errorf("unknown severity %q", a.Severity))
	}
	if a.Title == "" {
		errs = errs.Append(field+".title", fmt.Errorf("title is required"))
	}
	if a.Duration != nil && *a.Duration < 0 {
		errs = errs.Append(field+".duration", fmt.Errorf("must not be negative"))
	}
	for j, act := range a.Actions {
		if act.Label == "" {
			errs = errs.Append(fmt.Sprintf("%s.actions[%d].label", field, j), fmt.Errorf("label is required"))
		}
		if act.Style != "" && act.Style != notify.ActionPrimary && act.Style != notify.ActionSecondary {
			errs = errs.Append(fmt.Sprintf("%s.actions[%d].style", field, j), fmt.Errorf("unknown style %q", act.Style))
		}
	}
	return errs
}
