// Package workflow runs multi-call Power BI operations as an ordered list of
// steps. When a step fails, the steps that already ran are undone in reverse
// order, so a report move never leaves a clone behind.
//
//	wf := workflow.New("move report r1", logger)
//	src, err := workflow.Lookup(ctx, wf, "report:r1", fetchReport)
//	wf.Add(cloneStep)
//	wf.Add(deleteStep)
//	err = wf.Run(ctx)
//
// A Workflow is single use: build it, run it once, discard it.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

var (
	// ErrAlreadyRun is returned by Add and Run once Run has been called.
	ErrAlreadyRun = errors.New("workflow: already run")

	// ErrNilStep is returned by Add for a nil step.
	ErrNilStep = errors.New("workflow: nil step")

	// ErrTypeMismatch is returned by Lookup when a key was cached with a
	// different type.
	ErrTypeMismatch = errors.New("workflow: cached value type mismatch")
)

// Step is one API call with a compensating call.
type Step interface {
	// Execute performs the call.
	Execute(ctx context.Context) error

	// Undo reverses a successful Execute. Steps that cannot be reversed
	// return nil and belong at the end of the workflow.
	Undo(ctx context.Context) error

	// String describes the step for logs and errors, e.g.
	// "clone report r1 into g2".
	String() string
}

// StepError reports the step that failed and any undo that failed after it.
type StepError struct {
	Step    string
	Err     error
	UndoErr error
}

func (e *StepError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %v", e.Step, e.Err)
	if e.UndoErr != nil {
		fmt.Fprintf(&b, " (undo failed: %v)", e.UndoErr)
	}
	return b.String()
}

func (e *StepError) Unwrap() error { return e.Err }

// Workflow holds the lookups and steps of one operation.
type Workflow struct {
	name   string
	logger *slog.Logger

	lookups map[string]lookup

	mu    sync.Mutex
	steps []Step
	ran   bool
}

type lookup struct {
	value any
	err   error
}

// New returns an empty workflow. name appears in every log record.
func New(name string, logger *slog.Logger) *Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Workflow{
		name:    name,
		logger:  logger.With(slog.String("workflow", name)),
		lookups: make(map[string]lookup),
	}
}

// Lookup returns the value cached under key, calling fetch on the first
// request. Errors are cached too. Lookup is not safe for concurrent use.
func Lookup[T any](ctx context.Context, wf *Workflow, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if l, ok := wf.lookups[key]; ok {
		if l.err != nil {
			return zero, l.err
		}
		v, ok := l.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: %q holds %T, want %T", ErrTypeMismatch, key, l.value, zero)
		}
		return v, nil
	}

	v, err := fetch(ctx)
	wf.lookups[key] = lookup{value: v, err: err}
	return v, err
}

// Add appends a step.
func (wf *Workflow) Add(step Step) error {
	if step == nil {
		return ErrNilStep
	}

	wf.mu.Lock()
	defer wf.mu.Unlock()

	if wf.ran {
		return ErrAlreadyRun
	}
	wf.steps = append(wf.steps, step)
	return nil
}

// Run executes the steps in order. On the first failure the completed steps
// are undone newest first and a *StepError is returned. Every undo is
// attempted even if an earlier one fails.
func (wf *Workflow) Run(ctx context.Context) error {
	wf.mu.Lock()
	if wf.ran {
		wf.mu.Unlock()
		return ErrAlreadyRun
	}
	wf.ran = true
	steps := wf.steps
	wf.mu.Unlock()

	for i, step := range steps {
		wf.logger.DebugContext(ctx, "running step",
			slog.Int("step", i+1),
			slog.Int("total", len(steps)),
			slog.String("action", step.String()),
		)

		if err := step.Execute(ctx); err != nil {
			wf.logger.ErrorContext(ctx, "step failed, undoing completed steps",
				slog.Int("step", i+1),
				slog.String("action", step.String()),
				slog.Any("error", err),
			)
			return &StepError{Step: step.String(), Err: err, UndoErr: wf.undo(ctx, steps[:i])}
		}
	}
	return nil
}

func (wf *Workflow) undo(ctx context.Context, done []Step) error {
	var errs []error
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if err := step.Undo(ctx); err != nil {
			wf.logger.ErrorContext(ctx, "undo failed",
				slog.Int("step", i+1),
				slog.String("action", step.String()),
				slog.Any("error", err),
			)
			errs = append(errs, fmt.Errorf("undo %s: %w", step, err))
		}
	}
	return errors.Join(errs...)
}
