package workflow_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-powerbi/internal/app/workflow"
)

// recordingStep appends "exec:<name>" and "undo:<name>" to a shared log.
type recordingStep struct {
	name    string
	log     *[]string
	execErr error
	undoErr error
}

func (s *recordingStep) Execute(context.Context) error {
	*s.log = append(*s.log, "exec:"+s.name)
	return s.execErr
}

func (s *recordingStep) Undo(context.Context) error {
	*s.log = append(*s.log, "undo:"+s.name)
	return s.undoErr
}

func (s *recordingStep) String() string { return s.name }

func TestRun(t *testing.T) {
	t.Parallel()

	errAPI := errors.New("403 Forbidden")
	errUndo := errors.New("404 Not Found")

	tests := []struct {
		name     string
		steps    func(log *[]string) []workflow.Step
		wantLog  []string
		wantErr  error
		wantUndo bool
	}{
		{
			name: "all steps succeed",
			steps: func(log *[]string) []workflow.Step {
				return []workflow.Step{
					&recordingStep{name: "clone", log: log},
					&recordingStep{name: "delete", log: log},
				}
			},
			wantLog: []string{"exec:clone", "exec:delete"},
		},
		{
			name: "last step fails",
			steps: func(log *[]string) []workflow.Step {
				return []workflow.Step{
					&recordingStep{name: "clone", log: log},
					&recordingStep{name: "rebind", log: log},
					&recordingStep{name: "delete", log: log, execErr: errAPI},
				}
			},
			wantLog: []string{"exec:clone", "exec:rebind", "exec:delete", "undo:rebind", "undo:clone"},
			wantErr: errAPI,
		},
		{
			name: "first step fails",
			steps: func(log *[]string) []workflow.Step {
				return []workflow.Step{
					&recordingStep{name: "clone", log: log, execErr: errAPI},
					&recordingStep{name: "delete", log: log},
				}
			},
			wantLog: []string{"exec:clone"},
			wantErr: errAPI,
		},
		{
			name: "undo failure does not stop undo",
			steps: func(log *[]string) []workflow.Step {
				return []workflow.Step{
					&recordingStep{name: "clone", log: log},
					&recordingStep{name: "rebind", log: log, undoErr: errUndo},
					&recordingStep{name: "delete", log: log, execErr: errAPI},
				}
			},
			wantLog:  []string{"exec:clone", "exec:rebind", "exec:delete", "undo:rebind", "undo:clone"},
			wantErr:  errAPI,
			wantUndo: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var log []string
			wf := workflow.New("test", nil)
			for _, s := range tt.steps(&log) {
				if err := wf.Add(s); err != nil {
					t.Fatalf("Add() error = %v", err)
				}
			}

			err := wf.Run(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if strings.Join(log, ",") != strings.Join(tt.wantLog, ",") {
				t.Errorf("log = %v, want %v", log, tt.wantLog)
			}

			if tt.wantErr == nil {
				return
			}
			var serr *workflow.StepError
			if !errors.As(err, &serr) {
				t.Fatalf("Run() error = %T, want *StepError", err)
			}
			if (serr.UndoErr != nil) != tt.wantUndo {
				t.Errorf("UndoErr = %v, want undo failure %v", serr.UndoErr, tt.wantUndo)
			}
			if tt.wantUndo && !errors.Is(serr.UndoErr, errUndo) {
				t.Errorf("UndoErr = %v, want %v", serr.UndoErr, errUndo)
			}
		})
	}
}

func TestStepError_Message(t *testing.T) {
	t.Parallel()

	err := &workflow.StepError{
		Step:    "delete report r1 in g1",
		Err:     errors.New("403 Forbidden"),
		UndoErr: errors.New("undo clone: 404 Not Found"),
	}
	want := "delete report r1 in g1: 403 Forbidden (undo failed: undo clone: 404 Not Found)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestRun_Once(t *testing.T) {
	t.Parallel()

	var log []string
	wf := workflow.New("test", nil)
	_ = wf.Add(&recordingStep{name: "clone", log: &log})

	if err := wf.Run(context.Background()); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if err := wf.Run(context.Background()); !errors.Is(err, workflow.ErrAlreadyRun) {
		t.Errorf("second Run() error = %v, want ErrAlreadyRun", err)
	}
	if err := wf.Add(&recordingStep{name: "delete", log: &log}); !errors.Is(err, workflow.ErrAlreadyRun) {
		t.Errorf("Add() after Run error = %v, want ErrAlreadyRun", err)
	}
	if len(log) != 1 {
		t.Errorf("log = %v, want one execution", log)
	}
}

func TestAdd_Nil(t *testing.T) {
	t.Parallel()

	if err := workflow.New("test", nil).Add(nil); !errors.Is(err, workflow.ErrNilStep) {
		t.Errorf("Add(nil) error = %v, want ErrNilStep", err)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wf := workflow.New("test", nil)

	calls := 0
	fetch := func(context.Context) (string, error) {
		calls++
		return "Sales", nil
	}

	for range 3 {
		got, err := workflow.Lookup(ctx, wf, "report:r1", fetch)
		if err != nil || got != "Sales" {
			t.Fatalf("Lookup() = %q, %v, want Sales, nil", got, err)
		}
	}
	if calls != 1 {
		t.Errorf("fetch calls = %d, want 1", calls)
	}
}

func TestLookup_CachesErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wf := workflow.New("test", nil)
	errNotFound := errors.New("404 Not Found")

	calls := 0
	fetch := func(context.Context) (int, error) {
		calls++
		return 0, errNotFound
	}

	for range 2 {
		if _, err := workflow.Lookup(ctx, wf, "report:r1", fetch); !errors.Is(err, errNotFound) {
			t.Fatalf("Lookup() error = %v, want %v", err, errNotFound)
		}
	}
	if calls != 1 {
		t.Errorf("fetch calls = %d, want 1", calls)
	}
}

func TestLookup_TypeMismatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wf := workflow.New("test", nil)

	_, _ = workflow.Lookup(ctx, wf, "report:r1", func(context.Context) (string, error) { return "Sales", nil })
	_, err := workflow.Lookup(ctx, wf, "report:r1", func(context.Context) (int, error) { return 1, nil })
	if !errors.Is(err, workflow.ErrTypeMismatch) {
		t.Errorf("Lookup() error = %v, want ErrTypeMismatch", err)
	}
}
