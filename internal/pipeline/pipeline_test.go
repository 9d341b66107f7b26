package pipeline

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/sortn/internal/model"
)

// mockStep is a test helper that implements the Step interface.
type mockStep struct {
	name      string
	doFunc    func(batch *model.Batch)
	callCount int
}

// Do implements Step.Do.
func (m *mockStep) Do(batch *model.Batch) {
	m.callCount++
	if m.doFunc != nil {
		m.doFunc(batch)
	}
}

// Name implements Step.Name.
func (m *mockStep) Name() string {
	return m.name
}

func TestPipelineNew(t *testing.T) {
	t.Parallel()

	t.Run("creates pipeline with default settings", func(t *testing.T) {
		t.Parallel()

		p := New()
		if p == nil {
			t.Fatal("expected non-nil pipeline")
		}
		if p.StepCount() != 0 {
			t.Errorf("expected 0 steps, got %d", p.StepCount())
		}
		if p.logger == nil {
			t.Error("expected default logger")
		}
	})

	t.Run("applies WithLogger option", func(t *testing.T) {
		t.Parallel()

		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		p := New(WithLogger(logger))
		if p.logger != logger {
			t.Error("expected custom logger to be used")
		}
	})
}

func TestPipelineAddStep(t *testing.T) {
	t.Parallel()

	t.Run("adds single step", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{name: "test-step"})

		if p.StepCount() != 1 {
			t.Errorf("expected 1 step, got %d", p.StepCount())
		}
	})

	t.Run("adds multiple steps with AddSteps", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddSteps(&mockStep{name: "step-1"}, &mockStep{name: "step-2"}, &mockStep{name: "step-3"})

		if p.StepCount() != 3 {
			t.Errorf("expected 3 steps, got %d", p.StepCount())
		}
	})

	t.Run("maintains step order", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{name: "first"})
		p.AddStep(&mockStep{name: "second"})
		p.AddStep(&mockStep{name: "third"})

		want := []string{"first", "second", "third"}
		if diff := cmp.Diff(want, p.StepNames()); diff != "" {
			t.Errorf("step names mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("executes all steps in order", func(t *testing.T) {
		t.Parallel()

		executionOrder := make([]string, 0)

		p := New()
		p.AddStep(&mockStep{
			name: "step-1",
			doFunc: func(_ *model.Batch) {
				executionOrder = append(executionOrder, "step-1")
			},
		})
		p.AddStep(&mockStep{
			name: "step-2",
			doFunc: func(_ *model.Batch) {
				executionOrder = append(executionOrder, "step-2")
			},
		})

		batch := model.NewBatch([]string{"a"})
		p.Execute(batch)

		want := []string{"step-1", "step-2"}
		if diff := cmp.Diff(want, executionOrder); diff != "" {
			t.Errorf("execution order mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(want, batch.PerformedSteps); diff != "" {
			t.Errorf("performed steps mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("each step sees the previous step's output", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{
			name: "append",
			doFunc: func(b *model.Batch) {
				b.Lines = append(b.Lines, "added")
			},
		})
		var seen int
		p.AddStep(&mockStep{
			name: "count",
			doFunc: func(b *model.Batch) {
				seen = b.Len()
			},
		})

		p.Execute(model.NewBatch([]string{"x"}))

		if seen != 2 {
			t.Errorf("expected second step to see 2 lines, got %d", seen)
		}
	})

	t.Run("empty pipeline leaves batch unchanged", func(t *testing.T) {
		t.Parallel()

		batch := model.NewBatch([]string{"b", "a"})
		New().Execute(batch)

		if diff := cmp.Diff([]string{"b", "a"}, batch.Lines); diff != "" {
			t.Errorf("lines mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("logs each step at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		p := New(WithLogger(logger))
		p.AddStep(NewSortStep())
		p.Execute(model.NewBatch([]string{"10", "2"}))

		output := buf.String()
		if !strings.Contains(output, "step=sort") {
			t.Errorf("expected step name in log, got %s", output)
		}
		if !strings.Contains(output, "head=2") {
			t.Errorf("expected first sorted line in log, got %s", output)
		}
	})

	t.Run("reports unbalanced batches", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		p := New(WithLogger(logger))
		p.AddStep(&mockStep{
			name: "lossy",
			doFunc: func(b *model.Batch) {
				b.Lines = b.Lines[:0]
			},
		})
		p.Execute(model.NewBatch([]string{"x"}))

		if !strings.Contains(buf.String(), "line accounting mismatch") {
			t.Errorf("expected accounting error, got %s", buf.String())
		}
	})
}
