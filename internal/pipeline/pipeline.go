package pipeline

import (
	"log/slog"

	"github.com/nao1215/sortn/internal/model"
)

// Step is one transform over a batch.
type Step interface {
	// Do rewrites batch.Lines and updates the batch's drop counters.
	Do(batch *model.Batch)

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence over batch.
func (p *Pipeline) Execute(batch *model.Batch) {
	p.logger.Debug("executing pipeline",
		"steps", p.StepNames(),
		"lines", batch.Len(),
	)

	for _, step := range p.steps {
		before := batch.Len()

		step.Do(batch)
		batch.PerformedSteps = append(batch.PerformedSteps, step.Name())

		attrs := []any{
			"step", step.Name(),
			"in", before,
			"out", batch.Len(),
		}
		if batch.Len() > 0 {
			attrs = append(attrs, "head", batch.Lines[0])
		}
		p.logger.Debug("step completed", attrs...)
	}

	if !batch.Balanced() {
		p.logger.Error("line accounting mismatch",
			"input", batch.InputCount,
			"output", batch.Len(),
			"blank", batch.BlankDropped,
			"duplicates", batch.DuplicatesDropped,
		)
	}
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
