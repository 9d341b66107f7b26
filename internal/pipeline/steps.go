package pipeline

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/nao1215/sortn/internal/config"
	"github.com/nao1215/sortn/internal/model"
	"github.com/nao1215/sortn/internal/natural"
)

// Step names, as recorded in model.Batch.PerformedSteps.
const (
	StepSkipBlankLines = "skip-blank-lines"
	StepShuffle        = "shuffle"
	StepSort           = "sort"
	StepUnique         = "unique"
)

// BlankFilterStep drops lines that are empty after trimming leading and
// trailing whitespace. The remaining lines keep their order and content.
type BlankFilterStep struct{}

// NewBlankFilterStep creates a BlankFilterStep.
func NewBlankFilterStep() *BlankFilterStep {
	return &BlankFilterStep{}
}

// Name returns the step name.
func (s *BlankFilterStep) Name() string {
	return StepSkipBlankLines
}

// Do removes blank lines from batch.
func (s *BlankFilterStep) Do(batch *model.Batch) {
	before := len(batch.Lines)
	batch.Lines = slices.DeleteFunc(batch.Lines, func(line string) bool {
		return strings.TrimSpace(line) == ""
	})
	batch.BlankDropped += before - len(batch.Lines)
}

// SortStep orders lines naturally by their comparison keys.
// The sort is not stable: lines with equal keys may end up in any order
// relative to each other.
type SortStep struct {
	key     KeyFunc
	reverse bool
}

// SortStepOption configures a SortStep.
type SortStepOption func(*SortStep)

// WithSortKey sets the KeyFunc lines are compared by. Default: ExactKey.
func WithSortKey(key KeyFunc) SortStepOption {
	return func(s *SortStep) {
		if key != nil {
			s.key = key
		}
	}
}

// WithSortReverse negates the ordering. Lines with equal keys stay equal.
func WithSortReverse(reverse bool) SortStepOption {
	return func(s *SortStep) {
		s.reverse = reverse
	}
}

// NewSortStep creates a SortStep.
func NewSortStep(opts ...SortStepOption) *SortStep {
	s := &SortStep{key: ExactKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *SortStep) Name() string {
	return StepSort
}

// keyedLine pairs a line with its precomputed comparison key.
type keyedLine struct {
	key  string
	line string
}

// Do sorts batch.Lines in place.
func (s *SortStep) Do(batch *model.Batch) {
	// Keys are derived once per line, not once per comparison.
	keyed := make([]keyedLine, len(batch.Lines))
	for i, line := range batch.Lines {
		keyed[i] = keyedLine{key: s.key(line), line: line}
	}

	compare := natural.Compare
	if s.reverse {
		compare = natural.Reverse(compare)
	}
	slices.SortFunc(keyed, func(a, b keyedLine) int {
		return compare(a.key, b.key)
	})

	for i, kl := range keyed {
		batch.Lines[i] = kl.line
	}
}

// ShuffleStep puts lines into a uniformly random order.
type ShuffleStep struct {
	rng *rand.Rand
}

// NewShuffleStep creates a ShuffleStep drawing from rng.
// A nil rng uses the automatically seeded top-level source, so every run
// produces a different permutation.
func NewShuffleStep(rng *rand.Rand) *ShuffleStep {
	return &ShuffleStep{rng: rng}
}

// Name returns the step name.
func (s *ShuffleStep) Name() string {
	return StepShuffle
}

// Do shuffles batch.Lines in place.
func (s *ShuffleStep) Do(batch *model.Batch) {
	lines := batch.Lines
	swap := func(i, j int) { lines[i], lines[j] = lines[j], lines[i] }

	if s.rng != nil {
		s.rng.Shuffle(len(lines), swap)
		return
	}
	rand.Shuffle(len(lines), swap)
}

// DedupeStep keeps the first line of each comparison key, walking the batch
// in its current order, and drops the rest.
type DedupeStep struct {
	key KeyFunc
}

// NewDedupeStep creates a DedupeStep comparing keys derived by key.
// A nil key means ExactKey.
func NewDedupeStep(key KeyFunc) *DedupeStep {
	if key == nil {
		key = ExactKey
	}
	return &DedupeStep{key: key}
}

// Name returns the step name.
func (s *DedupeStep) Name() string {
	return StepUnique
}

// Do removes lines whose key was already seen earlier in batch.
func (s *DedupeStep) Do(batch *model.Batch) {
	seen := make(map[string]struct{}, len(batch.Lines))
	kept := batch.Lines[:0]

	for _, line := range batch.Lines {
		k := s.key(line)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		kept = append(kept, line)
	}

	batch.DuplicatesDropped += len(batch.Lines) - len(kept)
	clear(batch.Lines[len(kept):])
	batch.Lines = kept
}

// DefaultPipelineConfig holds settings for the default pipeline that do not
// come from config.Config.
type DefaultPipelineConfig struct {
	// Rand is the randomness source of the shuffle step.
	// Nil means the automatically seeded top-level source.
	Rand *rand.Rand
}

// DefaultPipelineOption configures a DefaultPipelineConfig.
type DefaultPipelineOption func(*DefaultPipelineConfig)

// WithPipelineRand sets the randomness source of the shuffle step.
func WithPipelineRand(rng *rand.Rand) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Rand = rng
	}
}

// DefaultPipeline creates the pipeline described by cfg.
//
// The first variadic parameter accepts pipeline options (WithLogger, etc).
// The second accepts step settings (WithPipelineRand).
func DefaultPipeline(cfg *config.Config, pipelineOpts []Option, configOpts ...DefaultPipelineOption) *Pipeline {
	p := New(pipelineOpts...)

	dc := &DefaultPipelineConfig{}
	for _, opt := range configOpts {
		opt(dc)
	}

	// Ordering and uniqueness share one folding rule.
	key := KeyFor(cfg.IgnoreCase)

	if cfg.SkipBlankLines {
		p.AddStep(NewBlankFilterStep())
	}

	if cfg.Randomize {
		p.AddStep(NewShuffleStep(dc.Rand))
	} else {
		p.AddStep(NewSortStep(
			WithSortKey(key),
			WithSortReverse(cfg.Reverse),
		))
	}

	if cfg.Unique {
		p.AddStep(NewDedupeStep(key))
	}

	return p
}

// Run builds the default pipeline for cfg, executes it over lines and
// returns the resulting batch.
func Run(cfg *config.Config, lines []string, pipelineOpts ...Option) *model.Batch {
	batch := model.NewBatch(lines)
	DefaultPipeline(cfg, pipelineOpts).Execute(batch)
	return batch
}
