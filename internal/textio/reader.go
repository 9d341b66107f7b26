package textio

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// StdinName is the input name that stands for standard input.
const StdinName = "-"

// DefaultConcurrency is the number of inputs a Loader reads at the same time
// unless configured otherwise.
const DefaultConcurrency = 4

// ErrInvalidUTF8 is returned when an input line is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// ReadLines reads r to the end and returns its lines. Each line has its
// "\n" or "\r\n" terminator removed; a final line without a terminator is
// kept as is. There is no limit on line length.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	lines := make([]string, 0)

	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read line %d: %w", lineNo, err)
		}
		if line == "" && err != nil {
			break
		}

		if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(trimmed, "\r")
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrInvalidUTF8)
		}
		lines = append(lines, line)

		if err != nil {
			break
		}
	}

	return lines, nil
}

// Opener opens a named input for reading.
type Opener func(name string) (io.ReadCloser, error)

// openFile is the default Opener.
func openFile(name string) (io.ReadCloser, error) {
	return os.Open(name) //nolint:gosec // Reading user-named files is the point
}

// Loader reads several inputs concurrently and concatenates their lines in
// the order the inputs were named.
type Loader struct {
	// concurrency is the maximum number of inputs read at once.
	concurrency int

	// logger is used for load-level logging.
	logger *slog.Logger

	// stdin is read for inputs named StdinName.
	stdin io.Reader

	// stdinMu serializes reads of stdin when it is named more than once.
	stdinMu sync.Mutex

	// open opens every other input.
	open Opener
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConcurrency sets the maximum number of inputs read at once.
// Values below 1 are ignored.
func WithConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// WithLoaderLogger sets a custom logger for loading.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithStdin sets the reader used for inputs named StdinName.
func WithStdin(r io.Reader) LoaderOption {
	return func(l *Loader) {
		l.stdin = r
	}
}

// WithOpener sets how named inputs are opened. Default: os.Open.
func WithOpener(open Opener) LoaderOption {
	return func(l *Loader) {
		l.open = open
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		concurrency: DefaultConcurrency,
		stdin:       os.Stdin,
		open:        openFile,
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.logger == nil {
		l.logger = slog.Default()
	}

	return l
}

// Load reads every named input and returns all lines, input by input.
// The first failure cancels the remaining reads and is returned; in that
// case no lines are returned.
func (l *Loader) Load(ctx context.Context, names []string) ([]string, error) {
	l.logger.Debug("loading inputs",
		"inputs", names,
		"concurrency", l.concurrency,
	)

	results := make([][]string, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, name := range names {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			lines, err := l.readOne(name)
			if err != nil {
				return fmt.Errorf("%s: %w", displayName(name), err)
			}
			results[i] = lines

			l.logger.Debug("input read",
				"input", displayName(name),
				"lines", len(lines),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	lines := make([]string, 0, total)
	for _, r := range results {
		lines = append(lines, r...)
	}
	return lines, nil
}

func (l *Loader) readOne(name string) ([]string, error) {
	if name == StdinName {
		l.stdinMu.Lock()
		defer l.stdinMu.Unlock()
		return ReadLines(l.stdin)
	}

	f, err := l.open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadLines(f)
}

func displayName(name string) string {
	if name == StdinName {
		return "stdin"
	}
	return name
}
