package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"syscall"
)

// WriteLines writes each line followed by "\n" to w.
//
// If w reports a broken pipe, writing stops and WriteLines returns nil: the
// consumer no longer wants output, which is not an error. Any other write
// failure is returned.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)

	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return classifyWriteError(err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return classifyWriteError(err)
		}
	}

	return classifyWriteError(bw.Flush())
}

// IsBrokenPipe reports whether err means the receiving end of the output
// has been closed.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}

func classifyWriteError(err error) error {
	if err == nil || IsBrokenPipe(err) {
		return nil
	}
	return fmt.Errorf("failed to write output: %w", err)
}
