package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errTerminated = errors.New("session terminated")

type readResult struct {
	line string
	err  error
}

// lineReader hands lines from the input to the session so that a blocked read can be
// abandoned when the context is cancelled. Lines have no length limit.
type lineReader struct {
	results <-chan readResult
	stop    chan struct{}
}

func newLineReader(input io.Reader) *lineReader {
	results := make(chan readResult)
	stop := make(chan struct{})

	go func() {
		defer close(results)

		reader := bufio.NewReader(input)
		for {
			line, err := reader.ReadString('\n')

			// A final line without a newline is still delivered before EOF
			if line != "" || (err != nil && !errors.Is(err, io.EOF)) {
				result := readResult{line: strings.TrimRight(line, "\r\n")}
				if err != nil && !errors.Is(err, io.EOF) {
					result = readResult{err: fmt.Errorf("read input: %w", err)}
				}

				select {
				case results <- result:
				case <-stop:
					return
				}
			}

			if err != nil {
				return
			}
		}
	}()

	return &lineReader{results: results, stop: stop}
}

// ReadLine returns errTerminated on cancellation or once the input is exhausted,
// any other read failure is returned as is
func (r *lineReader) ReadLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", errTerminated
	}

	select {
	case <-ctx.Done():
		return "", errTerminated
	case result, ok := <-r.results:
		if !ok {
			return "", errTerminated
		}

		return result.line, result.err
	}
}

func (r *lineReader) Close() {
	close(r.stop)
}
