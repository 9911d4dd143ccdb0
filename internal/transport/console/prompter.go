package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const delimiter = "---"

// prompter reads input line by line in its own goroutine so a pending read never blocks cancellation.
type prompter struct {
	out   io.Writer
	lines chan string
	errc  chan error
	done  chan struct{}
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	that := &prompter{
		out:   out,
		lines: make(chan string),
		errc:  make(chan error, 1),
		done:  make(chan struct{}),
	}

	go that.scan(in)

	return that
}

func (that *prompter) scan(in io.Reader) {
	defer close(that.lines)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case that.lines <- scanner.Text():
		case <-that.done:
			return
		}
	}

	that.errc <- scanner.Err()
}

// ask prints the prompt and waits for the next line. It returns io.EOF once input is exhausted.
func (that *prompter) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(that.out, prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if ok {
			return strings.TrimSpace(line), nil
		}
	}

	select {
	case err := <-that.errc:
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	default:
	}

	return "", io.EOF
}

func (that *prompter) println(args ...any) {
	fmt.Fprintln(that.out, args...)
}

func (that *prompter) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

func (that *prompter) close() {
	close(that.done)
}

func isQuit(line string) bool {
	switch strings.ToLower(line) {
	case "q", "quit", "exit":
		return true
	}
	return false
}
