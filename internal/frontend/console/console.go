// Package console provides line-oriented terminal I/O for the drills menu:
// reading choices and drill inputs, writing prompts and results. The reader
// and writer are injected so tests can script sessions with buffers.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cory-johannsen/drills/internal/config"
)

// Console wraps an input reader and output writer with prompt-and-parse
// helpers. All reads block until a full line arrives.
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	prompt      string
	maxAttempts int
}

// New creates a Console over r and w using the given console configuration.
//
// Precondition: r and w must be non-nil; cfg.MaxPromptAttempts >= 1.
func New(r io.Reader, w io.Writer, cfg config.ConsoleConfig) *Console {
	return &Console{
		in:          bufio.NewReader(r),
		out:         w,
		prompt:      cfg.Prompt,
		maxAttempts: cfg.MaxPromptAttempts,
	}
}

// Printf writes formatted text to the output.
//
// Postcondition: Returns nil on success or the underlying write error.
func (c *Console) Printf(format string, args ...any) error {
	_, err := fmt.Fprintf(c.out, format, args...)
	return err
}

// Println writes a line of text followed by a newline.
func (c *Console) Println(s string) error {
	_, err := fmt.Fprintln(c.out, s)
	return err
}

// ReadLine reads one line of input without the trailing newline.
//
// Postcondition: Returns the next line of text, or an error (including io.EOF).
// A final unterminated line is returned together with io.EOF.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// PromptChoice prints the configured prompt and reads one line.
func (c *Console) PromptChoice() (string, error) {
	if err := c.Printf("%s", c.prompt); err != nil {
		return "", err
	}
	return c.ReadLine()
}

// PromptLine prints label and reads one line of free-form text.
func (c *Console) PromptLine(label string) (string, error) {
	if err := c.Printf("%s", label); err != nil {
		return "", err
	}
	return c.ReadLine()
}

// PromptInt prints label and reads an integer, re-prompting on unparseable
// input up to the configured attempt limit.
//
// Postcondition: Returns a parsed integer, or an error after the attempt
// limit is exhausted or the input ends.
func (c *Console) PromptInt(label string) (int, error) {
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		line, err := c.PromptLine(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}
		if err := c.Println("Please enter a whole number."); err != nil {
			return 0, err
		}
	}
	return 0, fmt.Errorf("console: no valid integer after %d attempts", c.maxAttempts)
}

// PromptIntSlice reads a declared element count and then that many integers,
// one per prompt.
//
// Precondition: the declared count must be >= 1; smaller counts are rejected
// with an error.
func (c *Console) PromptIntSlice(countLabel string) ([]int, error) {
	count, err := c.PromptInt(countLabel)
	if err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, fmt.Errorf("console: element count must be >= 1, got %d", count)
	}
	xs := make([]int, count)
	for i := range xs {
		n, err := c.PromptInt(fmt.Sprintf("Enter element %d: ", i+1))
		if err != nil {
			return nil, err
		}
		xs[i] = n
	}
	return xs, nil
}
