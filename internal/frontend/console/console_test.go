package console_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/drills/internal/config"
	"github.com/cory-johannsen/drills/internal/frontend/console"
)

func testConfig() config.ConsoleConfig {
	return config.ConsoleConfig{Prompt: "> ", MaxPromptAttempts: 3}
}

func newConsole(input string) (*console.Console, *bytes.Buffer) {
	var out bytes.Buffer
	return console.New(strings.NewReader(input), &out, testConfig()), &out
}

func TestReadLine(t *testing.T) {
	c, _ := newConsole("hello\nworld\r\n")

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello", line)

	line, err = c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "world", line, "carriage returns must be stripped")

	_, err = c.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLine_UnterminatedFinalLine(t *testing.T) {
	c, _ := newConsole("partial")

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "partial", line)

	_, err = c.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestPromptChoice(t *testing.T) {
	c, out := newConsole("3\n")

	choice, err := c.PromptChoice()
	require.NoError(t, err)
	assert.Equal(t, "3", choice)
	assert.Equal(t, "> ", out.String())
}

func TestPromptInt(t *testing.T) {
	c, out := newConsole("42\n")

	n, err := c.PromptInt("Enter a number: ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	assert.Equal(t, "Enter a number: ", out.String())
}

func TestPromptInt_RepromptsOnGarbage(t *testing.T) {
	c, out := newConsole("banana\n-17\n")

	n, err := c.PromptInt("n: ")
	require.NoError(t, err)
	assert.Equal(t, -17, n)
	assert.Contains(t, out.String(), "Please enter a whole number.")
}

func TestPromptInt_AttemptLimit(t *testing.T) {
	c, _ := newConsole("a\nb\nc\nd\n")

	_, err := c.PromptInt("n: ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 attempts")
}

func TestPromptInt_EOF(t *testing.T) {
	c, _ := newConsole("")

	_, err := c.PromptInt("n: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPromptIntSlice(t *testing.T) {
	c, out := newConsole("3\n5\n1\n9\n")

	xs, err := c.PromptIntSlice("How many elements? ")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 1, 9}, xs)
	assert.Contains(t, out.String(), "Enter element 1: ")
	assert.Contains(t, out.String(), "Enter element 3: ")
}

func TestPromptIntSlice_RejectsNonPositiveCount(t *testing.T) {
	c, _ := newConsole("0\n")

	_, err := c.PromptIntSlice("How many elements? ")
	assert.Error(t, err)
}

func TestResultWriter_DisplayResult(t *testing.T) {
	c, out := newConsole("")

	sink := console.NewResultWriter(c)
	require.NoError(t, sink.DisplayResult(4))
	assert.Equal(t, "You rolled: 4\n", out.String())
}
