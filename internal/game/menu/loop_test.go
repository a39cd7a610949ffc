package menu_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/drills/internal/config"
	"github.com/cory-johannsen/drills/internal/frontend/console"
	"github.com/cory-johannsen/drills/internal/game/dice"
	"github.com/cory-johannsen/drills/internal/game/menu"
)

// newTestLoop scripts a session: input is fed line by line, output is
// captured, and the roller uses a fixed d6 so roll results are predictable.
func newTestLoop(t *testing.T, input string) (*menu.Loop, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	cfg := config.ConsoleConfig{Prompt: "> ", MaxPromptAttempts: 3}
	c := console.New(strings.NewReader(input), &out, cfg)

	die, err := dice.NewFixedDie(6)
	require.NoError(t, err)
	roller := dice.NewRoller(die, console.NewResultWriter(c), zaptest.NewLogger(t))

	return menu.NewLoop(menu.DefaultRegistry(), c, roller, zaptest.NewLogger(t)), &out
}

func TestRun_QuitImmediately(t *testing.T) {
	loop, out := newTestLoop(t, "6\n")

	require.NoError(t, loop.Run(context.Background()))

	assert.Contains(t, out.String(), "=== Drills ===")
	assert.Contains(t, out.String(), "1) Roll the dice")
	assert.Contains(t, out.String(), "6) Quit")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRun_QuitAlias(t *testing.T) {
	loop, out := newTestLoop(t, "q\n")

	require.NoError(t, loop.Run(context.Background()))
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRun_InvalidChoice(t *testing.T) {
	loop, out := newTestLoop(t, "99\n6\n")

	require.NoError(t, loop.Run(context.Background()))

	assert.Contains(t, out.String(), "Invalid choice. Please try again.")
	// The menu is shown again after an invalid choice.
	assert.Equal(t, 2, strings.Count(out.String(), "=== Drills ==="))
}

func TestRun_RollDice(t *testing.T) {
	loop, out := newTestLoop(t, "1\n6\n")

	require.NoError(t, loop.Run(context.Background()))
	assert.Contains(t, out.String(), "You rolled: 6")
}

func TestRun_ReverseString(t *testing.T) {
	loop, out := newTestLoop(t, "2\nhello\n6\n")

	require.NoError(t, loop.Run(context.Background()))
	assert.Contains(t, out.String(), "Reversed string: olleh")
}

func TestRun_FindMax(t *testing.T) {
	loop, out := newTestLoop(t, "3\n3\n5\n1\n9\n6\n")

	require.NoError(t, loop.Run(context.Background()))
	assert.Contains(t, out.String(), "Maximum number: 9")
}

func TestRun_CheckPalindrome(t *testing.T) {
	loop, out := newTestLoop(t, "4\nracecar\n6\n")

	require.NoError(t, loop.Run(context.Background()))
	assert.Contains(t, out.String(), "Is Palindrome: true")
}

func TestRun_CheckPalindrome_Negative(t *testing.T) {
	loop, out := newTestLoop(t, "4\nhello\n6\n")

	require.NoError(t, loop.Run(context.Background()))
	assert.Contains(t, out.String(), "Is Palindrome: false")
}

func TestRun_Factorial(t *testing.T) {
	loop, out := newTestLoop(t, "5\n5\n6\n")

	require.NoError(t, loop.Run(context.Background()))
	assert.Contains(t, out.String(), "Factorial of 5: 120")
}

func TestRun_Factorial_RepromptsOnGarbage(t *testing.T) {
	loop, out := newTestLoop(t, "5\nbanana\n4\n6\n")

	require.NoError(t, loop.Run(context.Background()))
	assert.Contains(t, out.String(), "Please enter a whole number.")
	assert.Contains(t, out.String(), "Factorial of 4: 24")
}

func TestRun_DrillAbortedAfterAttemptLimit(t *testing.T) {
	loop, out := newTestLoop(t, "5\na\nb\nc\n6\n")

	require.NoError(t, loop.Run(context.Background()))

	assert.Contains(t, out.String(), "Drill aborted:")
	// The loop survives an aborted drill and still quits cleanly.
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRun_EndOfInputTerminatesNormally(t *testing.T) {
	loop, _ := newTestLoop(t, "")

	assert.NoError(t, loop.Run(context.Background()))
}

func TestRun_EndOfInputMidDrill(t *testing.T) {
	loop, _ := newTestLoop(t, "2\n")

	assert.NoError(t, loop.Run(context.Background()))
}

func TestRun_ContextCancelled(t *testing.T) {
	loop, _ := newTestLoop(t, "6\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, loop.Run(ctx), context.Canceled)
}

func TestNewLoop_PanicsOnNilDependencies(t *testing.T) {
	assert.Panics(t, func() {
		menu.NewLoop(nil, nil, nil, nil)
	})
}
