package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/drills/internal/frontend/console"
	"github.com/cory-johannsen/drills/internal/game/algo"
	"github.com/cory-johannsen/drills/internal/game/dice"
)

// State is the menu loop's current phase.
type State int

const (
	StateShowingMenu State = iota
	StateAwaitingChoice
	StateDispatching
	StateTerminated
)

// Loop drives the interactive menu: show the menu, read a choice, dispatch,
// repeat until quit or end of input. All dependencies are assigned at
// construction and immutable thereafter.
type Loop struct {
	registry *Registry
	console  *console.Console
	roller   *dice.Roller
	logger   *zap.Logger
}

// NewLoop creates a Loop over the given registry, console, and roller. The
// logger is tagged with a fresh session ID so every dispatch of one run can
// be correlated.
//
// Precondition: all arguments must be non-nil.
func NewLoop(registry *Registry, c *console.Console, roller *dice.Roller, logger *zap.Logger) *Loop {
	if registry == nil || c == nil || roller == nil || logger == nil {
		panic("menu: NewLoop requires non-nil registry, console, roller, and logger")
	}
	return &Loop{
		registry: registry,
		console:  c,
		roller:   roller,
		logger:   logger.With(zap.String("session_id", uuid.NewString())),
	}
}

// Run executes the menu loop until the quit entry is chosen, input ends, or
// ctx is cancelled. Quit and end-of-input both terminate normally.
//
// Postcondition: Returns nil on normal termination, or the first fatal
// console write error or ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("session started")
	defer l.logger.Info("session ended")

	state := StateShowingMenu
	var choice string

	for state != StateTerminated {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch state {
		case StateShowingMenu:
			if err := l.showMenu(); err != nil {
				return err
			}
			state = StateAwaitingChoice

		case StateAwaitingChoice:
			line, err := l.console.PromptChoice()
			if errors.Is(err, io.EOF) {
				l.logger.Debug("input ended")
				state = StateTerminated
				continue
			}
			if err != nil {
				return fmt.Errorf("reading menu choice: %w", err)
			}
			choice = strings.ToLower(strings.TrimSpace(line))
			state = StateDispatching

		case StateDispatching:
			next, err := l.dispatch(choice)
			if errors.Is(err, io.EOF) {
				l.logger.Debug("input ended mid-drill")
				state = StateTerminated
				continue
			}
			if err != nil {
				// Drill-level failures are reported and the menu continues.
				l.logger.Warn("drill aborted", zap.String("choice", choice), zap.Error(err))
				if werr := l.console.Printf("Drill aborted: %v\n", err); werr != nil {
					return werr
				}
			}
			state = next

		default:
			panic(fmt.Sprintf("menu: invalid loop state %d", state))
		}
	}
	return nil
}

func (l *Loop) showMenu() error {
	if err := l.console.Println("=== Drills ==="); err != nil {
		return err
	}
	for _, e := range l.registry.Entries() {
		if err := l.console.Printf("%s) %s\n", e.Choice, e.Help); err != nil {
			return err
		}
	}
	return nil
}

// dispatch resolves choice and runs its handler, returning the next state.
func (l *Loop) dispatch(choice string) (State, error) {
	entry, ok := l.registry.Resolve(choice)
	if !ok {
		if err := l.console.Println("Invalid choice. Please try again."); err != nil {
			return StateTerminated, err
		}
		return StateShowingMenu, nil
	}

	l.logger.Debug("dispatching",
		zap.String("choice", entry.Choice),
		zap.String("handler", entry.Handler),
	)

	switch entry.Handler {
	case HandlerRoll:
		return StateShowingMenu, l.roller.RollDice()
	case HandlerReverse:
		return StateShowingMenu, l.runReverse()
	case HandlerMax:
		return StateShowingMenu, l.runMax()
	case HandlerPalindrome:
		return StateShowingMenu, l.runPalindrome()
	case HandlerFactorial:
		return StateShowingMenu, l.runFactorial()
	case HandlerQuit:
		return StateTerminated, l.console.Println("Goodbye!")
	default:
		panic(fmt.Sprintf("menu: entry %q has unknown handler %q", entry.Choice, entry.Handler))
	}
}

func (l *Loop) runReverse() error {
	s, err := l.console.PromptLine("Enter a string: ")
	if err != nil {
		return err
	}
	return l.console.Printf("Reversed string: %s\n", algo.ReverseString(s))
}

func (l *Loop) runMax() error {
	xs, err := l.console.PromptIntSlice("How many elements? ")
	if err != nil {
		return err
	}
	max, err := algo.FindMaximumNumber(xs)
	if err != nil {
		return err
	}
	return l.console.Printf("Maximum number: %d\n", max)
}

func (l *Loop) runPalindrome() error {
	s, err := l.console.PromptLine("Enter a string: ")
	if err != nil {
		return err
	}
	return l.console.Printf("Is Palindrome: %t\n", algo.CheckPalindrome(s))
}

func (l *Loop) runFactorial() error {
	n, err := l.console.PromptInt("Enter a non-negative integer: ")
	if err != nil {
		return err
	}
	return l.console.Printf("Factorial of %d: %d\n", n, algo.Factorial(n))
}
