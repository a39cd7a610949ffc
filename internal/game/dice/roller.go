package dice

import (
	"fmt"

	"go.uber.org/zap"
)

// ResultSink renders a roll outcome for a human observer.
type ResultSink interface {
	// DisplayResult presents a single roll outcome.
	//
	// Postcondition: Returns nil on success or the underlying write error.
	DisplayResult(n int) error
}

// Roller composes one Die and one ResultSink, both assigned at construction
// and immutable thereafter. All rolls are logged at debug level with the die's
// side count and the outcome.
type Roller struct {
	die    Die
	sink   ResultSink
	logger *zap.Logger
}

// NewRoller creates a Roller that rolls die and displays each outcome on sink.
//
// Precondition: die, sink, and logger must be non-nil.
func NewRoller(die Die, sink ResultSink, logger *zap.Logger) *Roller {
	if die == nil || sink == nil || logger == nil {
		panic("dice: NewRoller requires non-nil die, sink, and logger")
	}
	return &Roller{die: die, sink: sink, logger: logger}
}

// RollDice performs one roll-and-display cycle.
//
// Postcondition: The die's outcome is delivered verbatim to the sink; a sink
// write error is returned wrapped.
func (r *Roller) RollDice() error {
	n := r.die.Roll()
	r.logger.Debug("dice roll",
		zap.Int("sides", r.die.Sides()),
		zap.Int("result", n),
	)
	if err := r.sink.DisplayResult(n); err != nil {
		return fmt.Errorf("displaying roll result: %w", err)
	}
	return nil
}
