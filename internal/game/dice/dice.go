// Package dice provides the die abstraction and roller composition for the
// drills console: a fair die over an injected randomness source, a fixed die
// for deterministic demonstrations, and a Roller that delivers each result to
// an output sink.
package dice

import "fmt"

// Die produces integer roll outcomes bounded by a side count.
type Die interface {
	// Sides returns the face count of the die.
	//
	// Postcondition: return value >= 1.
	Sides() int
	// Roll returns one outcome in [1, Sides()].
	Roll() int
}

// fairDie rolls uniformly in [1, sides] using an injected Source.
type fairDie struct {
	sides int
	src   Source
}

// NewFairDie creates a Die that rolls uniformly in [1, sides] using src.
//
// Precondition: sides >= 1; src must be non-nil.
// Postcondition: Returns a Die or a non-nil error.
func NewFairDie(sides int, src Source) (Die, error) {
	if sides < 1 {
		return nil, fmt.Errorf("dice: side count must be >= 1, got %d", sides)
	}
	if src == nil {
		return nil, fmt.Errorf("dice: nil randomness source")
	}
	return &fairDie{sides: sides, src: src}, nil
}

func (d *fairDie) Sides() int {
	return d.sides
}

// Roll returns a uniformly random outcome in [1, d.sides].
func (d *fairDie) Roll() int {
	return d.src.Intn(d.sides) + 1
}

// fixedDie always rolls its maximum face. Used for deterministic testing and
// cheating demonstrations.
type fixedDie struct {
	sides int
}

// NewFixedDie creates a Die that always rolls sides.
//
// Precondition: sides >= 1.
// Postcondition: Returns a Die or a non-nil error.
func NewFixedDie(sides int) (Die, error) {
	if sides < 1 {
		return nil, fmt.Errorf("dice: side count must be >= 1, got %d", sides)
	}
	return &fixedDie{sides: sides}, nil
}

func (d *fixedDie) Sides() int {
	return d.sides
}

// Roll always returns the maximum face.
//
// Postcondition: return value == d.Sides().
func (d *fixedDie) Roll() int {
	return d.sides
}
