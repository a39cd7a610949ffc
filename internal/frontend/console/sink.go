package console

// ResultWriter renders dice roll outcomes on a Console. It satisfies the
// dice.ResultSink interface.
type ResultWriter struct {
	console *Console
}

// NewResultWriter creates a ResultWriter over c.
//
// Precondition: c must be non-nil.
func NewResultWriter(c *Console) *ResultWriter {
	return &ResultWriter{console: c}
}

// DisplayResult writes the roll outcome as "You rolled: {n}".
//
// Postcondition: Returns nil on success or the underlying write error.
func (w *ResultWriter) DisplayResult(n int) error {
	return w.console.Printf("You rolled: %d\n", n)
}
