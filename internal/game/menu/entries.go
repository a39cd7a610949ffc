// Package menu provides the menu entry registry and the interactive loop that
// dispatches console choices to the dice roller and the wired drills.
package menu

// Handler identifiers mapping menu entries to loop handlers.
const (
	HandlerRoll       = "roll"
	HandlerReverse    = "reverse"
	HandlerMax        = "max"
	HandlerPalindrome = "palindrome"
	HandlerFactorial  = "factorial"
	HandlerQuit       = "quit"
)

// Entry defines a user-invocable menu item.
type Entry struct {
	// Choice is the canonical menu token, e.g. "1".
	Choice string
	// Aliases are alternate tokens for this entry.
	Aliases []string
	// Help is the short text displayed in the menu listing.
	Help string
	// Handler maps the entry to a loop handler.
	Handler string
}

// BuiltinEntries returns the menu entries in display order. Only these five
// drills plus quit are menu-reachable; the rest of the algo and list packages
// are a direct-call library surface.
func BuiltinEntries() []Entry {
	return []Entry{
		{Choice: "1", Aliases: []string{"roll"}, Help: "Roll the dice", Handler: HandlerRoll},
		{Choice: "2", Aliases: []string{"reverse"}, Help: "Reverse a string", Handler: HandlerReverse},
		{Choice: "3", Aliases: []string{"max"}, Help: "Find the maximum number", Handler: HandlerMax},
		{Choice: "4", Aliases: []string{"palindrome"}, Help: "Check a palindrome", Handler: HandlerPalindrome},
		{Choice: "5", Aliases: []string{"factorial"}, Help: "Calculate a factorial", Handler: HandlerFactorial},
		{Choice: "6", Aliases: []string{"q", "quit"}, Help: "Quit", Handler: HandlerQuit},
	}
}
