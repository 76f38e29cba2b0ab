package selection

import "menuvroom/internal/domain"

// Kind identifies an input event
type Kind int

const (
	Insert Kind = iota
	Backspace
	Up
	Down
	ModifierDown
	ModifierUp
	Digit
	Enter
	Close
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Backspace:
		return "backspace"
	case Up:
		return "up"
	case Down:
		return "down"
	case ModifierDown:
		return "modifier_down"
	case ModifierUp:
		return "modifier_up"
	case Digit:
		return "digit"
	case Enter:
		return "enter"
	case Close:
		return "close"
	default:
		return "unknown"
	}
}

// Event is a single input event. Char is set for Insert, Digit for Digit.
type Event struct {
	Kind  Kind
	Char  rune
	Digit int
}

func InsertEvent(r rune) Event { return Event{Kind: Insert, Char: r} }

func DigitEvent(d int) Event { return Event{Kind: Digit, Digit: d} }

func KeyEvent(k Kind) Event { return Event{Kind: k} }

// Outcome is the session state after an event
type Outcome int

const (
	Continue Outcome = iota
	Commit
	Cancel
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Commit:
		return "commit"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Result of handling one event. Chosen is only set on Commit.
type Result struct {
	Outcome Outcome
	Chosen  domain.Executable
}

// State is the per-session selection state
type State struct {
	Query        string
	Ranked       []int // catalog indices, best first
	Selected     int
	ModifierHeld bool
	outcome      Outcome
}

// Done reports whether the session has committed or cancelled
func (s *State) Done() bool {
	return s.outcome != Continue
}

// Frame is what the renderer draws
type Frame struct {
	Query    string
	Items    []string
	Selected int
}
