package selection

import (
	"unicode/utf8"

	"menuvroom/internal/domain"
	"menuvroom/internal/search"
)

// MaxHotkeys is the number of rows addressable with modifier+digit
const MaxHotkeys = 10

// Controller applies input events to a session's State
type Controller struct {
	catalog domain.Catalog
	ranker  search.Ranker
}

// NewController creates a controller over a loaded catalog
func NewController(catalog domain.Catalog, ranker search.Ranker) *Controller {
	return &Controller{
		catalog: catalog,
		ranker:  ranker,
	}
}

// Catalog returns the catalog the controller ranks over
func (c *Controller) Catalog() domain.Catalog {
	return c.catalog
}

// Handle applies ev to st and reports the outcome. Once a session has
// committed or cancelled every further event is ignored.
func (c *Controller) Handle(st *State, ev Event) Result {
	if st.Done() {
		return Result{Outcome: st.outcome}
	}

	switch ev.Kind {
	case Insert:
		c.setQuery(st, st.Query+string(ev.Char))

	case Backspace:
		if st.Query == "" {
			break
		}
		_, size := utf8.DecodeLastRuneInString(st.Query)
		c.setQuery(st, st.Query[:len(st.Query)-size])

	case Up:
		if st.Selected > 0 {
			st.Selected--
		}

	case Down:
		if st.Selected < len(st.Ranked)-1 {
			st.Selected++
		}

	case ModifierDown:
		st.ModifierHeld = true

	case ModifierUp:
		st.ModifierHeld = false

	case Digit:
		if ev.Digit < 0 || ev.Digit > 9 {
			break
		}
		if !st.ModifierHeld {
			c.setQuery(st, st.Query+string(rune('0'+ev.Digit)))
			break
		}
		pos := hotkeyPosition(ev.Digit)
		if pos < 0 || pos >= len(st.Ranked) {
			break
		}
		st.Selected = pos
		st.outcome = Commit
		return Result{Outcome: Commit, Chosen: c.catalog.At(st.Ranked[pos])}

	case Enter:
		if st.ModifierHeld || len(st.Ranked) == 0 {
			break
		}
		st.outcome = Commit
		return Result{Outcome: Commit, Chosen: c.catalog.At(st.Ranked[st.Selected])}

	case Close:
		st.outcome = Cancel
		return Result{Outcome: Cancel}
	}

	return Result{Outcome: Continue}
}

// Frame projects the state for the renderer
func (c *Controller) Frame(st *State) Frame {
	return Frame{
		Query:    st.Query,
		Items:    c.catalog.DisplayTexts(st.Ranked),
		Selected: st.Selected,
	}
}

// Selection returns the currently highlighted entry, if any
func (c *Controller) Selection(st *State) (domain.Executable, bool) {
	if len(st.Ranked) == 0 {
		return domain.Executable{}, false
	}
	return c.catalog.At(st.Ranked[st.Selected]), true
}

func (c *Controller) setQuery(st *State, query string) {
	st.Query = query
	st.Ranked = c.ranker.Rank(c.catalog, query)
	st.Selected = 0
}

// hotkeyPosition maps digits 1..9 to rows 0..8 and 0 to row 9
func hotkeyPosition(d int) int {
	switch {
	case d == 0:
		return 9
	case d >= 1 && d <= 9:
		return d - 1
	default:
		return -1
	}
}

// HotkeyLabel is the digit shown next to ranked row i, or "" past the last hotkey
func HotkeyLabel(i int) string {
	switch {
	case i >= 0 && i < 9:
		return string(rune('1' + i))
	case i == 9:
		return "0"
	default:
		return ""
	}
}
