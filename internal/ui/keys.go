package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"menuvroom/internal/selection"
)

// KeyMap defines the launcher's key bindings
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Launch    key.Binding
	Close     key.Binding
	Backspace key.Binding
	Hotkey    key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+k", "ctrl+p"),
			key.WithHelp("↑/C-k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+j", "ctrl+n"),
			key.WithHelp("↓/C-j", "down"),
		),
		Launch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "launch"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "close"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "delete"),
		),
		Hotkey: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5",
				"alt+6", "alt+7", "alt+8", "alt+9", "alt+0"),
			key.WithHelp("alt+1…0", "pick row"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Hotkey, k.Launch, k.Close}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Hotkey},
		{k.Launch, k.Close, k.Backspace},
	}
}

// EventsForKey translates a terminal key press into selection events.
// Terminals report the modifier together with the key, so an alt+digit
// press becomes a modifier down, digit, modifier up sequence.
func EventsForKey(msg tea.KeyMsg, keys KeyMap) []selection.Event {
	switch {
	case key.Matches(msg, keys.Close):
		return []selection.Event{selection.KeyEvent(selection.Close)}
	case key.Matches(msg, keys.Up):
		return []selection.Event{selection.KeyEvent(selection.Up)}
	case key.Matches(msg, keys.Down):
		return []selection.Event{selection.KeyEvent(selection.Down)}
	case key.Matches(msg, keys.Launch):
		return []selection.Event{selection.KeyEvent(selection.Enter)}
	case key.Matches(msg, keys.Backspace):
		return []selection.Event{selection.KeyEvent(selection.Backspace)}
	}

	switch msg.Type {
	case tea.KeySpace:
		if msg.Alt {
			return nil
		}
		return []selection.Event{selection.InsertEvent(' ')}

	case tea.KeyRunes:
		if msg.Alt {
			if len(msg.Runes) == 1 && msg.Runes[0] >= '0' && msg.Runes[0] <= '9' {
				return []selection.Event{
					selection.KeyEvent(selection.ModifierDown),
					selection.DigitEvent(int(msg.Runes[0] - '0')),
					selection.KeyEvent(selection.ModifierUp),
				}
			}
			return nil
		}
		events := make([]selection.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' {
				events = append(events, selection.DigitEvent(int(r-'0')))
				continue
			}
			events = append(events, selection.InsertEvent(r))
		}
		return events
	}
	return nil
}
