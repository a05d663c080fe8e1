package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dicbrowse/internal/ui/input/types"
)

// Handler turns raw bubbletea key and mouse messages into semantic events
type Handler struct {
	keys KeyMap
}

func New() *Handler {
	return &Handler{keys: DefaultKeyMap()}
}

// KeyMap returns the bindings used for decoding, for the help line
func (h *Handler) KeyMap() KeyMap {
	return h.keys
}

// HandleKey decodes a key press. A paste of several runes yields one
// TextCharEvent per rune; unbound keys yield nothing.
func (h *Handler) HandleKey(msg tea.KeyMsg) []types.Event {
	switch {
	case key.Matches(msg, h.keys.Quit):
		return []types.Event{types.QuitEvent{}}
	case key.Matches(msg, h.keys.Submit):
		return []types.Event{types.SubmitEvent{}}
	case key.Matches(msg, h.keys.Backspace):
		return []types.Event{types.BackspaceEvent{}}
	case key.Matches(msg, h.keys.Down):
		return []types.Event{types.KeyDownEvent{}}
	case key.Matches(msg, h.keys.Up):
		return []types.Event{types.KeyUpEvent{}}
	case key.Matches(msg, h.keys.PageDown):
		return []types.Event{types.PageDownEvent{}}
	case key.Matches(msg, h.keys.PageUp):
		return []types.Event{types.PageUpEvent{}}
	case key.Matches(msg, h.keys.NextDict):
		return []types.Event{types.NextDictionaryEvent{}}
	case key.Matches(msg, h.keys.PrevDict):
		return []types.Event{types.PrevDictionaryEvent{}}
	case key.Matches(msg, h.keys.Copy):
		return []types.Event{types.CopyEvent{}}
	case key.Matches(msg, h.keys.Pager):
		return []types.Event{types.OpenPagerEvent{}}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []types.Event{types.TextCharEvent{Char: ' '}}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		events := make([]types.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, types.TextCharEvent{Char: r})
		}
		return events
	}
	return nil
}

// HandleMouse decodes a mouse message. Only presses are meaningful.
func (h *Handler) HandleMouse(msg tea.MouseMsg) (types.Event, bool) {
	if msg.Action != tea.MouseActionPress {
		return nil, false
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return types.MouseClickEvent{X: msg.X, Y: msg.Y}, true
	case tea.MouseButtonWheelUp:
		return types.MouseWheelEvent{Direction: types.WheelUp}, true
	case tea.MouseButtonWheelDown:
		return types.MouseWheelEvent{Direction: types.WheelDown}, true
	}
	return nil, false
}
