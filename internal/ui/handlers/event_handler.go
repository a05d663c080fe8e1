package handlers

import (
	"fmt"
	"log"

	"dicbrowse/internal/ui/geometry"
	"dicbrowse/internal/ui/input/types"
	"dicbrowse/internal/ui/services/navigation"
)

// Clipboard receives copied definitions
type Clipboard interface {
	WriteAll(text string) error
}

// Outcome is what the UI loop must do after an event was dispatched
type Outcome struct {
	Quit      bool
	OpenPager bool
	Status    string // informational message, "" for none
	Err       error  // user-visible failure
}

// EventHandler maps each input event onto exactly one navigation operation
type EventHandler struct {
	nav       *navigation.Service
	clipboard Clipboard
	pageStep  int
}

// NewEventHandler creates an event handler. pageStep is the distance of
// page-up and page-down.
func NewEventHandler(nav *navigation.Service, clipboard Clipboard, pageStep int) *EventHandler {
	return &EventHandler{
		nav:       nav,
		clipboard: clipboard,
		pageStep:  pageStep,
	}
}

// HandleEvent dispatches ev. list is the index list geometry of the last
// rendered frame, used to map clicks onto rows.
func (h *EventHandler) HandleEvent(ev types.Event, list geometry.Rect) Outcome {
	switch e := ev.(type) {
	case types.TextCharEvent:
		h.nav.PushChar(e.Char)

	case types.BackspaceEvent:
		h.nav.PopChar()

	case types.SubmitEvent:
		if _, err := h.nav.SubmitQuery(); err != nil {
			log.Printf("Lookup failed: %v", err)
			return Outcome{Err: err}
		}

	case types.KeyDownEvent:
		return h.move(1)

	case types.KeyUpEvent:
		return h.move(-1)

	case types.PageDownEvent:
		return h.move(h.pageStep)

	case types.PageUpEvent:
		return h.move(-h.pageStep)

	case types.MouseWheelEvent:
		if e.Direction == types.WheelUp {
			return h.move(-1)
		}
		return h.move(1)

	case types.MouseClickEvent:
		if list.Empty() || !list.Contains(e.X, e.Y) {
			return Outcome{}
		}
		if err := h.nav.SelectAt(list.RowOffset(e.Y), list.Height); err != nil {
			log.Printf("Lookup failed: %v", err)
			return Outcome{Err: err}
		}

	case types.NextDictionaryEvent:
		return h.switchDictionary(navigation.DirectionNext)

	case types.PrevDictionaryEvent:
		return h.switchDictionary(navigation.DirectionPrev)

	case types.CopyEvent:
		return h.copyDefinition()

	case types.OpenPagerEvent:
		return Outcome{OpenPager: true}

	case types.QuitEvent:
		return Outcome{Quit: true}

	default:
		log.Printf("Unhandled input event %s", ev.Type())
	}
	return Outcome{}
}

func (h *EventHandler) move(delta int) Outcome {
	if err := h.nav.MoveBy(delta); err != nil {
		log.Printf("Lookup failed: %v", err)
		return Outcome{Err: err}
	}
	return Outcome{}
}

func (h *EventHandler) switchDictionary(direction navigation.Direction) Outcome {
	if err := h.nav.SwitchDictionary(direction); err != nil {
		log.Printf("Dictionary switch (%s) refused: %v", direction, err)
		return Outcome{Err: fmt.Errorf("cannot switch dictionary: %w", err)}
	}
	return Outcome{}
}

func (h *EventHandler) copyDefinition() Outcome {
	if h.clipboard == nil {
		return Outcome{Err: fmt.Errorf("clipboard unavailable")}
	}
	if err := h.clipboard.WriteAll(h.nav.GetDefinition()); err != nil {
		log.Printf("Copy failed: %v", err)
		return Outcome{Err: fmt.Errorf("copy failed: %w", err)}
	}
	return Outcome{Status: "Copied definition"}
}
