package types

// Event is a semantic input event. The set is closed: only the types in
// this package implement it.
type Event interface {
	Type() string
	event()
}

// WheelDirection is the direction of a mouse wheel step
type WheelDirection int

const (
	WheelUp WheelDirection = iota
	WheelDown
)

// KeyDownEvent moves the selection one word down
type KeyDownEvent struct{}

// KeyUpEvent moves the selection one word up
type KeyUpEvent struct{}

// PageDownEvent moves the selection one page down
type PageDownEvent struct{}

// PageUpEvent moves the selection one page up
type PageUpEvent struct{}

// MouseClickEvent is a left click at terminal cell (X, Y)
type MouseClickEvent struct {
	X int
	Y int
}

// MouseWheelEvent is one wheel step
type MouseWheelEvent struct {
	Direction WheelDirection
}

// TextCharEvent types one character into the query
type TextCharEvent struct {
	Char rune
}

type BackspaceEvent struct{}

type SubmitEvent struct{}

type QuitEvent struct{}

// CopyEvent copies the definition to the clipboard
type CopyEvent struct{}

type NextDictionaryEvent struct{}

type PrevDictionaryEvent struct{}

// OpenPagerEvent shows the definition full screen
type OpenPagerEvent struct{}

func (KeyDownEvent) Type() string        { return "key_down" }
func (KeyUpEvent) Type() string          { return "key_up" }
func (PageDownEvent) Type() string       { return "page_down" }
func (PageUpEvent) Type() string         { return "page_up" }
func (MouseClickEvent) Type() string     { return "mouse_click" }
func (MouseWheelEvent) Type() string     { return "mouse_wheel" }
func (TextCharEvent) Type() string       { return "text_char" }
func (BackspaceEvent) Type() string      { return "backspace" }
func (SubmitEvent) Type() string         { return "submit" }
func (QuitEvent) Type() string           { return "quit" }
func (CopyEvent) Type() string           { return "copy" }
func (NextDictionaryEvent) Type() string { return "next_dictionary" }
func (PrevDictionaryEvent) Type() string { return "prev_dictionary" }
func (OpenPagerEvent) Type() string      { return "open_pager" }

func (KeyDownEvent) event()        {}
func (KeyUpEvent) event()          {}
func (PageDownEvent) event()       {}
func (PageUpEvent) event()         {}
func (MouseClickEvent) event()     {}
func (MouseWheelEvent) event()     {}
func (TextCharEvent) event()       {}
func (BackspaceEvent) event()      {}
func (SubmitEvent) event()         {}
func (QuitEvent) event()           {}
func (CopyEvent) event()           {}
func (NextDictionaryEvent) event() {}
func (PrevDictionaryEvent) event() {}
func (OpenPagerEvent) event()      {}
