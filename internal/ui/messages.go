package ui

import "errors"

var errClipboardUnsupported = errors.New("no clipboard utility available")

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}
