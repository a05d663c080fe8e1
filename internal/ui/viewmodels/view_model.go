package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"dicbrowse/internal/config"
	"dicbrowse/internal/ui/input"
	"dicbrowse/internal/ui/services/navigation"
	"dicbrowse/internal/ui/views"
)

// ViewModel transforms navigation state into view-ready data
type ViewModel struct {
	nav           *navigation.Service
	config        *config.Config
	keys          input.KeyMap
	width         int
	height        int
	help          help.Model
	statusMessage string
	statusIsError bool
}

// NewViewModel creates a new view model
func NewViewModel(nav *navigation.Service, cfg *config.Config, keys input.KeyMap) *ViewModel {
	return &ViewModel{
		nav:    nav,
		config: cfg,
		keys:   keys,
		help:   help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetStatus shows an informational message until the next status change
func (vm *ViewModel) SetStatus(msg string) {
	vm.statusMessage = msg
	vm.statusIsError = false
}

// SetError shows err in the status line
func (vm *ViewModel) SetError(err error) {
	vm.statusMessage = err.Error()
	vm.statusIsError = true
}

// ClearStatus removes any status message
func (vm *ViewModel) ClearStatus() {
	vm.statusMessage = ""
	vm.statusIsError = false
}

// Status returns the current status message and whether it is an error
func (vm *ViewModel) Status() (string, bool) {
	return vm.statusMessage, vm.statusIsError
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	var helpLine string
	if vm.config.UISettings.ShowHelp {
		helpLine = vm.help.ShortHelpView(vm.keys.ShortHelp())
	}

	return views.ViewState{
		Width:            vm.width,
		Height:           vm.height,
		HelpLine:         helpLine,
		Query:            vm.nav.GetQuery(),
		Dictionaries:     vm.nav.GetCatalog().Names,
		ActiveDictionary: vm.nav.GetDictionary(),
		Words:            vm.nav.GetWords(),
		Selection:        vm.nav.GetSelection(),
		Definition:       vm.nav.GetDefinition(),
		StatusMessage:    vm.statusMessage,
		StatusIsError:    vm.statusIsError,
	}
}
