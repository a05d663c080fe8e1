package navigation

// State holds all navigation-related state
type State struct {
	Query      []rune   // query being composed
	Selection  int      // index into Words, valid whenever Words is non-empty
	Words      []string // word index of the active dictionary
	Definition string   // definition shown for the last navigation or query
	Dictionary int      // index into the catalog
}

// Direction selects the neighbouring dictionary
type Direction int

const (
	DirectionNext Direction = 1
	DirectionPrev Direction = -1
)

func (d Direction) String() string {
	if d == DirectionPrev {
		return "prev"
	}
	return "next"
}

// ScrollOffset returns the first word index visible in a list of height rows
// whose window trails the selection
func ScrollOffset(selection, height int) int {
	if height <= 0 || selection < height {
		return 0
	}
	return selection - height + 1
}
