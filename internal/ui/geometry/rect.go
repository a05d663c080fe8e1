package geometry

// Rect is an on-screen region in terminal cells
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether (x, y) is inside the rectangle. Both bounds are
// inclusive, so the hit area reaches one cell past Width and Height.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// RowOffset converts a y coordinate into a row relative to the top edge
func (r Rect) RowOffset(y int) int {
	return y - r.Y
}

// Empty reports whether nothing has been laid out yet
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
