package bigtext

// A Rect defines a rectangular region of a [Target], given by the
// position of its top-left cell and its size in cells. The Right and
// Bottom edges are not part of the region.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Creates a rect from its top-left corner and size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Returns the horizontal coordinate one past the rightmost column.
func (self Rect) Right() int { return self.X + self.Width }

// Returns the vertical coordinate one past the bottom row.
func (self Rect) Bottom() int { return self.Y + self.Height }

// Whether the rect contains no cells.
func (self Rect) Empty() bool { return self.Width <= 0 || self.Height <= 0 }
