package bigtext

import "strconv"

// A PixelSize determines how many pixels of the underlying 8x8 bitmap
// font are packed into a single terminal cell. [Full] uses one cell per
// pixel, which takes the most space and looks the chunkiest; the other
// sizes compress one or both axes by mapping pixel groups to half
// block, quadrant or sextant symbols.
type PixelSize uint8

const (
	Full        PixelSize = iota // one pixel per cell (default)
	HalfHeight                   // two pixels per cell, stacked vertically
	HalfWidth                    // two pixels per cell, side by side
	Quadrant                     // 2x2 pixels per cell
	ThirdHeight                  // three pixels per cell, stacked vertically
	Sextant                      // 2x3 pixels per cell
)

// Returns the footprint of a single glyph at this pixel size, in cells.
// This is ceil(8/step) per axis: 8x8 for [Full], down to 4x3 for
// [Sextant].
func (self PixelSize) CellSize() (width, height int) {
	stepX, stepY := self.steps()
	return (8 + stepX - 1) / stepX, (8 + stepY - 1) / stepY
}

// Returns the name of the pixel size constant.
func (self PixelSize) String() string {
	switch self {
	case Full        : return "Full"
	case HalfHeight  : return "HalfHeight"
	case HalfWidth   : return "HalfWidth"
	case Quadrant    : return "Quadrant"
	case ThirdHeight : return "ThirdHeight"
	case Sextant     : return "Sextant"
	default:
		return "PixelSize(" + strconv.Itoa(int(self)) + ")"
	}
}

// How many bitmap pixels one cell spans along each axis.
func (self PixelSize) steps() (stepX, stepY int) {
	switch self {
	case Full        : return 1, 1
	case HalfHeight  : return 1, 2
	case HalfWidth   : return 2, 1
	case Quadrant    : return 2, 2
	case ThirdHeight : return 1, 3
	case Sextant     : return 2, 3
	default:
		panic("invalid PixelSize '" + self.String() + "'")
	}
}

func (self PixelSize) valid() bool { return self <= Sextant }
