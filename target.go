package bigtext

import "github.com/gdamore/tcell/v2"

// A Target is the caller-owned cell grid that [BigText.Draw] mutates.
// Both [tcell.Screen] and [*tcell.CellBuffer] satisfy the interface
// as they are, so you will rarely need to implement it yourself.
//
// The package only writes inside the rect passed to [BigText.Draw];
// flushing the grid to the terminal remains the caller's job.
type Target interface {
	// Sets the symbol and style of the cell at (x, y). Out of range
	// coordinates must be ignored.
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)

	// Returns the symbol and style of the cell at (x, y).
	GetContent(x, y int) (primary rune, combining []rune, style tcell.Style, width int)

	// Returns the grid dimensions in cells.
	Size() (width, height int)
}
