package bigtext

import "github.com/gdamore/tcell/v2"

// Draws the text into the given area of the target with the current
// configuration (lines, style, pixel size, glyph source).
//
// The area is partitioned into a grid of glyph-sized layout cells: the
// i-th row band corresponds to the i-th line and the j-th column within
// it to the j-th character of that line. Cells at the right and bottom
// edges are clipped to the area, and lines or characters whose cells
// fall entirely outside of it are skipped. Truncation is never an
// error, so this function cannot fail.
//
// Every cell of a character's layout cell gets the character's resolved
// style, even when the glyph source doesn't cover the character; in
// that case the cell symbols are left untouched.
func (self *BigText) Draw(target Target, area Rect) {
	cellWidth, cellHeight := self.pixelSize.CellSize()
	y := area.Y
	for _, line := range self.lines {
		if y >= area.Bottom() { break }
		height := minInt(cellHeight, area.Bottom()-y)
		x := area.X
		line.eachGlyph(self.style, func(codePoint rune, style tcell.Style) bool {
			if x >= area.Right() { return false }
			width := minInt(cellWidth, area.Right()-x)
			self.drawGlyph(target, codePoint, style, NewRect(x, y, width, height))
			x += cellWidth
			return true
		})
		y += cellHeight
	}
}

// Draws the text over the full area of the given screen. Shorthand for
// [BigText.Draw] with the screen size as the area.
func (self *BigText) DrawOn(screen tcell.Screen) {
	width, height := screen.Size()
	self.Draw(screen, NewRect(0, 0, width, height))
}

// Draws a single oversized glyph into its layout cell: the style is
// stamped over the whole cell first, then the cell symbols are
// overwritten with block symbols approximating the bitmap, if there
// is one.
func (self *BigText) drawGlyph(target Target, codePoint rune, style tcell.Style, cell Rect) {
	restyle(target, cell, style)
	bitmap, found := self.glyphs(codePoint)
	if !found { return }

	stepX, stepY := self.pixelSize.steps()
	for row, y := 0, cell.Y; row < 8 && y < cell.Bottom(); row, y = row+stepY, y+1 {
		for col, x := 0, cell.X; col < 8 && x < cell.Right(); col, x = col+stepX, x+1 {
			target.SetContent(x, y, self.pixelSize.symbol(bitmap, row, col), nil, style)
		}
	}
}

// Applies the style to every cell of the rect while preserving the
// symbols already present in the target.
func restyle(target Target, rect Rect, style tcell.Style) {
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			primary, combining, _, _ := target.GetContent(x, y)
			target.SetContent(x, y, primary, combining, style)
		}
	}
}

func minInt(a, b int) int {
	if a <= b { return a }
	return b
}
