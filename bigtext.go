package bigtext

import "errors"

import "github.com/gdamore/tcell/v2"

import "github.com/tuikit/bigtext/font8x8"

// This file contains the BigText type definition, its configuration
// and all the getter and setter methods. The actual rendering lives
// in render.go.

// A GlyphFunc resolves a codepoint to its 8x8 bitmap: one byte per row
// from top to bottom, bit 0 being the leftmost pixel of the row. The
// second return value reports whether the codepoint is covered at all;
// uncovered codepoints render as styled blank cells.
//
// The default glyph source is [font8x8.Glyph]. Glyph funcs must be
// deterministic and stateless, as lookups happen on every draw.
type GlyphFunc = func(codePoint rune) ([8]byte, bool)

// Options configures the construction of a [BigText] widget via [New].
type Options struct {
	// The text to display, one row of oversized glyphs per line.
	// Required. An empty non-nil slice is valid and draws nothing.
	Lines []Line

	// The style applied to every cell of the widget before any span
	// styles are layered on. The zero value is [tcell.StyleDefault].
	Style tcell.Style

	// How many bitmap pixels to pack into each terminal cell.
	// The zero value is [Full].
	PixelSize PixelSize

	// Overrides the bitmap source. Nil means [font8x8.Glyph].
	Glyphs GlyphFunc
}

// BigText displays one or more lines of text as oversized glyphs built
// from unicode block symbols. Create it with [New], then call
// [BigText.Draw] or [BigText.DrawOn] on every frame you want it shown.
//
// At [Full] pixel size, "Hi" renders like this:
//
//	██  ██    ██
//	██  ██
//	██  ██   ███
//	██████    ██
//	██  ██    ██
//	██  ██    ██
//	██  ██   ████
//
// Widgets hold no reference to any target and keep no state between
// draws, so a single widget can be drawn into as many targets and
// areas as needed.
type BigText struct {
	lines     []Line
	style     tcell.Style
	pixelSize PixelSize
	glyphs    GlyphFunc
}

// Creates a BigText widget. Lines are required; everything else
// defaults as documented on [Options]. Fails if lines are missing or
// the pixel size is not one of the defined constants.
func New(opts Options) (*BigText, error) {
	if opts.Lines == nil {
		return nil, errors.New("bigtext.Options.Lines is required (empty slices are ok, nil is not)")
	}
	if !opts.PixelSize.valid() {
		return nil, errors.New("invalid bigtext.Options.PixelSize '" + opts.PixelSize.String() + "'")
	}
	glyphs := opts.Glyphs
	if glyphs == nil { glyphs = font8x8.Glyph }
	return &BigText{
		lines:     opts.Lines,
		style:     opts.Style,
		pixelSize: opts.PixelSize,
		glyphs:    glyphs,
	}, nil
}

// Returns the lines being displayed.
func (self *BigText) Lines() []Line { return self.lines }

// Replaces the lines being displayed. Nil is treated as empty here;
// the nil check on [Options].Lines only exists to catch forgotten
// configuration at construction time.
func (self *BigText) SetLines(lines []Line) { self.lines = lines }

// Returns the widget style.
func (self *BigText) Style() tcell.Style { return self.style }

// Sets the widget style. Spans with their own style are not affected.
func (self *BigText) SetStyle(style tcell.Style) { self.style = style }

// Returns the active pixel size.
func (self *BigText) PixelSize() PixelSize { return self.pixelSize }

// Sets the pixel size. Panics if the value is not one of the defined
// constants.
func (self *BigText) SetPixelSize(pixelSize PixelSize) {
	if !pixelSize.valid() {
		panic("invalid PixelSize '" + pixelSize.String() + "'")
	}
	self.pixelSize = pixelSize
}

// Sets the bitmap source. Nil restores [font8x8.Glyph].
func (self *BigText) SetGlyphFunc(glyphs GlyphFunc) {
	if glyphs == nil { glyphs = font8x8.Glyph }
	self.glyphs = glyphs
}
