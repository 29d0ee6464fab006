package bigtext

import "github.com/gdamore/tcell/v2"

import "github.com/rivo/uniseg"

// A Span is a run of text with an optional style override. Spans
// created with [Str] inherit the widget style; spans created with
// [Styled] carry their own.
type Span struct {
	Text string

	style  tcell.Style
	styled bool
}

// Creates a span that inherits the widget style.
func Str(text string) Span { return Span{Text: text} }

// Creates a span with its own style, overriding the widget style.
func Styled(text string, style tcell.Style) Span {
	return Span{Text: text, style: style, styled: true}
}

// Returns the span style, falling back to the given base style for
// spans without an override.
func (self Span) Style(base tcell.Style) tcell.Style {
	if self.styled { return self.style }
	return base
}

// A Line is an ordered sequence of spans rendered as a single row of
// oversized glyphs.
//
// Line content is split into grapheme clusters, with each cluster
// taking one glyph slot, but only the first codepoint of a cluster is
// used for the bitmap lookup. Multi-codepoint clusters therefore render
// as their base character at best, and as a styled blank cell when the
// font doesn't cover the codepoint.
type Line []Span

// Creates a single-span line that inherits the widget style.
func NewLine(text string) Line { return Line{Str(text)} }

// Creates a single-span line with its own style.
func StyledLine(text string, style tcell.Style) Line {
	return Line{Styled(text, style)}
}

// Calls fn for each grapheme cluster of the line, passing the cluster's
// first codepoint and the resolved style. Stops early if fn returns
// false.
func (self Line) eachGlyph(base tcell.Style, fn func(codePoint rune, style tcell.Style) bool) {
	for _, span := range self {
		style := span.Style(base)
		graphemes := uniseg.NewGraphemes(span.Text)
		for graphemes.Next() {
			if !fn(graphemes.Runes()[0], style) { return }
		}
	}
}
