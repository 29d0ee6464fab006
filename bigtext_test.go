package bigtext

import "testing"

import "github.com/gdamore/tcell/v2"

func TestNewDefaults(t *testing.T) {
	bigText, err := New(Options{Lines: []Line{}})
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if bigText.PixelSize() != Full { t.Fatalf("expected Full, got %s", bigText.PixelSize()) }
	if bigText.Style() != tcell.StyleDefault { t.Fatal("expected the default style") }
	if len(bigText.Lines()) != 0 { t.Fatal("expected no lines") }

	// building with no lines is valid and draws nothing
	buffer := newTestBuffer(8, 2)
	bigText.Draw(buffer, NewRect(0, 0, 8, 2))
	assertRows(t, "no lines", buffer, []string{"        ", "        "})
}

func TestNewMissingLines(t *testing.T) {
	_, err := New(Options{})
	if err == nil { t.Fatal("expected an error for missing lines") }
}

func TestNewInvalidPixelSize(t *testing.T) {
	_, err := New(Options{Lines: []Line{}, PixelSize: PixelSize(73)})
	if err == nil { t.Fatal("expected an error for an invalid pixel size") }
}

func TestSetGet(t *testing.T) {
	bigText, err := New(Options{Lines: []Line{NewLine("a")}})
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	bigText.SetPixelSize(Sextant)
	if bigText.PixelSize() != Sextant { t.Fatalf("expected Sextant, got %s", bigText.PixelSize()) }

	style := tcell.StyleDefault.Underline(true)
	bigText.SetStyle(style)
	if bigText.Style() != style { t.Fatal("expected the underline style") }

	bigText.SetLines([]Line{NewLine("b"), NewLine("c")})
	if len(bigText.Lines()) != 2 { t.Fatalf("expected 2 lines, got %d", len(bigText.Lines())) }
}

func TestSetPixelSizeInvalid(t *testing.T) {
	bigText, err := New(Options{Lines: []Line{}})
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	defer func() {
		if recover() == nil { t.Fatal("expected a panic") }
	}()
	bigText.SetPixelSize(PixelSize(73))
}

func TestPixelSizeString(t *testing.T) {
	if Full.String() != "Full" { t.Fatal("unexpected name for Full") }
	if Sextant.String() != "Sextant" { t.Fatal("unexpected name for Sextant") }
	if PixelSize(73).String() != "PixelSize(73)" { t.Fatal("unexpected name for an invalid size") }
}

// Characters without a bitmap get the style but keep their symbols.
func TestMissingGlyph(t *testing.T) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	bigText, err := New(Options{Lines: []Line{NewLine("A🚀")}, Style: style})
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	buffer := newTestBuffer(16, 8)
	buffer.SetContent(9, 2, 'x', nil, tcell.StyleDefault)
	bigText.Draw(buffer, NewRect(0, 0, 16, 8))

	primary, _, gotStyle, _ := buffer.GetContent(9, 2)
	if primary != 'x' { t.Fatalf("expected the preserved symbol 'x', got %q", primary) }
	if gotStyle != style { t.Fatal("expected the cell to be restyled") }

	// the covered neighbor still renders normally ('A' row 0 is 0x0C)
	primary, _, _, _ = buffer.GetContent(2, 0)
	if primary != '█' { t.Fatalf("expected a solid block, got %q", primary) }
	primary, _, _, _ = buffer.GetContent(1, 0)
	if primary != ' ' { t.Fatalf("expected a blank, got %q", primary) }
}

// Only the first codepoint of a grapheme cluster is used for the
// bitmap lookup, and the whole cluster takes a single glyph slot.
func TestGraphemeClusterFirstCodepoint(t *testing.T) {
	lines := []Line{NewLine("e\u0301!")} // "e" followed by a combining acute and "!"
	bigText, err := New(Options{Lines: lines})
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	buffer := newTestBuffer(24, 8)
	bigText.Draw(buffer, NewRect(0, 0, 24, 8))

	// the cluster renders as a plain 'e' ('e' row 2 is 0x1E)
	primary, _, _, _ := buffer.GetContent(1, 2)
	if primary != '█' { t.Fatalf("expected a solid block, got %q", primary) }

	// '!' lands in the second glyph slot ('!' row 0 is 0x18)...
	primary, _, _, _ = buffer.GetContent(11, 0)
	if primary != '█' { t.Fatalf("expected a solid block, got %q", primary) }

	// ...and the third slot stays empty
	primary, _, style, _ := buffer.GetContent(19, 0)
	if primary != ' ' { t.Fatalf("expected a blank, got %q", primary) }
	if style != tcell.StyleDefault { t.Fatal("expected an unstyled cell") }
}

// Span styles override the widget style within their run.
func TestSpanStyles(t *testing.T) {
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	line := Line{Styled("A", red), Str("B")}
	bigText, err := New(Options{Lines: []Line{line}, Style: green})
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	buffer := newTestBuffer(16, 8)
	bigText.Draw(buffer, NewRect(0, 0, 16, 8))

	_, _, style, _ := buffer.GetContent(0, 0)
	if style != red { t.Fatal("expected the span style") }
	_, _, style, _ = buffer.GetContent(8, 0)
	if style != green { t.Fatal("expected the widget style") }
}

// Custom glyph funcs replace the embedded font.
func TestCustomGlyphFunc(t *testing.T) {
	topRow := func(codePoint rune) ([8]byte, bool) {
		return [8]byte{0xFF}, codePoint == 'x'
	}
	bigText, err := New(Options{Lines: []Line{NewLine("xy")}, Glyphs: topRow})
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	buffer := newTestBuffer(16, 8)
	bigText.Draw(buffer, NewRect(0, 0, 16, 8))

	primary, _, _, _ := buffer.GetContent(7, 0)
	if primary != '█' { t.Fatalf("expected a solid block, got %q", primary) }
	primary, _, _, _ = buffer.GetContent(0, 1)
	if primary != ' ' { t.Fatalf("expected a blank, got %q", primary) }
	primary, _, _, _ = buffer.GetContent(8, 0) // 'y' is not covered
	if primary != ' ' { t.Fatalf("expected a blank, got %q", primary) }
}

func TestDrawOn(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil { t.Fatalf("unexpected error: %s", err) }
	defer screen.Fini()
	screen.SetSize(16, 8)

	bigText, err := New(Options{Lines: []Line{NewLine("Hi")}})
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	bigText.DrawOn(screen)

	// 'H' row 0 is 0x33
	primary, _, _, _ := screen.GetContent(0, 0)
	if primary != '█' { t.Fatalf("expected a solid block, got %q", primary) }
	primary, _, _, _ = screen.GetContent(2, 0)
	if primary != ' ' { t.Fatalf("expected a blank, got %q", primary) }
}
