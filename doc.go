// bigtext is a package for rendering short strings of text as oversized
// glyphs on terminal cell grids, using an embedded 8x8 bitmap font and
// unicode block symbols to approximate sub-cell resolution.
//
// Common usage only depends on a couple types and functions. First,
// you build the widget:
//
//	bigText, err := bigtext.New(bigtext.Options{
//	    Lines: []bigtext.Line{
//	        bigtext.NewLine("Hello"),
//	        bigtext.StyledLine("World", tcell.StyleDefault.Foreground(tcell.ColorRed)),
//	    },
//	})
//	if err != nil { /* missing lines or invalid pixel size */ }
//
// Then you draw it into any tcell screen or cell buffer:
//
//	bigText.DrawOn(screen)
//	screen.Show()
//
// The critical parameter is the pixel size, which controls how many
// pixels of the 8x8 font are packed into each terminal cell; see
// [PixelSize] for the available densities. Take a good look at that
// and have fun exploring the rest!
package bigtext
