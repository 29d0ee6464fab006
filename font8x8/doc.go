// font8x8 embeds the classic public domain 8x8 bitmap font and exposes
// it as a glyph lookup. It is the default glyph source of the bigtext
// package, but it has no dependency on it and can be used on its own.
//
// Each glyph is eight bytes, one per row from top to bottom, with bit 0
// being the leftmost pixel of the row. Coverage is the unicode basic
// latin block (U+0000 through U+007F); control codes are included as
// empty bitmaps, matching the original font data.
package font8x8
