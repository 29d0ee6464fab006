package font8x8

// Returns the 8x8 bitmap for the given codepoint, or false if the
// codepoint falls outside the basic latin block. The bitmap is indexed
// by row from the top, with bit 0 of each row being the leftmost pixel.
func Glyph(codePoint rune) ([8]byte, bool) {
	if codePoint < 0 || codePoint >= rune(len(basic)) {
		return [8]byte{}, false
	}
	return basic[codePoint], true
}
