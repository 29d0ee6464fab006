package bigtext

// Flat symbol tables indexed by packed pixel bits. Most of the block
// symbols are consecutive in unicode, but the ones that already existed
// in older character sets (half blocks, full block) are missing from
// the newer ranges, so a direct codepoint computation is not possible
// and the tables spell every entry out.

// Index = top | bottom<<1.
var halfHeightSymbols = [4]rune{' ', '▀', '▄', '█'}

// Index = left | right<<1.
var halfWidthSymbols = [4]rune{' ', '▌', '▐', '█'}

// Index = topLeft | topRight<<1 | bottomLeft<<2 | bottomRight<<3.
var quadrantSymbols = [16]rune{
	' ', '▘', '▝', '▀', '▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜', '▄', '▙', '▟', '█',
}

// Index = topLeft | topRight<<1 | middleLeft<<2 | middleRight<<3 |
// bottomLeft<<4 | bottomRight<<5.
var sextantSymbols = [64]rune{
	' ', '🬀', '🬁', '🬂', '🬃', '🬄', '🬅', '🬆',
	'🬇', '🬈', '🬉', '🬊', '🬋', '🬌', '🬍', '🬎',
	'🬏', '🬐', '🬑', '🬒', '🬓', '▌', '🬔', '🬕',
	'🬖', '🬗', '🬘', '🬙', '🬚', '🬛', '🬜', '🬝',
	'🬞', '🬟', '🬠', '🬡', '🬢', '🬣', '🬤', '🬥',
	'🬦', '🬧', '▐', '🬨', '🬩', '🬪', '🬫', '🬬',
	'🬭', '🬮', '🬯', '🬰', '🬱', '🬲', '🬳', '🬴',
	'🬵', '🬶', '🬷', '🬸', '🬹', '🬺', '🬻', '█',
}

// Selects the block symbol for the stepX x stepY group of bitmap pixels
// whose top-left pixel is at (row, col). Rows past the bottom of the
// bitmap read as unset, which covers the pixel sizes whose vertical
// step does not divide 8 evenly (the 3-row groups of [ThirdHeight] and
// [Sextant] starting at row 6 only have two real rows).
func (self PixelSize) symbol(bitmap [8]byte, row, col int) rune {
	switch self {
	case Full:
		if pixel(bitmap, row, col) != 0 { return '█' }
		return ' '
	case HalfHeight:
		top    := pixel(bitmap, row, col)
		bottom := pixel(bitmap, row+1, col)
		return halfHeightSymbols[top|bottom<<1]
	case HalfWidth:
		left  := pixel(bitmap, row, col)
		right := pixel(bitmap, row, col+1)
		return halfWidthSymbols[left|right<<1]
	case Quadrant:
		topLeft     := pixel(bitmap, row, col)
		topRight    := pixel(bitmap, row, col+1)
		bottomLeft  := pixel(bitmap, row+1, col)
		bottomRight := pixel(bitmap, row+1, col+1)
		return quadrantSymbols[topLeft|topRight<<1|bottomLeft<<2|bottomRight<<3]
	case ThirdHeight:
		// same as a sextant with each pixel duplicated across both columns
		top    := pixel(bitmap, row, col)
		middle := pixel(bitmap, row+1, col)
		bottom := pixel(bitmap, row+2, col)
		return sextantSymbol(top, top, middle, middle, bottom, bottom)
	case Sextant:
		return sextantSymbol(
			pixel(bitmap, row, col), pixel(bitmap, row, col+1),
			pixel(bitmap, row+1, col), pixel(bitmap, row+1, col+1),
			pixel(bitmap, row+2, col), pixel(bitmap, row+2, col+1),
		)
	default:
		panic("invalid PixelSize '" + self.String() + "'")
	}
}

func sextantSymbol(topLeft, topRight, middleLeft, middleRight, bottomLeft, bottomRight int) rune {
	index := topLeft | topRight<<1 | middleLeft<<2 | middleRight<<3 | bottomLeft<<4 | bottomRight<<5
	return sextantSymbols[index]
}

// Returns the bitmap bit at (row, col) as 0 or 1, reading rows past the
// bottom edge as unset.
func pixel(bitmap [8]byte, row, col int) int {
	if row >= 8 { return 0 }
	return int(bitmap[row]>>col) & 1
}
