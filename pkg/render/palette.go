package render

// A Palette maps escape counts to characters, from fastest escaping to
// never escaping.
type Palette string

const DefaultPalette Palette = " .,'~=+:;[/<*?&o0x#"

// Char halves iterations and skips the first three steps, which are always
// blank. Counts past the end of the palette use its last character.
func (p Palette) Char(iterations int) byte {
	i := iterations / 2
	if i < 3 || len(p) == 0 {
		return ' '
	}

	i -= 3
	if i >= len(p) {
		return p[len(p)-1]
	}
	return p[i]
}
