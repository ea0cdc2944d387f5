package bodyreader

// dingbatKey identifies one (font, codepoint) pair from a w:sym element.
type dingbatKey struct {
	font string
	char rune
}

// dingbats maps the symbol fonts Word ships by default to the Unicode
// codepoints they actually display, for the handful of characters that
// show up in real documents (checkmarks, bullets, hands). It is not an
// exhaustive transcription of Wingdings/Webdings/Symbol — just the entries
// this reader has been asked to resolve.
var dingbats = map[dingbatKey]rune{
	{font: "Wingdings", char: 0x28}:   0x1F44D, // thumbs up
	{font: "Wingdings", char: 0x29}:   0x1F44E, // thumbs down
	{font: "Wingdings", char: 0xFC}:   0x2713,  // check mark
	{font: "Wingdings", char: 0xFB}:   0x2714,  // heavy check mark
	{font: "Wingdings", char: 0x4C}:   0x2B24,  // black circle
	{font: "Wingdings", char: 0xA7}:   0x25A0,  // black square
	{font: "Webdings", char: 0x3F}:    0x1F600, // smiling face
	{font: "Symbol", char: 0x61}:      0x03B1,  // alpha
	{font: "Symbol", char: 0x62}:      0x03B2,  // beta
	{font: "Symbol", char: 0xD7}:      0x00D7,  // multiplication sign
}

// lookupDingbat resolves (font, char) to a display rune. Word sometimes
// prefixes the hex codepoint with "F0" (the Private Use Area convention for
// symbol fonts); if the first lookup misses, it retries with that prefix
// stripped.
func lookupDingbat(font string, char rune) (rune, bool) {
	if r, ok := dingbats[dingbatKey{font: font, char: char}]; ok {
		return r, true
	}
	if char >= 0xF000 && char <= 0xF0FF {
		if r, ok := dingbats[dingbatKey{font: font, char: char - 0xF000}]; ok {
			return r, true
		}
	}
	return 0, false
}
