package document

import "unicode"

// Position addresses a rune offset inside a block.
type Position struct {
	Block  BlockID
	Offset int
}

// Selection is a range between two positions. Anchor is where the selection
// started, head is where it ends; they may be in any document order.
// A selection with equal anchor and head is a cursor.
type Selection struct {
	Anchor Position
	Head   Position
}

// Empty reports whether the selection is a bare cursor.
func (s Selection) Empty() bool {
	return s.Anchor == s.Head
}

// Cursor returns a collapsed selection at the given position.
func Cursor(block BlockID, offset int) Selection {
	p := Position{Block: block, Offset: offset}
	return Selection{Anchor: p, Head: p}
}

// Range returns a selection spanning [start, end) inside one block.
func Range(block BlockID, start, end int) Selection {
	return Selection{
		Anchor: Position{Block: block, Offset: start},
		Head:   Position{Block: block, Offset: end},
	}
}

// isWordRune decides what the word-under-cursor expansion treats as part of
// a word: letters, digits and the joining underscore.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// wordAround scans left and right from offset while the character class is
// "word" and returns the enclosing [start, end) range. ok is false when the
// cursor does not touch a word.
func wordAround(text []rune, offset int) (start, end int, ok bool) {
	if offset < 0 || offset > len(text) {
		return 0, 0, false
	}
	start, end = offset, offset
	for start > 0 && isWordRune(text[start-1]) {
		start--
	}
	for end < len(text) && isWordRune(text[end]) {
		end++
	}
	return start, end, start != end
}
