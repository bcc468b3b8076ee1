package templater

// TextReader is a position-tracking cursor over an immutable piece of text.
// It operates on runes so multi-byte input behaves the same as the ASCII
// case. Boundary conditions are reported through the boolean "no character"
// sentinel; no method can fail.
type TextReader struct {
	runes []rune
	idx   int
}

// NewTextReader creates a reader positioned at the first rune of text.
func NewTextReader(text string) *TextReader {
	return &TextReader{runes: []rune(text)}
}

// Current returns the rune under the cursor. The boolean is false only for
// empty input.
func (r *TextReader) Current() (rune, bool) {
	if len(r.runes) == 0 {
		return 0, false
	}
	return r.runes[r.idx], true
}

// Peek returns the rune one position ahead without moving the cursor.
func (r *TextReader) Peek() (rune, bool) {
	if r.idx+1 >= len(r.runes) {
		return 0, false
	}
	return r.runes[r.idx+1], true
}

// Advance moves the cursor forward one rune and returns the new current
// rune. On the last rune (or empty input) the cursor stays put and the
// boolean is false, signalling end of input.
func (r *TextReader) Advance() (rune, bool) {
	if _, ok := r.Peek(); !ok {
		return 0, false
	}
	r.idx++
	return r.runes[r.idx], true
}

// IsLast reports whether the cursor sits on the final rune. Always false
// for empty input.
func (r *TextReader) IsLast() bool {
	return len(r.runes) > 0 && r.idx == len(r.runes)-1
}
