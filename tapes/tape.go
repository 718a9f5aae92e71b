package tapes

// Blank is the symbol read from any cell that was never written,
// including positions beyond the current bounds.
const Blank = '_'

// Tape is the machine's memory: a sequence of symbols indexed from 0,
// growable at both ends. The buffer keeps headroom on the left so that
// prepending is amortized O(1), same as appending.
type Tape struct {
	buf   []rune
	start int
}

func New(input string) *Tape {
	return &Tape{
		buf: []rune(input),
	}
}

func (t *Tape) Len() int {
	return len(t.buf) - t.start
}

// Read returns the symbol at index i, or Blank when i is out of bounds.
func (t *Tape) Read(i int) rune {
	if i < 0 || i >= t.Len() {
		return Blank
	}
	return t.buf[t.start+i]
}

// Write overwrites the symbol at index i. i must be in bounds.
func (t *Tape) Write(i int, symbol rune) {
	t.buf[t.start+i] = symbol
}

// Append grows the tape on the right.
func (t *Tape) Append(symbol rune) {
	t.buf = append(t.buf, symbol)
}

// Prepend grows the tape on the left; the new cell becomes index 0.
func (t *Tape) Prepend(symbol rune) {
	if t.start == 0 {
		pad := len(t.buf)
		if pad < 4 {
			pad = 4
		}
		grown := make([]rune, pad+len(t.buf), pad+cap(t.buf))
		copy(grown[pad:], t.buf)
		t.buf = grown
		t.start = pad
	}
	t.start--
	t.buf[t.start] = symbol
}

// Symbols returns a copy of the tape cells.
func (t *Tape) Symbols() []rune {
	cells := make([]rune, t.Len())
	copy(cells, t.buf[t.start:])
	return cells
}

func (t *Tape) String() string {
	return string(t.buf[t.start:])
}
