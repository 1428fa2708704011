package vm

// Tape is the interpreter's memory: a sequence of byte cells grown on
// demand from a fixed origin. It never shrinks during a run, and is only
// ever addressed by a non-negative index.
type Tape struct {
	Cells []byte
}

// Ensure grows the tape with zero cells until index exists.
func (tape *Tape) Ensure(index int) {
	for index >= len(tape.Cells) {
		tape.Cells = append(tape.Cells, 0)
	}
}

// Len returns the number of cells allocated so far.
func (tape *Tape) Len() int {
	return len(tape.Cells)
}

// Reset discards all cells.
func (tape *Tape) Reset() {
	if len(tape.Cells) > 0 {
		tape.Cells = tape.Cells[:0]
	}
}
