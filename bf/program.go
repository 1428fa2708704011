package bf

import (
	"strings"
)

// NoTarget is the placeholder in the jump-target table for every slot that
// is not a resolved bracket.
const NoTarget = -1

// Program is an ordered instruction sequence plus its jump-target table.
// Ops is fixed after lexing. Target is parallel to Ops and written exactly
// once, by Resolve, which fills each bracket's slot with the index of its
// structural partner; every other slot stays NoTarget.
type Program struct {
	Ops    []Op
	Target []int
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() int {
	return len(prog.Ops)
}

// String returns the canonical source text of the program, one symbol per
// instruction. Lexing the result reproduces the same instruction sequence.
func (prog *Program) String() string {
	var sb strings.Builder

	sb.Grow(len(prog.Ops))
	for _, op := range prog.Ops {
		sb.WriteString(op.String())
	}

	return sb.String()
}
