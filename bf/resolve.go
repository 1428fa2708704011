package bf

// Resolve fills in the jump-target table: for every OpOpen and OpClose,
// Target[i] becomes the index of its structurally matching partner.
// Each bracket is resolved independently by a linear scan, so resolution
// is O(n²) in the worst case for deeply nested programs.
//
// Any unmatched bracket is fatal; a Program whose Resolve failed must not
// be executed.
func (prog *Program) Resolve() (err error) {
	for i, op := range prog.Ops {
		switch op {
		case OpOpen:
			depth := 1
			p := i + 1
			for ; p < len(prog.Ops); p++ {
				switch prog.Ops[p] {
				case OpOpen:
					depth++
				case OpClose:
					depth--
				}
				if depth == 0 {
					break
				}
			}
			if p == len(prog.Ops) {
				return ErrUnmatchedOpen(i)
			}
			prog.Target[i] = p
		case OpClose:
			depth := 1
			p := i - 1
			for ; p >= 0; p-- {
				switch prog.Ops[p] {
				case OpClose:
					depth++
				case OpOpen:
					depth--
				}
				if depth == 0 {
					break
				}
			}
			if p < 0 {
				return ErrUnmatchedClose(i)
			}
			prog.Target[i] = p
		}
	}

	return
}
