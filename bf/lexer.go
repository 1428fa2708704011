package bf

// Lex converts source text into a Program. Every recognized symbol becomes
// one instruction, in source order; every other character, whitespace and
// comments included, has no representation in the Program at all.
//
// Lex never fails: any input, including empty or entirely non-language
// text, yields a valid (possibly empty) Program.
func Lex(source string) (prog *Program) {
	prog = &Program{}

	for _, ch := range source {
		op, ok := opcodes[ch]
		if !ok {
			continue
		}
		prog.Ops = append(prog.Ops, op)
		prog.Target = append(prog.Target, NoTarget)
	}

	return
}
