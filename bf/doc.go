// Package bf implements the brainfuck language front end: lexing source
// text into an instruction stream, and resolving the jump targets of its
// loop brackets.
//
// A program is a flat sequence of opcodes. The language has no operands or
// nesting beyond the loop brackets, so no AST is generated; the bracket
// structure is captured in a jump-target table computed after lexing.
package bf
