package bf

// Op is a single instruction from the eight-symbol alphabet.
type Op int

const (
	OpRight  = Op(0) // >
	OpLeft   = Op(1) // <
	OpInc    = Op(2) // +
	OpDec    = Op(3) // -
	OpOutput = Op(4) // .
	OpInput  = Op(5) // ,
	OpOpen   = Op(6) // [
	OpClose  = Op(7) // ]
)

// opcodes maps source runes to their Op. Runes outside this table are not
// part of the language, and are dropped by the lexer.
var opcodes = map[rune]Op{
	'>': OpRight,
	'<': OpLeft,
	'+': OpInc,
	'-': OpDec,
	'.': OpOutput,
	',': OpInput,
	'[': OpOpen,
	']': OpClose,
}

// symbols is the canonical source symbol of each Op, indexed by Op.
var symbols = [...]byte{'>', '<', '+', '-', '.', ',', '[', ']'}

// String returns the source symbol for the Op.
func (op Op) String() string {
	if op < 0 || int(op) >= len(symbols) {
		return "?"
	}

	return string(symbols[op])
}
