package bf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		target []int
	}){
		{"pair", "[]", []int{1, 0}},
		{"nested", "[[]]", []int{3, 2, 1, 0}},
		{"sequential", "[][]", []int{1, 0, 3, 2}},
		{"mixed", "+[+]", []int{NoTarget, 3, NoTarget, 1}},
		{"no brackets", "+-><.,", []int{NoTarget, NoTarget, NoTarget, NoTarget, NoTarget, NoTarget}},
	}

	for _, entry := range table {
		prog := Lex(entry.source)
		err := prog.Resolve()

		assert.NoError(err, entry.name)
		assert.Equal(entry.target, prog.Target, entry.name)
	}
}

// Every resolved bracket's partner must point straight back at it.
func TestResolveSymmetric(t *testing.T) {
	assert := assert.New(t)

	sources := []string{
		"[]",
		"[[][[]]][]",
		"+++[>++++[>+<-]<-]>>.",
		"++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.",
	}

	for _, source := range sources {
		prog := Lex(source)
		err := prog.Resolve()
		assert.NoError(err, source)

		for i, op := range prog.Ops {
			switch op {
			case OpOpen:
				assert.Equal(OpClose, prog.Ops[prog.Target[i]], source)
				assert.Equal(i, prog.Target[prog.Target[i]], source)
			case OpClose:
				assert.Equal(OpOpen, prog.Ops[prog.Target[i]], source)
				assert.Equal(i, prog.Target[prog.Target[i]], source)
			default:
				assert.Equal(NoTarget, prog.Target[i], source)
			}
		}
	}
}

func TestResolveUnmatched(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		fail   error
	}){
		{"lone open", "[", ErrUnmatchedOpen(0)},
		{"lone close", "]", ErrUnmatchedClose(0)},
		{"reversed", "][", ErrUnmatchedClose(0)},
		{"open after code", "+[", ErrUnmatchedOpen(1)},
		{"unclosed nest", "[[]", ErrUnmatchedOpen(0)},
		// A close whose backward scan reaches the front of the program is
		// unmatched, never silently retargeted.
		{"close at front", "[]]", ErrUnmatchedClose(2)},
	}

	for _, entry := range table {
		prog := Lex(entry.source)
		err := prog.Resolve()

		assert.Equal(entry.fail, err, entry.name)
	}
}

func TestResolveMessages(t *testing.T) {
	assert := assert.New(t)

	assert.EqualError(ErrUnmatchedOpen(3), "unmatched loop open at index 3")
	assert.EqualError(ErrUnmatchedClose(7), "unmatched loop close at index 7")
}
