package bf

import (
	"gobf/translate"
)

var f = translate.From

// ErrUnmatchedOpen reports an OpOpen with no matching OpClose. The value
// is the instruction index of the offending bracket.
type ErrUnmatchedOpen int

func (err ErrUnmatchedOpen) Error() string {
	return f("unmatched loop open at index %d", int(err))
}

// ErrUnmatchedClose reports an OpClose with no matching OpOpen.
type ErrUnmatchedClose int

func (err ErrUnmatchedClose) Error() string {
	return f("unmatched loop close at index %d", int(err))
}
