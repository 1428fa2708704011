package vm

import (
	"errors"

	"gobf/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrPointerUnderflow = errors.New(f("cannot decrement pointer below zero"))
	ErrInputRead        = errors.New(f("input read error"))
	ErrOutputWrite      = errors.New(f("output write error"))
	ErrUnresolved       = errors.New(f("unresolved jump target"))
)

// ErrRuntime indicates the instruction index of a runtime error.
type ErrRuntime struct {
	Ip  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("instruction %d %v", err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
