package vm

import (
	"errors"
	"io"

	"gobf/bf"
)

// Machine is the execution state for one run of a resolved program: an
// instruction pointer into the program, a data pointer into the tape, and
// the raw byte streams serving the input and output instructions. State is
// created at run start and owned by a single run; nothing persists across
// runs except what Reset keeps.
type Machine struct {
	Program *bf.Program // Program under execution.

	Ip   int  // Current instruction pointer.
	Dp   int  // Current data pointer.
	Tape Tape // Byte tape, grown on demand.

	Input  io.Reader // Source for OpInput, one byte per instruction.
	Output io.Writer // Sink for OpOutput, one byte per instruction.
}

// NewMachine creates a machine for prog. The caller assigns Input and
// Output before running.
func NewMachine(prog *bf.Program) (mach *Machine) {
	mach = &Machine{
		Program: prog,
	}

	return
}

// Reset returns the machine to its initial state, keeping the program and
// the streams.
func (mach *Machine) Reset() {
	mach.Ip = 0
	mach.Dp = 0
	mach.Tape.Reset()
}

// Step executes a single instruction. It reports done once the instruction
// pointer has advanced past the end of the program; there is no explicit
// halt instruction. Any error is fatal to the run and carries the index of
// the faulting instruction.
func (mach *Machine) Step() (done bool, err error) {
	if mach.Ip >= mach.Program.Len() {
		done = true
		return
	}

	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: mach.Ip, Err: err}
		}
	}()

	mach.Tape.Ensure(mach.Dp)

	// A taken jump overrides the advance to the next instruction.
	next := mach.Ip + 1

	switch mach.Program.Ops[mach.Ip] {
	case bf.OpRight:
		mach.Dp++
	case bf.OpLeft:
		if mach.Dp == 0 {
			err = ErrPointerUnderflow
			return
		}
		mach.Dp--
	case bf.OpInc:
		// Cell arithmetic wraps modulo 256.
		mach.Tape.Cells[mach.Dp]++
	case bf.OpDec:
		mach.Tape.Cells[mach.Dp]--
	case bf.OpOutput:
		one := [1]byte{mach.Tape.Cells[mach.Dp]}
		_, werr := mach.Output.Write(one[:])
		if werr != nil {
			err = errors.Join(ErrOutputWrite, werr)
			return
		}
	case bf.OpInput:
		var one [1]byte
		_, rerr := io.ReadFull(mach.Input, one[:])
		if rerr != nil {
			err = errors.Join(ErrInputRead, rerr)
			return
		}
		mach.Tape.Cells[mach.Dp] = one[0]
	case bf.OpOpen:
		if mach.Tape.Cells[mach.Dp] == 0 {
			if next = mach.Program.Target[mach.Ip]; next < 0 {
				err = ErrUnresolved
				return
			}
		}
	case bf.OpClose:
		if mach.Tape.Cells[mach.Dp] != 0 {
			if next = mach.Program.Target[mach.Ip]; next < 0 {
				err = ErrUnresolved
				return
			}
		}
	}

	mach.Ip = next

	return
}

// Run drives Step until the program completes or fails.
func (mach *Machine) Run() (err error) {
	var done bool
	for !done && err == nil {
		done, err = mach.Step()
	}

	return
}
