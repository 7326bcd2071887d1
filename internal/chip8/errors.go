package chip8

import (
	"errors"
	"fmt"
)

// Fault conditions reported by Step. They are returned wrapped in a *Fault and
// can be matched with errors.Is.
var (
	ErrMemoryOutOfBounds        = errors.New("memory access out of bounds")
	ErrStackOverflow            = errors.New("stack overflow")
	ErrStackUnderflow           = errors.New("stack underflow")
	ErrUnimplementedInstruction = errors.New("unimplemented instruction")
	ErrProgramTooLarge          = errors.New("program too large")
	ErrInvalidKey               = errors.New("invalid key")
)

// Fault describes an instruction that could not be executed.
// The machine state is unchanged by the failed step.
type Fault struct {
	PC       uint16
	Opcode   uint16
	Mnemonic string
	Err      error
}

func (f *Fault) Error() string {
	if f.Mnemonic == "" {
		return fmt.Sprintf("fetching instruction at $%04X: %s", f.PC, f.Err)
	}
	return fmt.Sprintf("executing %s ($%04X) at $%04X: %s", f.Mnemonic, f.Opcode, f.PC, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
