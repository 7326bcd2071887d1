package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// unknownMnemonic is reported for words that match no entry of the opcode table.
const unknownMnemonic = "unknown"

// Instruction is a decoded instruction word.
type Instruction struct {
	Opcode uint16 // raw instruction word
	Family uint8  // bits 12-15, instruction group
	X      uint8  // bits 8-11, first register index
	Y      uint8  // bits 4-7, second register index
	N      uint8  // bits 0-3, 4-bit immediate
	KK     uint8  // bits 0-7, 8-bit immediate
	NNN    uint16 // bits 0-11, 12-bit address

	info *chip8.Instruction // opcode table entry, nil if unknown
}

// Mnemonic returns the instruction name of the opcode table entry matching
// the word, or "unknown".
func (ins Instruction) Mnemonic() string {
	if ins.info == nil {
		return unknownMnemonic
	}
	return ins.info.Name
}

// String returns the mnemonic and the raw word.
func (ins Instruction) String() string {
	return fmt.Sprintf("%s $%04X", ins.Mnemonic(), ins.Opcode)
}

// Fetch reads the instruction word at the program counter, high byte first.
func (m *Machine) Fetch() (uint16, error) {
	if int(m.pc)+1 >= MemorySize {
		return 0, fmt.Errorf("%w: fetch at $%04X", ErrMemoryOutOfBounds, m.pc)
	}
	return uint16(m.memory[m.pc])<<8 | uint16(m.memory[m.pc+1]), nil
}

// Decode splits an instruction word into its operand fields.
func Decode(word uint16) Instruction {
	return Instruction{
		Opcode: word,
		Family: uint8(word >> 12),
		X:      uint8((word & 0x0F00) >> 8),
		Y:      uint8((word & 0x00F0) >> 4),
		N:      uint8(word & 0x000F),
		KK:     uint8(word & 0x00FF),
		NNN:    word & 0x0FFF,
		info:   lookupInstruction(word),
	}
}

// lookupInstruction returns the opcode table entry that matches the word.
func lookupInstruction(word uint16) *chip8.Instruction {
	family := int((word & 0xF000) >> 12)
	for _, op := range chip8.Opcodes[family] {
		if op.Info.Mask&word == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}
