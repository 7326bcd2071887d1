package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 memory layout constants.
//
//	0x000-0x1FF: Interpreter area, holds the font glyphs at FontAddress
//	0x200-0xFFF: Program space
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// ProgramStart is the memory address where programs are loaded and start execution.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// FlagRegister is the index of VF, used for carry, borrow and collision flags.
	FlagRegister = 0xF

	// StackSize is the maximum nesting depth of subroutine calls.
	StackSize = 16

	// KeyCount is the number of logical keys of the hex keypad.
	KeyCount = 16

	// InstructionSize is the width of every instruction in bytes.
	InstructionSize = 2
)

// Dependencies contains the collaborators that are injected into the machine.
type Dependencies struct {
	Keypad Keypad
	Random RandomSource
}

// Machine is the CHIP-8 virtual machine state together with the
// collaborators it queries during execution.
// It is not safe for concurrent use.
type Machine struct {
	logger *log.Logger
	keypad Keypad
	random RandomSource

	memory    [MemorySize]byte
	registers [RegisterCount]uint8
	index     uint16
	pc        uint16

	stack [StackSize]uint16
	sp    uint8

	display Display

	delayTimer uint8
	soundTimer uint8

	waiting      bool  // a key wait instruction is pending
	waitRegister uint8 // register that receives the key of a pending wait
}

// New returns a new machine in reset configuration.
// Missing dependencies are replaced by a keypad with no keys pressed and a
// time seeded random source.
func New(logger *log.Logger, deps Dependencies) *Machine {
	m := &Machine{
		logger: logger,
		keypad: deps.Keypad,
		random: deps.Random,
	}
	if m.keypad == nil {
		m.keypad = &Keys{}
	}
	if m.random == nil {
		m.random = NewRandom(0)
	}
	m.Reset()
	return m
}

// Reset clears memory, registers, stack, display and timers, reloads the
// font and sets the program counter to the program start address.
func (m *Machine) Reset() {
	m.memory = [MemorySize]byte{}
	m.registers = [RegisterCount]uint8{}
	m.index = 0
	m.pc = ProgramStart
	m.stack = [StackSize]uint16{}
	m.sp = 0
	m.display.Clear()
	m.delayTimer = 0
	m.soundTimer = 0
	m.waiting = false
	m.waitRegister = 0

	copy(m.memory[FontAddress:], fontSet[:])

	m.logger.Debug("Machine reset", log.Hex("pc", m.pc))
}

// Load copies a program image into memory at the program start address.
func (m *Machine) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	copy(m.memory[ProgramStart:], program)
	m.logger.Debug("Program loaded",
		log.Hex("address", uint16(ProgramStart)),
		log.Int("size", len(program)))
	return nil
}

// V returns the value of register Vi. Only the low nibble of i is used.
func (m *Machine) V(i uint8) uint8 {
	return m.registers[i&0x0F]
}

// SetV sets register Vi. Only the low nibble of i is used.
func (m *Machine) SetV(i, value uint8) {
	m.registers[i&0x0F] = value
}

// I returns the address register.
func (m *Machine) I() uint16 {
	return m.index
}

// SetI sets the address register.
func (m *Machine) SetI(value uint16) {
	m.index = value
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// SetPC sets the program counter.
func (m *Machine) SetPC(value uint16) {
	m.pc = value
}

// SP returns the current call stack depth.
func (m *Machine) SP() int {
	return int(m.sp)
}

// Memory returns the byte at the given address.
func (m *Machine) Memory(address uint16) (byte, error) {
	if int(address) >= MemorySize {
		return 0, fmt.Errorf("%w: read at $%04X", ErrMemoryOutOfBounds, address)
	}
	return m.memory[address], nil
}

// WriteMemory writes a byte at the given address.
func (m *Machine) WriteMemory(address uint16, value byte) error {
	if int(address) >= MemorySize {
		return fmt.Errorf("%w: write at $%04X", ErrMemoryOutOfBounds, address)
	}
	m.memory[address] = value
	return nil
}

// DelayTimer returns the delay timer.
func (m *Machine) DelayTimer() uint8 {
	return m.delayTimer
}

// SoundTimer returns the sound timer. A host should produce a tone while it is non zero.
func (m *Machine) SoundTimer() uint8 {
	return m.soundTimer
}

// Display returns a copy of the current display buffer.
func (m *Machine) Display() Display {
	return m.display
}

// Waiting returns whether the machine is suspended on a key wait instruction.
func (m *Machine) Waiting() bool {
	return m.waiting
}

// TickTimers decrements the delay and sound timers by one, stopping at zero.
// It is meant to be called by an external 60 Hz clock.
func (m *Machine) TickTimers() {
	if m.delayTimer > 0 {
		m.delayTimer--
	}
	if m.soundTimer > 0 {
		m.soundTimer--
	}
}

// checkRange returns an error if any address of the range
// [address, address+length) lies outside of memory.
func checkRange(address uint16, length int) error {
	if int(address)+length > MemorySize {
		return fmt.Errorf("%w: $%04X-$%04X", ErrMemoryOutOfBounds, address, int(address)+length-1)
	}
	return nil
}
