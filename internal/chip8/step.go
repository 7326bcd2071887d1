package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Outcome describes how a successful step ended.
type Outcome int

const (
	// Completed means the instruction was executed and the program counter moved on.
	Completed Outcome = iota
	// AwaitingKey means the machine is suspended on a key wait instruction.
	// Step can be called again, or Resume once a key event is available.
	AwaitingKey
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case AwaitingKey:
		return "awaiting key"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Step fetches, decodes and executes a single instruction.
// Faults are returned as *Fault and leave the machine state unchanged.
func (m *Machine) Step() (Outcome, error) {
	pc := m.pc
	word, err := m.Fetch()
	if err != nil {
		return Completed, &Fault{PC: pc, Err: err}
	}

	ins := Decode(word)
	wasWaiting := m.waiting

	eff, err := m.execute(ins)
	if err != nil {
		return Completed, &Fault{
			PC:       pc,
			Opcode:   word,
			Mnemonic: ins.Mnemonic(),
			Err:      err,
		}
	}

	switch eff {
	case next:
		m.pc += InstructionSize
	case skip:
		m.pc += 2 * InstructionSize
	case wait:
		if !wasWaiting {
			m.logger.Debug("Waiting for key",
				log.Hex("pc", pc),
				log.String("register", fmt.Sprintf("V%X", m.waitRegister)))
		}
		return AwaitingKey, nil
	case jump:
	}

	if wasWaiting && !m.waiting {
		m.logger.Debug("Key wait completed", log.Hex("pc", pc))
	}
	return Completed, nil
}

// Resume completes a pending key wait with the given key and moves on to the
// following instruction. It does nothing if no key wait is pending.
func (m *Machine) Resume(key uint8) error {
	if key >= KeyCount {
		return fmt.Errorf("%w: %d", ErrInvalidKey, key)
	}
	if !m.waiting {
		return nil
	}

	m.registers[m.waitRegister] = key
	m.waiting = false
	m.pc += InstructionSize

	m.logger.Debug("Key wait resumed",
		log.Hex("pc", m.pc),
		log.Uint8("key", key))
	return nil
}
