package chip8

// effect tells Step how to continue after an instruction handler returned.
type effect int

const (
	next effect = iota // advance to the following instruction
	skip               // advance past the following instruction
	jump               // the handler set the program counter
	wait               // suspended on a key wait, program counter unchanged
)

type handler func(m *Machine, ins Instruction) (effect, error)

// families maps the top nibble of an instruction word to its handler.
var families = [16]handler{
	0x0: (*Machine).opSystem,
	0x1: (*Machine).opJump,
	0x2: (*Machine).opCall,
	0x3: (*Machine).opSkipEqualByte,
	0x4: (*Machine).opSkipNotEqualByte,
	0x5: (*Machine).opSkipEqualRegister,
	0x6: (*Machine).opLoadByte,
	0x7: (*Machine).opAddByte,
	0x8: (*Machine).opALU,
	0x9: (*Machine).opSkipNotEqualRegister,
	0xA: (*Machine).opLoadIndex,
	0xB: (*Machine).opJumpOffset,
	0xC: (*Machine).opRandom,
	0xD: (*Machine).opDraw,
	0xE: (*Machine).opSkipKey,
	0xF: (*Machine).opMisc,
}

// execute dispatches the instruction to the handler of its family.
// Handlers validate all accesses before changing any state, so a returned
// error means the machine is unchanged.
func (m *Machine) execute(ins Instruction) (effect, error) {
	return families[ins.Family&0x0F](m, ins)
}

func skipIf(condition bool) effect {
	if condition {
		return skip
	}
	return next
}

// opSystem handles 00E0 (clear screen) and 00EE (return). All other words of
// the family are machine code routine calls and are ignored.
func (m *Machine) opSystem(ins Instruction) (effect, error) {
	switch ins.Opcode {
	case 0x00E0:
		m.display.Clear()
		return next, nil

	case 0x00EE:
		if m.sp == 0 {
			return next, ErrStackUnderflow
		}
		m.sp--
		m.pc = m.stack[m.sp]
		m.stack[m.sp] = 0
		return jump, nil
	}
	return next, nil
}

// opJump handles 1nnn.
func (m *Machine) opJump(ins Instruction) (effect, error) {
	m.pc = ins.NNN
	return jump, nil
}

// opCall handles 2nnn, pushing the address of the following instruction.
func (m *Machine) opCall(ins Instruction) (effect, error) {
	if int(m.sp) >= StackSize {
		return next, ErrStackOverflow
	}
	m.stack[m.sp] = m.pc + InstructionSize
	m.sp++
	m.pc = ins.NNN
	return jump, nil
}

// opSkipEqualByte handles 3xkk.
func (m *Machine) opSkipEqualByte(ins Instruction) (effect, error) {
	return skipIf(m.registers[ins.X] == ins.KK), nil
}

// opSkipNotEqualByte handles 4xkk.
func (m *Machine) opSkipNotEqualByte(ins Instruction) (effect, error) {
	return skipIf(m.registers[ins.X] != ins.KK), nil
}

// opSkipEqualRegister handles 5xy0.
func (m *Machine) opSkipEqualRegister(ins Instruction) (effect, error) {
	if ins.N != 0 {
		return next, nil
	}
	return skipIf(m.registers[ins.X] == m.registers[ins.Y]), nil
}

// opLoadByte handles 6xkk.
func (m *Machine) opLoadByte(ins Instruction) (effect, error) {
	m.registers[ins.X] = ins.KK
	return next, nil
}

// opAddByte handles 7xkk. The carry flag is not affected.
func (m *Machine) opAddByte(ins Instruction) (effect, error) {
	m.registers[ins.X] += ins.KK
	return next, nil
}

// opSkipNotEqualRegister handles 9xy0.
func (m *Machine) opSkipNotEqualRegister(ins Instruction) (effect, error) {
	if ins.N != 0 {
		return next, nil
	}
	return skipIf(m.registers[ins.X] != m.registers[ins.Y]), nil
}

// opLoadIndex handles Annn.
func (m *Machine) opLoadIndex(ins Instruction) (effect, error) {
	m.index = ins.NNN
	return next, nil
}

// opJumpOffset handles Bnnn. The target has to be a fetchable address.
func (m *Machine) opJumpOffset(ins Instruction) (effect, error) {
	target := uint16(m.registers[0]) + ins.NNN
	if err := checkRange(target, InstructionSize); err != nil {
		return next, err
	}
	m.pc = target
	return jump, nil
}

// opRandom handles Cxkk.
func (m *Machine) opRandom(ins Instruction) (effect, error) {
	m.registers[ins.X] = m.random.RandomByte() & ins.KK
	return next, nil
}

// opDraw handles Dxyn, drawing an n byte sprite read from I at (Vx, Vy).
func (m *Machine) opDraw(ins Instruction) (effect, error) {
	height := int(ins.N)
	if err := checkRange(m.index, height); err != nil {
		return next, err
	}

	x, y := m.registers[ins.X], m.registers[ins.Y]
	sprite := m.memory[m.index : int(m.index)+height]
	if m.display.drawSprite(x, y, sprite) {
		m.registers[FlagRegister] = 1
	} else {
		m.registers[FlagRegister] = 0
	}
	return next, nil
}

// opSkipKey handles Ex9E and ExA1.
func (m *Machine) opSkipKey(ins Instruction) (effect, error) {
	key := m.registers[ins.X] & 0x0F
	switch ins.KK {
	case 0x9E:
		return skipIf(m.keypad.Pressed(key)), nil
	case 0xA1:
		return skipIf(!m.keypad.Pressed(key)), nil
	}
	return next, nil
}
