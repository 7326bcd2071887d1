package chip8

// opMisc handles the timer, key wait, index and memory transfer family FxKK.
func (m *Machine) opMisc(ins Instruction) (effect, error) {
	switch ins.KK {
	case 0x07:
		m.registers[ins.X] = m.delayTimer

	case 0x0A:
		return m.waitForKey(ins.X), nil

	case 0x15:
		m.delayTimer = m.registers[ins.X]

	case 0x18:
		m.soundTimer = m.registers[ins.X]

	case 0x1E:
		m.index += uint16(m.registers[ins.X])

	case 0x29:
		m.index = glyphAddress(m.registers[ins.X])

	case 0x33:
		return next, m.storeBCD(m.registers[ins.X])

	case 0x55:
		return next, m.storeRegisters(ins.X)

	case 0x65:
		return next, m.loadRegisters(ins.X)
	}

	return next, nil
}

// waitForKey completes a key wait if the keypad reports a held key,
// otherwise it suspends the machine on the current instruction.
func (m *Machine) waitForKey(register uint8) effect {
	key, ok := m.keypad.AnyPressed()
	if ok {
		m.registers[register] = key
		m.waiting = false
		return next
	}

	m.waiting = true
	m.waitRegister = register
	return wait
}

// storeBCD writes the hundreds, tens and ones digit of value to I, I+1 and I+2.
func (m *Machine) storeBCD(value uint8) error {
	if err := checkRange(m.index, 3); err != nil {
		return err
	}
	m.memory[m.index] = value / 100
	m.memory[m.index+1] = value / 10 % 10
	m.memory[m.index+2] = value % 10
	return nil
}

// storeRegisters writes V0 to Vlast inclusive to memory starting at I.
func (m *Machine) storeRegisters(last uint8) error {
	count := int(last) + 1
	if err := checkRange(m.index, count); err != nil {
		return err
	}
	copy(m.memory[m.index:], m.registers[:count])
	return nil
}

// loadRegisters reads V0 to Vlast inclusive from memory starting at I.
func (m *Machine) loadRegisters(last uint8) error {
	count := int(last) + 1
	if err := checkRange(m.index, count); err != nil {
		return err
	}
	copy(m.registers[:count], m.memory[m.index:])
	return nil
}
