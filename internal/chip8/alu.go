package chip8

// opALU handles the register arithmetic and logic family 8xyN, keyed on N.
// The flag is written after the result, so VF as destination holds the flag.
func (m *Machine) opALU(ins Instruction) (effect, error) {
	vx, vy := m.registers[ins.X], m.registers[ins.Y]

	switch ins.N {
	case 0x0:
		m.registers[ins.X] = vy
	case 0x1:
		m.registers[ins.X] = vx | vy
	case 0x2:
		m.registers[ins.X] = vx & vy
	case 0x3:
		m.registers[ins.X] = vx ^ vy

	case 0x4:
		sum := uint16(vx) + uint16(vy)
		m.registers[ins.X] = uint8(sum)
		m.registers[FlagRegister] = boolToFlag(sum > 0xFF)

	case 0x5:
		m.registers[ins.X] = vx - vy
		m.registers[FlagRegister] = boolToFlag(vy > vx)

	case 0x6:
		m.registers[ins.X] = vx >> 1
		m.registers[FlagRegister] = vx & 0x01

	case 0x7:
		m.registers[ins.X] = vy - vx
		m.registers[FlagRegister] = boolToFlag(vx > vy)

	case 0xE:
		m.registers[ins.X] = vx << 1
		m.registers[FlagRegister] = vx >> 7
	}

	return next, nil
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
