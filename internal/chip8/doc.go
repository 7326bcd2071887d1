// Package chip8 implements the instruction interpreter of the CHIP-8 virtual machine.
//
// # Machine State
//
// A Machine holds 4KB of memory, the 16 general purpose registers V0-VF,
// the address register I, the program counter, a 16 entry call stack,
// the 64x32 monochrome display and the delay and sound timers:
//
//	0x000-0x1FF: Interpreter area, font glyphs at FontAddress
//	0x200-0xFFF: Program space, programs are loaded at ProgramStart
//
// VF doubles as the carry, borrow and sprite collision flag.
//
// # Execution
//
// Step executes a single instruction: the word at the program counter is
// fetched high byte first, decoded into its operand fields and dispatched on
// its top nibble. Unknown words are no-ops that advance the program counter.
// Faults such as a stack overflow are returned as *Fault wrapping one of the
// Err sentinels, and the machine is left as it was before the step.
//
// The key wait instruction does not block. Step reports AwaitingKey and the
// host either calls Step again once the Keypad reports a key, or passes the
// key to Resume.
//
// # Collaborators
//
// Rendering, audio, input polling and the 60 Hz timer clock are left to the
// host. The host reads the Display after each step, calls TickTimers at 60 Hz
// and injects a Keypad and a RandomSource through Dependencies.
//
// # Usage Example
//
//	keys := &chip8.Keys{}
//	m := chip8.New(logger, chip8.Dependencies{Keypad: keys})
//	if err := m.Load(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for {
//		if _, err := m.Step(); err != nil {
//			return fmt.Errorf("stepping: %w", err)
//		}
//	}
package chip8
