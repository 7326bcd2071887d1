// Package options contains the program options.
package options

// Default values of the behavior options.
const (
	DefaultSteps                = 1000
	DefaultInstructionsPerFrame = 11
)

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Output string `flag:"o" usage:"output file for the final display (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.ch8)"`
}

// Flags contains behavior options.
type Flags struct {
	Steps                int    `flag:"steps" usage:"maximum number of instructions to execute" default:"1000"`
	InstructionsPerFrame int    `flag:"ipf" usage:"instructions executed per 60 Hz timer tick" default:"11"`
	Seed                 int64  `flag:"seed" usage:"random seed, 0 uses the current time"`
	Keys                 string `flag:"keys" usage:"comma separated hex keys held down during the run (e.g. 5,a)"`
	Display              bool   `flag:"display" usage:"print the display after the run"`
	Debug                bool   `flag:"debug" usage:"enable debug logging"`
	Quiet                bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags

	HeldKeys []uint8 // parsed from Keys
}
