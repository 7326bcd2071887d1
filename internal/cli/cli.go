// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/set"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args[0], os.Args[1:])
}

func parseArgs(name string, arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(arguments)
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if opts.Input == "" && opts.Batch == "" {
		opts.Input = args[0]
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file to run as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions validates option values and parses the held keys
func normalizeOptions(opts *options.Program) error {
	if opts.Steps <= 0 {
		return fmt.Errorf("invalid step count %d, must be positive", opts.Steps)
	}
	if opts.InstructionsPerFrame <= 0 {
		return fmt.Errorf("invalid instructions per frame %d, must be positive", opts.InstructionsPerFrame)
	}

	keys, err := parseKeys(opts.Keys)
	if err != nil {
		return err
	}
	opts.HeldKeys = keys
	return nil
}

// parseKeys parses a comma separated list of hex key numbers, ignoring duplicates.
func parseKeys(s string) ([]uint8, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	seen := set.New[uint8]()
	var keys []uint8
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		value, err := strconv.ParseUint(field, 16, 8)
		if err != nil || value >= chip8.KeyCount {
			return nil, fmt.Errorf("invalid key '%s', valid keys are 0-F", field)
		}

		key := uint8(value)
		if seen.Contains(key) {
			continue
		}
		seen.Add(key)
		keys = append(keys, key)
	}
	return keys, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output file for the final display, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask, for example *.ch8")
	flags.IntVar(&opts.Steps, "steps", options.DefaultSteps, "maximum number of instructions to execute")
	flags.IntVar(&opts.InstructionsPerFrame, "ipf", options.DefaultInstructionsPerFrame, "instructions executed per 60 Hz timer tick")
	flags.Int64Var(&opts.Seed, "seed", 0, "random seed, 0 uses the current time")
	flags.StringVar(&opts.Keys, "keys", "", "comma separated hex keys held down during the run, for example 5,a")
	flags.BoolVar(&opts.Display, "display", false, "print the display after the run")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
