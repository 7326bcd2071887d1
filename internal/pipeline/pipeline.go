// Package pipeline orchestrates the emulation workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// StopReason describes why a run ended.
type StopReason string

// Reasons for a run to end without a fault.
const (
	StepLimit   StopReason = "step limit reached"
	Halted      StopReason = "program halted"
	AwaitingKey StopReason = "awaiting key input"
)

// Result contains the state of a finished run.
type Result struct {
	Machine *chip8.Machine
	Steps   int // number of executed instructions
	Frames  int // number of 60 Hz timer ticks
	Reason  StopReason
}

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new emulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute loads the ROM of the options and runs it.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) (*Result, error) {
	program, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}

	return p.ExecuteWithProgram(ctx, program, opts, writer)
}

// ExecuteWithProgram runs the pipeline with a program image that is already in memory.
// This is useful for testing and programmatic usage.
func (p *Pipeline) ExecuteWithProgram(ctx context.Context, program []byte, opts options.Program,
	writer io.Writer) (*Result, error) {

	machine, err := p.createMachine(program, opts)
	if err != nil {
		return nil, fmt.Errorf("creating machine: %w", err)
	}

	p.printInfo(opts, len(program))

	result, err := p.run(ctx, machine, opts)
	if err != nil {
		return result, fmt.Errorf("running program: %w", err)
	}

	p.logger.Info("Run finished",
		log.String("reason", string(result.Reason)),
		log.Int("steps", result.Steps),
		log.Hex("pc", machine.PC()))

	if opts.Display {
		if err := writeDisplay(writer, machine); err != nil {
			return result, err
		}
	}
	return result, nil
}

// createMachine creates the machine with its collaborators and loads the program.
func (p *Pipeline) createMachine(program []byte, opts options.Program) (*chip8.Machine, error) {
	deps, err := config.CreateDependencies(opts)
	if err != nil {
		return nil, fmt.Errorf("creating dependencies: %w", err)
	}

	machine := chip8.New(p.logger, deps)
	if err := machine.Load(program); err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	return machine, nil
}

// run steps the machine until the step limit is reached, the program halts
// by jumping to itself, or it waits for a key that the held keys can not
// provide. The timers are ticked every InstructionsPerFrame instructions.
func (p *Pipeline) run(ctx context.Context, machine *chip8.Machine, opts options.Program) (*Result, error) {
	result := &Result{
		Machine: machine,
		Reason:  StepLimit,
	}

	for result.Steps < opts.Steps {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("stopped after %d steps: %w", result.Steps, ctx.Err())
		default:
		}

		pc, sp := machine.PC(), machine.SP()
		outcome, err := machine.Step()
		if err != nil {
			return result, fmt.Errorf("step %d: %w", result.Steps+1, err)
		}

		if outcome == chip8.AwaitingKey {
			result.Reason = AwaitingKey
			return result, nil
		}

		result.Steps++
		if result.Steps%opts.InstructionsPerFrame == 0 {
			machine.TickTimers()
			result.Frames++
		}

		if machine.PC() == pc && machine.SP() == sp {
			result.Reason = Halted
			return result, nil
		}
	}

	return result, nil
}

// printInfo prints information about the ROM being processed.
func (p *Pipeline) printInfo(opts options.Program, size int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.Int("steps", opts.Steps),
	)
}

func writeDisplay(writer io.Writer, machine *chip8.Machine) error {
	display := machine.Display()
	if _, err := io.WriteString(writer, display.String()); err != nil {
		return fmt.Errorf("writing display: %w", err)
	}
	return nil
}
