package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "-steps", "50", "game.ch8"}
	opts, err := ParseFlags()
	assert.NoError(t, err)
	assert.Equal(t, "game.ch8", opts.Input)
	assert.Equal(t, 50, opts.Steps)
}

//nolint:funlen // table driven test
func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags: options.Flags{
					Steps:                options.DefaultSteps,
					InstructionsPerFrame: options.DefaultInstructionsPerFrame,
				},
			},
		},
		{
			name: "input flag",
			args: []string{"-i", "test.ch8", "-display", "-q"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags: options.Flags{
					Steps:                options.DefaultSteps,
					InstructionsPerFrame: options.DefaultInstructionsPerFrame,
					Display:              true,
					Quiet:                true,
				},
			},
		},
		{
			name: "all behavior flags",
			args: []string{"-steps", "20", "-ipf", "5", "-seed", "7", "-keys", "a, 1,A", "-debug", "-o", "out.txt", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8", Output: "out.txt"},
				Flags: options.Flags{
					Steps:                20,
					InstructionsPerFrame: 5,
					Seed:                 7,
					Keys:                 "a, 1,A",
					Debug:                true,
				},
				HeldKeys: []uint8{0xA, 0x1},
			},
		},
		{
			name: "batch without input",
			args: []string{"-batch", "*.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Batch: "*.ch8"},
				Flags: options.Flags{
					Steps:                options.DefaultSteps,
					InstructionsPerFrame: options.DefaultInstructionsPerFrame,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs("prog", tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want.Input, got.Input)
			assert.Equal(t, tt.want.Output, got.Output)
			assert.Equal(t, tt.want.Batch, got.Batch)
			assert.Equal(t, tt.want.Steps, got.Steps)
			assert.Equal(t, tt.want.InstructionsPerFrame, got.InstructionsPerFrame)
			assert.Equal(t, tt.want.Seed, got.Seed)
			assert.Equal(t, tt.want.Display, got.Display)
			assert.Equal(t, tt.want.Debug, got.Debug)
			assert.Equal(t, tt.want.Quiet, got.Quiet)
			assert.Equal(t, len(tt.want.HeldKeys), len(got.HeldKeys))
			for i := range tt.want.HeldKeys {
				assert.Equal(t, tt.want.HeldKeys[i], got.HeldKeys[i])
			}
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{"no arguments", []string{}, true},
		{"flag after file", []string{"test.ch8", "-q"}, true},
		{"zero steps", []string{"-steps", "0", "test.ch8"}, false},
		{"negative ipf", []string{"-ipf", "-1", "test.ch8"}, false},
		{"invalid key", []string{"-keys", "g", "test.ch8"}, false},
		{"key out of range", []string{"-keys", "10", "test.ch8"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs("prog", tt.args)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}
