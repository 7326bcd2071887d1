package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/pipeline"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func writeROM(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := writeROM(t, dir, "halt.ch8", []byte{0x60, 0x01, 0x12, 0x02})
	output := filepath.Join(dir, "halt.txt")

	opts := options.Program{
		Parameters: options.Parameters{Input: input, Output: output},
		Flags: options.Flags{
			Steps:                10,
			InstructionsPerFrame: 1,
			Display:              true,
			Quiet:                true,
		},
	}

	result, err := ProcessFile(context.Background(), log.NewTestLogger(t), opts)
	assert.NoError(t, err)
	assert.Equal(t, pipeline.Halted, result.Reason)

	data, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, 32, strings.Count(string(data), "\n"))
}

func TestProcessFile_MissingInput(t *testing.T) {
	opts := options.Program{
		Parameters: options.Parameters{Input: filepath.Join(t.TempDir(), "missing.ch8")},
		Flags:      options.Flags{Steps: 1, InstructionsPerFrame: 1, Quiet: true},
	}

	_, err := ProcessFile(context.Background(), log.NewTestLogger(t), opts)
	assert.ErrorContains(t, err, "missing.ch8")
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	writeROM(t, dir, "a.ch8", []byte{0x12, 0x00})
	writeROM(t, dir, "b.ch8", []byte{0x12, 0x00})
	writeROM(t, dir, "c.txt", nil)

	files, err := GetFilesToProcess(&options.Program{
		Parameters: options.Parameters{Batch: filepath.Join(dir, "*.ch8")},
	})
	assert.NoError(t, err)
	assert.Len(t, files, 2)

	files, err = GetFilesToProcess(&options.Program{
		Parameters: options.Parameters{Input: "single.ch8"},
	})
	assert.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Equal(t, "single.ch8", files[0])
}

func TestGenerateOutputFilename(t *testing.T) {
	assert.Equal(t, "roms/pong.txt", GenerateOutputFilename("roms/pong.ch8"))
	assert.Equal(t, "pong.txt", GenerateOutputFilename("pong"))
}
