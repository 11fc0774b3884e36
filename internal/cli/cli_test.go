package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func parseArgs(t *testing.T, args ...string) (options.Program, error) {
	t.Helper()

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"prog"}, args...)

	return ParseFlags()
}

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parseArgs(t, "game.ch8")
	assert.NoError(t, err)

	assert.Equal(t, "game.ch8", opts.Input)
	assert.Equal(t, "chip8", opts.Quirks)
	assert.Equal(t, DefaultFPS, opts.FPS)
	assert.Equal(t, DefaultInstructionsPerFrame, opts.InstructionsPerFrame)
	assert.Equal(t, DefaultScale, opts.Scale)
	assert.Equal(t, uint32(DefaultForeground), opts.Foreground)
	assert.Equal(t, uint32(DefaultBackground), opts.Background)
	assert.Equal(t, DefaultPitch, opts.Pitch)
	assert.Equal(t, options.FrontendSDL, opts.Frontend)
	assert.True(t, opts.VFReset == nil)
	assert.True(t, opts.Jumping == nil)
	assert.False(t, opts.Disasm)
}

func TestParseFlags_Options(t *testing.T) {
	opts, err := parseArgs(t,
		"-quirks", "SCHIP",
		"-fps", "30",
		"-ipf", "10",
		"-frames", "100",
		"-seed", "42",
		"-frontend", "Headless",
		"-color", "0xffff0000",
		"-background", "255",
		"-wav", "out.wav",
		"-trace",
		"game.ch8",
	)
	assert.NoError(t, err)

	assert.Equal(t, "schip", opts.Quirks)
	assert.Equal(t, 30, opts.FPS)
	assert.Equal(t, 10, opts.InstructionsPerFrame)
	assert.Equal(t, uint64(100), opts.Frames)
	assert.Equal(t, uint64(42), opts.Seed)
	assert.Equal(t, options.FrontendHeadless, opts.Frontend)
	assert.Equal(t, uint32(0xffff0000), opts.Foreground)
	assert.Equal(t, uint32(255), opts.Background)
	assert.Equal(t, "out.wav", opts.Wav)
	assert.True(t, opts.Trace)
}

func TestParseFlags_QuirkOverrides(t *testing.T) {
	opts, err := parseArgs(t, "-vfreset=false", "-jumping", "game.ch8")
	assert.NoError(t, err)

	assert.NotNil(t, opts.VFReset)
	assert.False(t, *opts.VFReset)
	assert.NotNil(t, opts.Jumping)
	assert.True(t, *opts.Jumping)
	assert.True(t, opts.Memory == nil)
	assert.True(t, opts.DisplayWait == nil)
	assert.True(t, opts.Clipping == nil)
	assert.True(t, opts.Shifting == nil)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unsupported frontend", args: []string{"-frontend", "vga", "game.ch8"}, wantErr: "unsupported frontend: vga"},
		{name: "unsupported quirks", args: []string{"-quirks", "megachip", "game.ch8"}, wantErr: "unsupported quirks preset"},
		{name: "negative fps", args: []string{"-fps", "-1", "game.ch8"}, wantErr: "invalid frame rate"},
		{name: "zero ipf", args: []string{"-ipf", "0", "game.ch8"}, wantErr: "invalid instructions per frame"},
		{name: "zero scale", args: []string{"-scale", "0", "game.ch8"}, wantErr: "invalid scale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(t, tt.args...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParseFlags_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing file", args: nil},
		{name: "flag after file", args: []string{"game.ch8", "-debug"}},
		{name: "two files", args: []string{"a.ch8", "b.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(t, tt.args...)
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}

func TestParseColor(t *testing.T) {
	value, err := parseColor("0xff33ff00")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xff33ff00), value)

	value, err = parseColor("16")
	assert.NoError(t, err)
	assert.Equal(t, uint32(16), value)

	_, err = parseColor("0x1ffffffff")
	assert.ErrorContains(t, err, "invalid color")

	_, err = parseColor("green")
	assert.ErrorContains(t, err, "invalid color")
}
