package machine

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestPreset(t *testing.T) {
	tests := []struct {
		name     string
		expected Quirks
	}{
		{
			name: "chip8",
			expected: Quirks{
				VFReset:     true,
				Memory:      true,
				DisplayWait: true,
				Clipping:    true,
				Shifting:    true,
			},
		},
		{name: "SCHIP", expected: Quirks{Clipping: true, Jumping: true}},
		{name: "xochip", expected: Quirks{Memory: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Preset(tt.name)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, q)
		})
	}
}

func TestPreset_Unsupported(t *testing.T) {
	_, err := Preset("megachip")
	assert.ErrorContains(t, err, "unsupported quirks preset 'megachip', valid presets: chip8, schip, xochip")
}

func TestPresetNames(t *testing.T) {
	assert.Equal(t, []string{"chip8", "schip", "xochip"}, PresetNames())
}
