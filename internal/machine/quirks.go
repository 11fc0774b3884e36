package machine

import (
	"fmt"
	"sort"
	"strings"
)

// Quirks configures historically divergent instruction behaviors.
type Quirks struct {
	// VFReset zeroes VF after the OR, AND and XOR instructions.
	VFReset bool
	// Memory advances I by the number of transferred registers in the
	// register block store and load instructions.
	Memory bool
	// DisplayWait limits execution to one draw per frame. It is consumed by
	// the driver, not by the CPU.
	DisplayWait bool
	// Clipping drops sprite rows and columns that exceed the display bounds
	// instead of wrapping them around.
	Clipping bool
	// Shifting makes the shift instructions read VY instead of VX.
	Shifting bool
	// Jumping selects the register for the indexed jump from the high nibble
	// of the address instead of always using V0.
	Jumping bool
}

// Preset names.
const (
	PresetChip8  = "chip8"
	PresetSChip  = "schip"
	PresetXOChip = "xochip"
)

var presets = map[string]Quirks{
	PresetChip8: {
		VFReset:     true,
		Memory:      true,
		DisplayWait: true,
		Clipping:    true,
		Shifting:    true,
	},
	PresetSChip: {
		Clipping: true,
		Jumping:  true,
	},
	PresetXOChip: {
		Memory: true,
	},
}

// Preset returns the quirks of the platform with the given name.
func Preset(name string) (Quirks, error) {
	q, ok := presets[strings.ToLower(name)]
	if !ok {
		return Quirks{}, fmt.Errorf("unsupported quirks preset '%s', valid presets: %s",
			name, strings.Join(PresetNames(), ", "))
	}
	return q, nil
}

// PresetNames returns the sorted names of all quirk presets.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
