package layout

import (
	"fmt"
	"strings"
)

// Preset names shared by panel and room presets.
const (
	PresetSmall    = "small"
	PresetStandard = "standard"
	PresetLarge    = "large"
)

// PresetNames returns the preset names from smallest to largest.
func PresetNames() []string {
	return []string{PresetSmall, PresetStandard, PresetLarge}
}

// PanelPreset returns a named square panel size in inches.
func PanelPreset(name string) (PanelDimensions, error) {
	switch name {
	case PresetSmall:
		return PanelDimensions{Width: 4, Height: 4, Units: Inches}, nil
	case PresetStandard:
		return PanelDimensions{Width: 6, Height: 6, Units: Inches}, nil
	case PresetLarge:
		return PanelDimensions{Width: 8, Height: 8, Units: Inches}, nil
	default:
		return PanelDimensions{}, fmt.Errorf("%w: panel %q (valid: %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
}

// RoomPreset returns a named room size in feet.
func RoomPreset(name string) (RoomDimensions, error) {
	switch name {
	case PresetSmall:
		return RoomDimensions{Width: 8, Height: 6, Depth: 8, Units: Feet}, nil
	case PresetStandard:
		return RoomDimensions{Width: 12, Height: 8, Depth: 12, Units: Feet}, nil
	case PresetLarge:
		return RoomDimensions{Width: 16, Height: 10, Depth: 16, Units: Feet}, nil
	default:
		return RoomDimensions{}, fmt.Errorf("%w: room %q (valid: %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
}

// StandardConfig returns a 3-panel config built from named presets.
func StandardConfig(panelPreset, roomPreset string) (Config, error) {
	panel, err := PanelPreset(panelPreset)
	if err != nil {
		return Config{}, err
	}
	room, err := RoomPreset(roomPreset)
	if err != nil {
		return Config{}, err
	}
	return Config{Panel: panel, Room: room, Type: TypeThreePanel}, nil
}
