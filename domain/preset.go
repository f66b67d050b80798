package domain

import "slices"

var defaultVolumePresets = []int{5, 10, 15, 20, 25}

// DefaultVolumePresets returns the factory volume steps, in display order.
// Each call gets its own copy.
func DefaultVolumePresets() []int {
	return slices.Clone(defaultVolumePresets)
}

// VolumePresets returns a fresh copy of defaults, with newPreset appended when
// it is non-negative. A negative newPreset means "no custom preset".
func VolumePresets(defaults []int, newPreset int) []int {
	presets := slices.Clone(defaults)
	if presets == nil {
		presets = []int{}
	}
	if newPreset >= 0 {
		presets = append(presets, newPreset)
	}
	return presets
}

func UpdatedVolumePresets(newPreset int) []int {
	return VolumePresets(defaultVolumePresets, newPreset)
}
