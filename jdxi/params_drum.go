package jdxi

// Drum kit tables. Each kit key is addressed as its own partial, two LMB
// pages apart, starting at LMB 0x2E for the lowest key. wave-tune is the one
// 16-bit nibbled parameter here, centered at 0x8000.
var (
	drumCommonSection = Section{
		Synths:   []SynthType{DrumKit},
		Kind:     TemporaryTone,
		Partials: 1,
		Params: []Param{
			{Name: "kit-level", Offset: Address{0, 0, 0, 0x0C}, Min: 0, Max: 127},
		},
	}

	drumPartialSection = Section{
		Synths:   []SynthType{DrumKit},
		Kind:     TemporaryTone,
		Base:     Address{0, 0, 0x2E, 0},
		Stride:   Address{0, 0, 0x02, 0},
		Partials: 38, // kit keys 36..73
		Params: []Param{
			{Name: "assign-type", Offset: Address{0, 0, 0, 0x0C}, Min: 0, Max: 1,
				Display: DisplaySwitch, Labels: []string{"MULTI", "SINGLE"}},
			{Name: "mute-group", Offset: Address{0, 0, 0, 0x0D}, Min: 0, Max: 31},
			{Name: "partial-level", Offset: Address{0, 0, 0, 0x0E}, Min: 0, Max: 127},
			{Name: "coarse-tune", Offset: Address{0, 0, 0, 0x0F}, Min: 0, Max: 127, Zero: 64,
				Display: DisplayBipolar},
			{Name: "fine-tune", Offset: Address{0, 0, 0, 0x10}, Min: 14, Max: 114, Zero: 64,
				Display: DisplayBipolar},
			{Name: "random-pitch-depth", Offset: Address{0, 0, 0, 0x11}, Min: 0, Max: 30},
			{Name: "pan", Offset: Address{0, 0, 0, 0x12}, Min: 0, Max: 127, Zero: 64,
				Display: DisplayBipolar},
			{Name: "wave-tune", Offset: Address{0, 0, 1, 0x00}, Min: 0, Max: 0xFFFF, Zero: 0x8000,
				Width: 4, Display: DisplayBipolar},
		},
	}
)
