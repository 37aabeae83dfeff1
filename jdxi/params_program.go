package jdxi

// Program-scope tables: program common, the two insert effects, delay,
// reverb, the vocal effect block, and system common. The effect blocks
// differ only in their address tables, so they are plain sections consumed
// by the same builder as everything else.
var (
	programCommonSection = Section{
		Synths:   []SynthType{Program},
		Kind:     TemporaryProgram,
		Partials: 1,
		Params: []Param{
			{Name: "program-level", Offset: Address{0, 0, 0, 0x10}, Min: 0, Max: 127},
			{Name: "program-tempo", Offset: Address{0, 0, 0, 0x11}, Min: 500, Max: 30000,
				Width: 4}, // BPM x 100
		},
	}

	effect1Section = Section{
		Synths:   []SynthType{Program},
		Kind:     TemporaryProgram,
		Base:     Address{0, 0, 0x02, 0},
		Partials: 1,
		Params: []Param{
			{Name: "efx1-type", Offset: Address{0, 0, 0, 0x00}, Min: 0, Max: 4,
				Display: DisplaySwitch,
				Labels:  []string{"THRU", "DISTORTION", "FUZZ", "COMPRESSOR", "BITCRUSHER"}},
			{Name: "efx1-level", Offset: Address{0, 0, 0, 0x01}, Min: 0, Max: 127},
		},
	}

	effect2Section = Section{
		Synths:   []SynthType{Program},
		Kind:     TemporaryProgram,
		Base:     Address{0, 0, 0x04, 0},
		Partials: 1,
		Params: []Param{
			{Name: "efx2-type", Offset: Address{0, 0, 0, 0x00}, Min: 0, Max: 4,
				Display: DisplaySwitch,
				Labels:  []string{"THRU", "FLANGER", "PHASER", "RING-MOD", "SLICER"}},
			{Name: "efx2-level", Offset: Address{0, 0, 0, 0x01}, Min: 0, Max: 127},
		},
	}

	delaySection = Section{
		Synths:   []SynthType{Program},
		Kind:     TemporaryProgram,
		Base:     Address{0, 0, 0x06, 0},
		Partials: 1,
		Params: []Param{
			{Name: "delay-type", Offset: Address{0, 0, 0, 0x00}, Min: 0, Max: 1,
				Display: DisplaySwitch, Labels: []string{"SINGLE", "PAN"}},
			{Name: "delay-time", Offset: Address{0, 0, 0, 0x01}, Min: 0, Max: 127,
				Display: DisplayTimeMs, MinMs: 1, MaxMs: 2600},
			{Name: "delay-feedback", Offset: Address{0, 0, 0, 0x02}, Min: 0, Max: 98},
			{Name: "delay-level", Offset: Address{0, 0, 0, 0x03}, Min: 0, Max: 127},
		},
	}

	reverbSection = Section{
		Synths:   []SynthType{Program},
		Kind:     TemporaryProgram,
		Base:     Address{0, 0, 0x08, 0},
		Partials: 1,
		Params: []Param{
			{Name: "reverb-type", Offset: Address{0, 0, 0, 0x00}, Min: 0, Max: 5,
				Display: DisplaySwitch,
				Labels:  []string{"ROOM1", "ROOM2", "STAGE1", "STAGE2", "HALL1", "HALL2"}},
			{Name: "reverb-time", Offset: Address{0, 0, 0, 0x01}, Min: 0, Max: 127,
				Display: DisplayTimeMs, MinMs: 100, MaxMs: 10000},
			{Name: "reverb-level", Offset: Address{0, 0, 0, 0x03}, Min: 0, Max: 127},
		},
	}

	vocalFXSection = Section{
		Synths:   []SynthType{VocalFX},
		Kind:     TemporaryProgram,
		Partials: 1,
		Params: []Param{
			{Name: "level", Offset: Address{0, 0, 0, 0x00}, Min: 0, Max: 127},
			{Name: "pan", Offset: Address{0, 0, 0, 0x01}, Min: 0, Max: 127, Zero: 64,
				Display: DisplayBipolar},
			{Name: "auto-pitch-switch", Offset: Address{0, 0, 0, 0x02}, Min: 0, Max: 1,
				Display: DisplaySwitch, Labels: []string{"OFF", "ON"}},
			{Name: "auto-pitch-key", Offset: Address{0, 0, 0, 0x03}, Min: 0, Max: 11,
				Display: DisplaySwitch,
				Labels:  []string{"C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}},
			{Name: "vocoder-switch", Offset: Address{0, 0, 0, 0x04}, Min: 0, Max: 1,
				Display: DisplaySwitch, Labels: []string{"OFF", "ON"}},
		},
	}

	systemSection = Section{
		Synths:   []SynthType{Program},
		Kind:     System,
		Partials: 1,
		Params: []Param{
			{Name: "master-tune", Offset: Address{0, 0, 0, 0x00}, Min: 24, Max: 2024, Zero: 1024,
				Width: 4, Display: DisplayBipolar}, // -100..+100 cents
			{Name: "master-level", Offset: Address{0, 0, 0, 0x05}, Min: 0, Max: 127},
			{Name: "master-key-shift", Offset: Address{0, 0, 0, 0x04}, Min: 40, Max: 88, Zero: 64,
				Display: DisplayBipolar},
		},
	}
)

func allSections() []Section {
	return []Section{
		digitalCommonSection,
		digitalPartialSection,
		analogToneSection,
		drumCommonSection,
		drumPartialSection,
		programCommonSection,
		effect1Section,
		effect2Section,
		delaySection,
		reverbSection,
		vocalFXSection,
		systemSection,
	}
}
