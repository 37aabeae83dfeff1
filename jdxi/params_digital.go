package jdxi

// SuperNATURAL digital tone tables. The two digital engines share the same
// layout under different area bases. Partial pages are folded onto the tone
// base with a one-step LMB stride, so partial 0 shares the tone's first
// page: cutoff for partial 0 of digital 1 resolves to 19 01 00 20.

var digitalCommonSection = Section{
	Synths:   []SynthType{Digital1, Digital2},
	Kind:     TemporaryTone,
	Partials: 1,
	Params: []Param{
		{Name: "tone-level", Offset: Address{0, 0, 0, 0x0C}, Min: 0, Max: 127},
		{Name: "portamento-switch", Offset: Address{0, 0, 0, 0x12}, Min: 0, Max: 1,
			Display: DisplaySwitch, Labels: []string{"OFF", "ON"}},
		{Name: "portamento-time", Offset: Address{0, 0, 0, 0x13}, Min: 0, Max: 127,
			Display: DisplayTimeMs, MinMs: 1, MaxMs: 5000},
		{Name: "mono-switch", Offset: Address{0, 0, 0, 0x14}, Min: 0, Max: 1,
			Display: DisplaySwitch, Labels: []string{"POLY", "MONO"}},
		{Name: "octave-shift", Offset: Address{0, 0, 0, 0x15}, Min: 61, Max: 67, Zero: 64,
			Display: DisplayBipolar},
		{Name: "pitch-bend-up", Offset: Address{0, 0, 0, 0x16}, Min: 0, Max: 24},
		{Name: "pitch-bend-down", Offset: Address{0, 0, 0, 0x17}, Min: 0, Max: 24},
	},
}

var digitalPartialSection = Section{
	Synths:   []SynthType{Digital1, Digital2},
	Kind:     TemporaryTone,
	Stride:   Address{0, 0, 0x01, 0},
	Partials: 3,
	Params: []Param{
		{Name: "osc-wave", Offset: Address{0, 0, 0, 0x00}, Min: 0, Max: 7,
			Display: DisplaySwitch,
			Labels:  []string{"SAW", "SQR", "PW-SQR", "TRI", "SINE", "NOISE", "SUPER-SAW", "PCM"}},
		{Name: "osc-pitch-coarse", Offset: Address{0, 0, 0, 0x03}, Min: 40, Max: 88, Zero: 64,
			Display: DisplayBipolar},
		{Name: "osc-pitch-fine", Offset: Address{0, 0, 0, 0x04}, Min: 14, Max: 114, Zero: 64,
			Display: DisplayBipolar},
		{Name: "osc-pulse-width", Offset: Address{0, 0, 0, 0x05}, Min: 0, Max: 127},
		{Name: "osc-pwm-depth", Offset: Address{0, 0, 0, 0x06}, Min: 0, Max: 127},
		{Name: "filter-mode", Offset: Address{0, 0, 0, 0x1A}, Min: 0, Max: 7,
			Display: DisplaySwitch,
			Labels:  []string{"BYPASS", "LPF", "HPF", "BPF", "PKG", "LPF2", "LPF3", "LPF4"}},
		{Name: "filter-slope", Offset: Address{0, 0, 0, 0x1B}, Min: 0, Max: 1,
			Display: DisplaySwitch, Labels: []string{"-12dB", "-24dB"}},
		{Name: "cutoff", Offset: Address{0, 0, 0, 0x20}, Min: 0, Max: 127},
		{Name: "resonance", Offset: Address{0, 0, 0, 0x21}, Min: 0, Max: 127},
		{Name: "filter-env-attack", Offset: Address{0, 0, 0, 0x22}, Min: 0, Max: 127,
			Display: DisplayTimeMs, MinMs: 1, MaxMs: 10000},
		{Name: "filter-env-decay", Offset: Address{0, 0, 0, 0x23}, Min: 0, Max: 127,
			Display: DisplayTimeMs, MinMs: 1, MaxMs: 10000},
		{Name: "filter-env-depth", Offset: Address{0, 0, 0, 0x24}, Min: 1, Max: 127, Zero: 64,
			Display: DisplayBipolar},
		{Name: "amp-level", Offset: Address{0, 0, 0, 0x2A}, Min: 0, Max: 127},
		{Name: "amp-env-attack", Offset: Address{0, 0, 0, 0x2B}, Min: 0, Max: 127,
			Display: DisplayTimeMs, MinMs: 1, MaxMs: 10000},
		{Name: "amp-env-decay", Offset: Address{0, 0, 0, 0x2C}, Min: 0, Max: 127,
			Display: DisplayTimeMs, MinMs: 1, MaxMs: 10000},
		{Name: "amp-env-sustain", Offset: Address{0, 0, 0, 0x2D}, Min: 0, Max: 127},
		{Name: "amp-env-release", Offset: Address{0, 0, 0, 0x2E}, Min: 0, Max: 127,
			Display: DisplayTimeMs, MinMs: 1, MaxMs: 10000},
		{Name: "lfo-shape", Offset: Address{0, 0, 0, 0x30}, Min: 0, Max: 5,
			Display: DisplaySwitch, Labels: []string{"TRI", "SIN", "SAW", "SQR", "S&H", "RND"}},
		{Name: "lfo-rate", Offset: Address{0, 0, 0, 0x31}, Min: 0, Max: 127},
		{Name: "lfo-pitch-depth", Offset: Address{0, 0, 0, 0x35}, Min: 1, Max: 127, Zero: 64,
			Display: DisplayBipolar},
	},
}
