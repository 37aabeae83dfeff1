package jdxi

// Analog tone table. The analog engine has a single voice, so everything
// sits on one page under the analog tone base.
var analogToneSection = Section{
	Synths:   []SynthType{Analog},
	Kind:     TemporaryTone,
	Partials: 1,
	Params: []Param{
		{Name: "lfo-shape", Offset: Address{0, 0, 0, 0x0D}, Min: 0, Max: 5,
			Display: DisplaySwitch, Labels: []string{"TRI", "SIN", "SAW", "SQR", "S&H", "RND"}},
		{Name: "lfo-rate", Offset: Address{0, 0, 0, 0x0E}, Min: 0, Max: 127},
		{Name: "lfo-pitch-depth", Offset: Address{0, 0, 0, 0x10}, Min: 1, Max: 127, Zero: 64,
			Display: DisplayBipolar},
		{Name: "lfo-filter-depth", Offset: Address{0, 0, 0, 0x11}, Min: 1, Max: 127, Zero: 64,
			Display: DisplayBipolar},
		{Name: "osc-wave", Offset: Address{0, 0, 0, 0x16}, Min: 0, Max: 2,
			Display: DisplaySwitch, Labels: []string{"SAW", "TRI", "PW-SQR"}},
		{Name: "osc-pitch-coarse", Offset: Address{0, 0, 0, 0x17}, Min: 40, Max: 88, Zero: 64,
			Display: DisplayBipolar},
		{Name: "osc-pitch-fine", Offset: Address{0, 0, 0, 0x18}, Min: 14, Max: 114, Zero: 64,
			Display: DisplayBipolar},
		{Name: "osc-pulse-width", Offset: Address{0, 0, 0, 0x19}, Min: 0, Max: 127},
		{Name: "sub-osc-type", Offset: Address{0, 0, 0, 0x1F}, Min: 0, Max: 2,
			Display: DisplaySwitch, Labels: []string{"OFF", "OCT-1", "OCT-2"}},
		{Name: "filter-switch", Offset: Address{0, 0, 0, 0x20}, Min: 0, Max: 1,
			Display: DisplaySwitch, Labels: []string{"BYPASS", "LPF"}},
		{Name: "cutoff", Offset: Address{0, 0, 0, 0x21}, Min: 0, Max: 127},
		{Name: "resonance", Offset: Address{0, 0, 0, 0x23}, Min: 0, Max: 127},
		{Name: "filter-env-attack", Offset: Address{0, 0, 0, 0x24}, Min: 0, Max: 127,
			Display: DisplayTimeMs, MinMs: 1, MaxMs: 10000},
		{Name: "filter-env-decay", Offset: Address{0, 0, 0, 0x25}, Min: 0, Max: 127,
			Display: DisplayTimeMs, MinMs: 1, MaxMs: 10000},
		{Name: "filter-env-depth", Offset: Address{0, 0, 0, 0x26}, Min: 1, Max: 127, Zero: 64,
			Display: DisplayBipolar},
		{Name: "amp-level", Offset: Address{0, 0, 0, 0x2A}, Min: 0, Max: 127},
		{Name: "amp-env-attack", Offset: Address{0, 0, 0, 0x2B}, Min: 0, Max: 127,
			Display: DisplayTimeMs, MinMs: 1, MaxMs: 10000},
		{Name: "amp-env-decay", Offset: Address{0, 0, 0, 0x2C}, Min: 0, Max: 127,
			Display: DisplayTimeMs, MinMs: 1, MaxMs: 10000},
		{Name: "amp-env-sustain", Offset: Address{0, 0, 0, 0x2D}, Min: 0, Max: 127},
		{Name: "amp-env-release", Offset: Address{0, 0, 0, 0x2E}, Min: 0, Max: 127,
			Display: DisplayTimeMs, MinMs: 1, MaxMs: 10000},
		{Name: "portamento-switch", Offset: Address{0, 0, 0, 0x31}, Min: 0, Max: 1,
			Display: DisplaySwitch, Labels: []string{"OFF", "ON"}},
		{Name: "portamento-time", Offset: Address{0, 0, 0, 0x32}, Min: 0, Max: 127,
			Display: DisplayTimeMs, MinMs: 1, MaxMs: 5000},
		{Name: "octave-shift", Offset: Address{0, 0, 0, 0x34}, Min: 61, Max: 67, Zero: 64,
			Display: DisplayBipolar},
	},
}
