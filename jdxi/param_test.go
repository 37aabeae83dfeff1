package jdxi

import (
	"errors"
	"testing"
)

func TestRegistryLookup(t *testing.T) {
	reg := DefaultRegistry()

	p, err := reg.Lookup(Digital1, "cutoff")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if p.Min != 0 || p.Max != 127 || p.Width != 1 {
		t.Errorf("cutoff descriptor = %+v", p)
	}

	if _, err := reg.Lookup(Digital1, "no-such-knob"); !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("Lookup(no-such-knob) error = %v, want ErrUnknownParameter", err)
	}
	// Analog has no partial pages, so digital-only names stay unknown there.
	if _, err := reg.Lookup(Analog, "tone-level"); !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("Lookup(analog tone-level) error = %v, want ErrUnknownParameter", err)
	}
}

func TestRegistryResolvePartialRange(t *testing.T) {
	reg := DefaultRegistry()

	if _, _, err := reg.Resolve(Digital1, "cutoff", 3); !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("Resolve(partial 3) error = %v, want ErrUnknownParameter", err)
	}
	if _, _, err := reg.Resolve(Digital1, "cutoff", -1); !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("Resolve(partial -1) error = %v, want ErrUnknownParameter", err)
	}

	_, addr, err := reg.Resolve(DrumKit, "partial-level", 37)
	if err != nil {
		t.Fatalf("Resolve(drum partial 37) failed: %v", err)
	}
	if addr != (Address{0x19, 0x70, 0x78, 0x0E}) {
		t.Errorf("drum partial 37 level at %s", addr)
	}
}

func TestRegistryLookupAddress(t *testing.T) {
	reg := DefaultRegistry()

	p, ok := reg.LookupAddress(Address{0x19, 0x01, 0x00, 0x20})
	if !ok || p.Name != "cutoff" {
		t.Fatalf("LookupAddress(19 01 00 20) = %v, %v", p, ok)
	}
	// Same layout under the digital 2 base.
	p, ok = reg.LookupAddress(Address{0x19, 0x21, 0x02, 0x20})
	if !ok || p.Name != "cutoff" {
		t.Fatalf("LookupAddress(19 21 02 20) = %v, %v", p, ok)
	}

	if _, ok := reg.LookupAddress(Address{0x7F, 0x7F, 0x7F, 0x7F}); ok {
		t.Error("LookupAddress found a descriptor at a bogus address")
	}
}

func TestRangeEnforcement(t *testing.T) {
	reg := DefaultRegistry()

	for _, tc := range []struct {
		synth SynthType
		name  string
		value int
	}{
		{Digital1, "cutoff", 128},
		{Digital1, "cutoff", -1},
		{Digital1, "osc-pitch-coarse", 89},
		{Digital1, "osc-pitch-coarse", 39},
		{Program, "master-tune", 2025},
		{Program, "master-tune", 23},
	} {
		if _, err := Encode(reg, tc.synth, tc.name, tc.value, 0); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Encode(%s %s = %d) error = %v, want ErrOutOfRange",
				tc.synth, tc.name, tc.value, err)
		}
	}

	// Boundary values themselves must pass.
	for _, v := range []int{0, 127} {
		if _, err := Encode(reg, Digital1, "cutoff", v, 0); err != nil {
			t.Errorf("Encode(cutoff = %d) failed: %v", v, err)
		}
	}
}

func TestDisplayValue(t *testing.T) {
	reg := DefaultRegistry()

	wave, _ := reg.Lookup(Digital1, "osc-wave")
	if got := wave.DisplayValue(6); got != "SUPER-SAW" {
		t.Errorf("osc-wave display = %q, want SUPER-SAW", got)
	}

	coarse, _ := reg.Lookup(Digital1, "osc-pitch-coarse")
	if got := coarse.DisplayValue(64); got != "+0" {
		t.Errorf("centered coarse display = %q, want +0", got)
	}
	if got := coarse.DisplayValue(52); got != "-12" {
		t.Errorf("coarse display = %q, want -12", got)
	}

	cutoff, _ := reg.Lookup(Digital1, "cutoff")
	if got := cutoff.DisplayValue(100); got != "100" {
		t.Errorf("linear display = %q, want 100", got)
	}

	attack, _ := reg.Lookup(Digital1, "amp-env-attack")
	if got := attack.DisplayValue(0); got != "1 ms" {
		t.Errorf("attack floor display = %q, want 1 ms", got)
	}
	if got := attack.DisplayValue(127); got != "10.00 s" {
		t.Errorf("attack ceiling display = %q, want 10.00 s", got)
	}
}

func TestMsCurveRoundTrip(t *testing.T) {
	reg := DefaultRegistry()
	attack, _ := reg.Lookup(Digital1, "amp-env-attack")

	for raw := attack.Min; raw <= attack.Max; raw++ {
		ms := attack.MsFromRaw(raw)
		if back := attack.RawFromMs(ms); back != raw {
			t.Fatalf("RawFromMs(MsFromRaw(%d)) = %d", raw, back)
		}
	}

	if got := attack.RawFromMs(0.001); got != attack.Min {
		t.Errorf("below-range ms maps to %d, want %d", got, attack.Min)
	}
	if got := attack.RawFromMs(1e9); got != attack.Max {
		t.Errorf("above-range ms maps to %d, want %d", got, attack.Max)
	}
}

func TestNewRegistryRejectsBadTables(t *testing.T) {
	// A partial stride that walks off the 7-bit address space must fail at
	// construction, not at send time.
	_, err := NewRegistry([]Section{{
		Synths:   []SynthType{Digital1},
		Kind:     TemporaryTone,
		Stride:   Address{0, 0, 0x40, 0},
		Partials: 3,
		Params:   []Param{{Name: "broken", Offset: Address{0, 0, 0, 0}, Min: 0, Max: 127}},
	}})
	if !errors.Is(err, ErrAddressOverflow) {
		t.Errorf("NewRegistry error = %v, want ErrAddressOverflow", err)
	}

	_, err = NewRegistry([]Section{{
		Synths:   []SynthType{Digital1},
		Kind:     TemporaryTone,
		Partials: 1,
		Params: []Param{
			{Name: "dup", Offset: Address{0, 0, 0, 0}, Min: 0, Max: 127},
			{Name: "dup", Offset: Address{0, 0, 0, 1}, Min: 0, Max: 127},
		},
	}})
	if err == nil {
		t.Error("NewRegistry accepted a duplicate name")
	}
}
