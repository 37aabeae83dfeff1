package jdxi

import (
	"fmt"
	"strings"
)

// Address is a JD-Xi memory location as four 7-bit bytes (MSB, UMB, LMB,
// LSB). It is an immutable value: arithmetic returns a new Address, and two
// addresses compare equal exactly when all four bytes match, so an Address
// can key a map directly.
type Address [4]byte

func (a Address) String() string {
	return fmt.Sprintf("%02X %02X %02X %02X", a[0], a[1], a[2], a[3])
}

// Add returns a+b with each byte added independently. A byte leaving the
// 7-bit range is a config error, reported as ErrAddressOverflow.
func (a Address) Add(b Address) (Address, error) {
	var out Address
	for i := range a {
		v := int(a[i]) + int(b[i])
		if v > 0x7F {
			return Address{}, fmt.Errorf("add %s + %s: byte %d = %d: %w", a, b, i, v, ErrAddressOverflow)
		}
		out[i] = byte(v)
	}
	return out, nil
}

// Offset returns a + n*stride, byte by byte.
func (a Address) Offset(n int, stride Address) (Address, error) {
	var out Address
	for i := range a {
		v := int(a[i]) + n*int(stride[i])
		if v < 0 || v > 0x7F {
			return Address{}, fmt.Errorf("offset %s + %d*%s: byte %d = %d: %w", a, n, stride, i, v, ErrAddressOverflow)
		}
		out[i] = byte(v)
	}
	return out, nil
}

// Resolve computes base + relative + partial*stride, the absolute address of
// one parameter instance.
func Resolve(base, relative Address, partial int, stride Address) (Address, error) {
	a, err := base.Add(relative)
	if err != nil {
		return Address{}, err
	}
	return a.Offset(partial, stride)
}

// SynthType selects one of the JD-Xi's sound engines (or the program scope
// that contains them all).
type SynthType int

const (
	Analog SynthType = iota
	Digital1
	Digital2
	DrumKit
	VocalFX
	Program
)

var synthNames = map[SynthType]string{
	Analog:   "analog",
	Digital1: "digital1",
	Digital2: "digital2",
	DrumKit:  "drums",
	VocalFX:  "vocalfx",
	Program:  "program",
}

func (s SynthType) String() string {
	if n, ok := synthNames[s]; ok {
		return n
	}
	return fmt.Sprintf("SynthType(%d)", int(s))
}

// ParseSynthType maps a CLI/MCP name like "digital1" back to a SynthType.
func ParseSynthType(name string) (SynthType, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for s, n := range synthNames {
		if n == lower {
			return s, nil
		}
	}
	return 0, fmt.Errorf("synth %q: %w", name, ErrUnknownArea)
}

// AreaKind selects which of the JD-Xi's top-level memory areas an address
// lives in.
type AreaKind int

const (
	TemporaryTone AreaKind = iota
	TemporaryProgram
	System
	Setup
)

// Fixed area bases per the JD-Xi MIDI implementation. Temporary tones share
// MSB 0x19 with a per-engine UMB; the vocal effect block lives inside the
// temporary program area.
var (
	setupBase   = Address{0x01, 0x00, 0x00, 0x00}
	systemBase  = Address{0x02, 0x00, 0x00, 0x00}
	programBase = Address{0x18, 0x00, 0x00, 0x00}
	vocalFXBase = Address{0x18, 0x00, 0x01, 0x00}

	toneBases = map[SynthType]Address{
		Digital1: {0x19, 0x01, 0x00, 0x00},
		Digital2: {0x19, 0x21, 0x00, 0x00},
		Analog:   {0x19, 0x42, 0x00, 0x00},
		DrumKit:  {0x19, 0x70, 0x00, 0x00},
	}
)

// AreaFor returns the base address of one (synth, area) pair.
func AreaFor(synth SynthType, kind AreaKind) (Address, error) {
	switch kind {
	case Setup:
		return setupBase, nil
	case System:
		return systemBase, nil
	case TemporaryProgram:
		if synth == VocalFX {
			return vocalFXBase, nil
		}
		if synth == Program {
			return programBase, nil
		}
	case TemporaryTone:
		if base, ok := toneBases[synth]; ok {
			return base, nil
		}
	}
	return Address{}, fmt.Errorf("synth %s, area kind %d: %w", synth, kind, ErrUnknownArea)
}
