package jdxi

import (
	"bytes"
	"errors"
	"testing"
)

// The classic front-panel move: cutoff on digital synth 1, partial 0, set
// to 100. The full wire bytes are pinned down so an editor and the hardware
// agree on every byte.
func TestEncodeCutoffScenario(t *testing.T) {
	reg := DefaultRegistry()

	msg, err := Encode(reg, Digital1, "cutoff", 100, 0)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := []byte{0xF0, 0x41, 0x10, 0x00, 0x00, 0x00, 0x0E, 0x12,
		0x19, 0x01, 0x00, 0x20, 0x64, 0x62, 0xF7}
	if !bytes.Equal(msg, want) {
		t.Errorf("Encode = % X, want % X", msg, want)
	}
}

func TestEncodeDecodeInverse(t *testing.T) {
	reg := DefaultRegistry()

	cases := []struct {
		synth   SynthType
		name    string
		partial int
		value   int
	}{
		{Digital1, "cutoff", 0, 0},
		{Digital1, "cutoff", 2, 127},
		{Digital2, "osc-pitch-coarse", 1, 40},
		{Analog, "resonance", 0, 64},
		{DrumKit, "wave-tune", 10, 0x8000},
		{DrumKit, "wave-tune", 37, 0xFFFF},
		{Program, "master-tune", 0, 1024},
		{Program, "program-tempo", 0, 12000},
		{VocalFX, "auto-pitch-key", 0, 11},
	}

	for _, tc := range cases {
		msg, err := Encode(reg, tc.synth, tc.name, tc.value, tc.partial)
		if err != nil {
			t.Errorf("Encode(%s %s %d) failed: %v", tc.synth, tc.name, tc.value, err)
			continue
		}
		ev, err := Decode(msg, reg)
		if err != nil {
			t.Errorf("Decode(Encode(%s %s)) failed: %v", tc.synth, tc.name, err)
			continue
		}
		if ev.Kind != EventParameter {
			t.Errorf("Decode(%s %s) kind = %d, want EventParameter", tc.synth, tc.name, ev.Kind)
			continue
		}
		_, wantAddr, err := reg.Resolve(tc.synth, tc.name, tc.partial)
		if err != nil {
			t.Fatalf("Resolve(%s %s) failed: %v", tc.synth, tc.name, err)
		}
		if ev.Addr != wantAddr {
			t.Errorf("Decode(%s %s) addr = %s, want %s", tc.synth, tc.name, ev.Addr, wantAddr)
		}
		if ev.Value != tc.value {
			t.Errorf("Decode(%s %s) value = %d, want %d", tc.synth, tc.name, ev.Value, tc.value)
		}
		if ev.Param == nil {
			t.Errorf("Decode(%s %s) found no descriptor", tc.synth, tc.name)
		}
	}
}

// Flipping any interior byte must be caught: header flips make the message
// foreign or unsupported, body and checksum flips always change the sum mod
// 128, so the checksum test can never pass.
func TestTamperedMessageRejected(t *testing.T) {
	reg := DefaultRegistry()

	msg, err := Encode(reg, Digital1, "cutoff", 100, 0)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	for i := 1; i < len(msg)-1; i++ {
		tampered := append([]byte(nil), msg...)
		tampered[i] ^= 0x01

		_, err := Decode(tampered, reg)
		if err == nil {
			t.Errorf("flip at byte %d went undetected", i)
			continue
		}
		// Flips past the header must be a checksum failure specifically.
		if i >= 8 && !errors.Is(err, ErrChecksumMismatch) {
			t.Errorf("flip at byte %d: error = %v, want ErrChecksumMismatch", i, err)
		}
	}
}

func TestDecodeRejectsForeignManufacturer(t *testing.T) {
	reg := DefaultRegistry()
	store := NewStore()

	// A Yamaha-flavored message must be ignored without touching the store.
	msg := []byte{0xF0, 0x43, 0x10, 0x00, 0x00, 0x00, 0x0E, 0x12,
		0x19, 0x01, 0x00, 0x20, 0x64, 0x62, 0xF7}
	_, err := Decode(msg, reg)
	if !errors.Is(err, ErrNotRoland) {
		t.Errorf("Decode error = %v, want ErrNotRoland", err)
	}
	if store.Len() != 0 {
		t.Errorf("store has %d entries after rejected message", store.Len())
	}
}

func TestDecodeRejectsBadFraming(t *testing.T) {
	reg := DefaultRegistry()

	for _, msg := range [][]byte{
		nil,
		{0xF0},
		{0x41, 0x10, 0xF7},
		{0xF0, 0x41, 0x10, 0x00, 0x00, 0x00, 0x0E, 0x12, 0x19}, // no trailing F7
	} {
		if _, err := Decode(msg, reg); !errors.Is(err, ErrMalformedSysEx) {
			t.Errorf("Decode(% X) error = %v, want ErrMalformedSysEx", msg, err)
		}
	}
}

func TestDecodeRejectsUnknownCommand(t *testing.T) {
	reg := DefaultRegistry()

	// An RQ1 echoed back at us is not something the decoder handles.
	msg, err := BuildDataRequest(Address{0x19, 0x01, 0x00, 0x20}, 1)
	if err != nil {
		t.Fatalf("BuildDataRequest failed: %v", err)
	}
	if _, err := Decode(msg, reg); !errors.Is(err, ErrUnsupportedCommand) {
		t.Errorf("Decode(RQ1) error = %v, want ErrUnsupportedCommand", err)
	}
}

func TestDecodeUnregisteredAddressKeepsRawByte(t *testing.T) {
	reg := DefaultRegistry()

	msg, err := BuildDataSet(Address{0x19, 0x01, 0x7F, 0x7F}, 42, 1)
	if err != nil {
		t.Fatalf("BuildDataSet failed: %v", err)
	}
	ev, err := Decode(msg, reg)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if ev.Param != nil {
		t.Errorf("unexpected descriptor %q at unregistered address", ev.Param.Name)
	}
	if ev.Value != 42 {
		t.Errorf("value = %d, want 42", ev.Value)
	}
	if !bytes.Equal(ev.Payload, []byte{42}) {
		t.Errorf("payload = % X, want 2A", ev.Payload)
	}
}

func TestIdentityHandshakeScenario(t *testing.T) {
	reg := DefaultRegistry()

	// Canned JD-Xi identity reply: Roland, family 0E 03, firmware 1.05.
	reply := []byte{0xF0, 0x7E, 0x10, 0x06, 0x02,
		0x41, 0x0E, 0x03, 0x00, 0x00, 0x01, 0x05, 0x00, 0x00, 0xF7}

	ev, err := Decode(reply, reg)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if ev.Kind != EventIdentity {
		t.Fatalf("kind = %d, want EventIdentity", ev.Kind)
	}
	id := ev.Identity
	if id.Manufacturer != 0x41 {
		t.Errorf("manufacturer = 0x%02X, want 0x41", id.Manufacturer)
	}
	if id.Family != [2]byte{0x0E, 0x03} {
		t.Errorf("family = % X, want 0E 03", id.Family)
	}
	if id.Version != "1.05" {
		t.Errorf("version = %q, want 1.05", id.Version)
	}
}

func TestDecodeRejectsOtherUniversalMessages(t *testing.T) {
	reg := DefaultRegistry()

	// An identity *request* arriving at the editor is not a reply.
	if _, err := Decode(BuildIdentityRequest(), reg); !errors.Is(err, ErrUnsupportedCommand) {
		t.Errorf("Decode(identity request) error = %v, want ErrUnsupportedCommand", err)
	}
}
