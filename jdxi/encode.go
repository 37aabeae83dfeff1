package jdxi

import "fmt"

// Values wider than 7 bits travel as big-endian 4-bit nibbles, one nibble
// per SysEx byte. Width 1 is a plain 7-bit byte; widths 2 and 4 cover 8- and
// 16-bit values.
func widthMax(width int) (int, bool) {
	switch width {
	case 1:
		return 0x7F, true
	case 2:
		return 0xFF, true
	case 4:
		return 0xFFFF, true
	}
	return 0, false
}

func nibbles(value, width int) []byte {
	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(value & 0x0F)
		value >>= 4
	}
	return out
}

func joinNibbles(data []byte) int {
	v := 0
	for _, b := range data {
		v = v<<4 | int(b&0x0F)
	}
	return v
}

// BuildDataSet builds a complete DT1 ("data set") message writing value to
// addr. width declares the value's on-wire size (1, 2 or 4 bytes); a value
// outside the width's range fails with ErrOutOfRange before anything is
// framed.
func BuildDataSet(addr Address, value, width int) ([]byte, error) {
	max, ok := widthMax(width)
	if !ok {
		return nil, fmt.Errorf("data set %s: unsupported width %d: %w", addr, width, ErrOutOfRange)
	}
	if value < 0 || value > max {
		return nil, fmt.Errorf("data set %s: value %d exceeds %d-byte range: %w", addr, value, width, ErrOutOfRange)
	}

	body := make([]byte, 0, 4+width)
	body = append(body, addr[:]...)
	if width == 1 {
		body = append(body, byte(value))
	} else {
		body = append(body, nibbles(value, width)...)
	}
	return Frame(cmdDT1, body)
}

// BuildDataRequest builds an RQ1 ("data request") message asking the device
// to send back length bytes starting at addr. The device answers with a DT1
// that Decode understands.
func BuildDataRequest(addr Address, length int) ([]byte, error) {
	if length <= 0 {
		return nil, fmt.Errorf("data request %s: length %d: %w", addr, length, ErrOutOfRange)
	}
	body := make([]byte, 0, 8)
	body = append(body, addr[:]...)
	body = append(body,
		byte(length>>21&0x7F),
		byte(length>>14&0x7F),
		byte(length>>7&0x7F),
		byte(length&0x7F),
	)
	return Frame(cmdRQ1, body)
}

// BuildIdentityRequest builds the universal non-realtime identity request.
// The JD-Xi answers with an identity reply carrying its family code and
// firmware version.
func BuildIdentityRequest() []byte {
	return []byte{sysExStart, universalNonRealtime, DeviceID, subIDGeneralInfo, subIDIdentityRequest, sysExEnd}
}

// Encode resolves a named parameter for one synth engine and partial, range
// checks the raw value against its descriptor, and returns the framed DT1
// bytes ready for a MIDI output port.
func Encode(reg *Registry, synth SynthType, name string, value, partial int) ([]byte, error) {
	p, addr, err := reg.Resolve(synth, name, partial)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(value); err != nil {
		return nil, err
	}
	return BuildDataSet(addr, value, p.Width)
}
