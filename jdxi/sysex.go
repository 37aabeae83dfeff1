// Package jdxi builds and parses Roland JD-Xi System Exclusive messages.
//
// The JD-Xi addresses its parameter memory with a 4-byte hierarchical
// address (area, part, group, offset). Writes use the Roland DT1 command,
// reads use RQ1; both carry a 7-bit checksum over the address and data
// bytes. This package contains only the protocol core: it performs no MIDI
// I/O itself beyond the Conn helper, which hands finished byte slices to a
// gomidi output port.
package jdxi

import "fmt"

const (
	sysExStart = 0xF0
	sysExEnd   = 0xF7

	manufacturerRoland = 0x41

	// DeviceID is the JD-Xi's fixed SysEx device ID.
	DeviceID = 0x10

	cmdRQ1 = 0x11 // data request
	cmdDT1 = 0x12 // data set

	// Universal non-realtime envelope used by the identity handshake.
	universalNonRealtime = 0x7E
	subIDGeneralInfo     = 0x06
	subIDIdentityRequest = 0x01
	subIDIdentityReply   = 0x02
)

// modelID is the JD-Xi's 4-byte model ID, sent after the device ID in every
// Roland-addressed message.
var modelID = [4]byte{0x00, 0x00, 0x00, 0x0E}

// Checksum computes the Roland 7-bit checksum over the address and data
// bytes: the byte that makes the whole block sum to zero mod 128.
func Checksum(body []byte) byte {
	sum := 0
	for _, b := range body {
		sum += int(b)
	}
	return byte((128 - sum%128) % 128)
}

// Frame wraps a command byte and its body (address plus data) in a complete
// JD-Xi SysEx frame: start byte, Roland header, command, body, checksum over
// the body, end byte.
func Frame(cmd byte, body []byte) ([]byte, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("frame command 0x%02X: %w", cmd, ErrEmptyPayload)
	}
	msg := make([]byte, 0, len(body)+10)
	msg = append(msg, sysExStart, manufacturerRoland, DeviceID)
	msg = append(msg, modelID[:]...)
	msg = append(msg, cmd)
	msg = append(msg, body...)
	msg = append(msg, Checksum(body), sysExEnd)
	return msg, nil
}
