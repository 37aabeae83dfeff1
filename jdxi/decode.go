package jdxi

import "fmt"

// EventKind tags what a decoded message turned out to be.
type EventKind int

const (
	// EventParameter is a DT1 data-set reply carrying one parameter value.
	EventParameter EventKind = iota
	// EventIdentity is a universal identity reply.
	EventIdentity
)

// Identity is the parsed result of the identity-request handshake.
type Identity struct {
	Manufacturer byte
	Family       [2]byte
	FamilyNumber [2]byte
	Version      string
	VersionRaw   [4]byte
}

// Event is the decoded form of one incoming SysEx message.
type Event struct {
	Kind EventKind

	// EventParameter fields.
	Addr    Address
	Value   int
	Param   *Param // nil when no descriptor is registered at Addr
	Payload []byte

	// EventIdentity field.
	Identity *Identity
}

// Decode parses one complete incoming SysEx message. It is a single-shot,
// bounded computation: it never blocks, never retries, and touches no state.
// The registry supplies the expected payload width for de-nibbling; at
// unregistered addresses the raw bytes are kept verbatim.
func Decode(msg []byte, reg *Registry) (Event, error) {
	if len(msg) < 6 || msg[0] != sysExStart || msg[len(msg)-1] != sysExEnd {
		return Event{}, fmt.Errorf("frame of %d bytes: %w", len(msg), ErrMalformedSysEx)
	}

	if msg[1] == universalNonRealtime {
		return decodeUniversal(msg)
	}

	if msg[1] != manufacturerRoland {
		return Event{}, fmt.Errorf("manufacturer 0x%02X: %w", msg[1], ErrNotRoland)
	}
	if msg[2] != DeviceID {
		return Event{}, fmt.Errorf("device ID 0x%02X: %w", msg[2], ErrNotRoland)
	}
	if len(msg) < 14 {
		return Event{}, fmt.Errorf("Roland frame of %d bytes: %w", len(msg), ErrMalformedSysEx)
	}
	for i, b := range modelID {
		if msg[3+i] != b {
			return Event{}, fmt.Errorf("model ID byte %d is 0x%02X: %w", i, msg[3+i], ErrNotRoland)
		}
	}

	cmd := msg[7]
	if cmd != cmdDT1 {
		return Event{}, fmt.Errorf("command 0x%02X: %w", cmd, ErrUnsupportedCommand)
	}

	body := msg[8 : len(msg)-2]
	if len(body) < 5 {
		return Event{}, fmt.Errorf("DT1 body of %d bytes: %w", len(body), ErrMalformedSysEx)
	}
	if got, want := msg[len(msg)-2], Checksum(body); got != want {
		return Event{}, fmt.Errorf("want 0x%02X, got 0x%02X: %w", want, got, ErrChecksumMismatch)
	}

	var addr Address
	copy(addr[:], body[:4])
	payload := body[4:]

	p, _ := reg.LookupAddress(addr)
	value := 0
	switch {
	case p != nil && p.Width > 1 && len(payload) == p.Width:
		value = joinNibbles(payload)
	case len(payload) == 1:
		value = int(payload[0])
	default:
		// No descriptor to say otherwise: keep the 7-bit bytes as-is.
		for _, b := range payload {
			value = value<<7 | int(b)
		}
	}

	return Event{
		Kind:    EventParameter,
		Addr:    addr,
		Value:   value,
		Param:   p,
		Payload: append([]byte(nil), payload...),
	}, nil
}

// decodeUniversal handles the identity reply; any other universal message is
// ignored as unsupported.
func decodeUniversal(msg []byte) (Event, error) {
	if len(msg) < 6 || msg[3] != subIDGeneralInfo || msg[4] != subIDIdentityReply {
		return Event{}, fmt.Errorf("universal sub-IDs 0x%02X 0x%02X: %w", msg[3], msg[4], ErrUnsupportedCommand)
	}
	if len(msg) < 15 {
		return Event{}, fmt.Errorf("identity reply of %d bytes: %w", len(msg), ErrMalformedSysEx)
	}

	id := &Identity{Manufacturer: msg[5]}
	copy(id.Family[:], msg[6:8])
	copy(id.FamilyNumber[:], msg[8:10])
	copy(id.VersionRaw[:], msg[10:14])
	id.Version = fmt.Sprintf("%d.%02d", id.VersionRaw[0], id.VersionRaw[1])

	return Event{Kind: EventIdentity, Identity: id}, nil
}
