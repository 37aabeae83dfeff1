package jdxi

import "errors"

// Decode-side errors are non-fatal: the offending message is dropped and the
// parameter store is left untouched. Encode-side errors surface before any
// bytes are handed to the MIDI port.
var (
	ErrMalformedSysEx     = errors.New("malformed SysEx frame")
	ErrNotRoland          = errors.New("not a Roland JD-Xi SysEx")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrUnsupportedCommand = errors.New("unsupported SysEx command")
	ErrUnknownParameter   = errors.New("unknown parameter")
	ErrOutOfRange         = errors.New("value out of range")
	ErrAddressOverflow    = errors.New("address byte overflow")
	ErrUnknownArea        = errors.New("unknown synth/area combination")
	ErrEmptyPayload       = errors.New("empty SysEx payload")
)
