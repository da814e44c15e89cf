package avr

import "errors"

// Sentinel errors for the error kinds named in the AVR protocol design:
// transport-timeout/transport-error are produced by comm and session,
// invalid-argument is produced synchronously by the Session command API.
var (
	// ErrUnknownMnemonic is returned when a catalogue lookup fails.
	ErrUnknownMnemonic = errors.New("avr: unknown mnemonic")

	// ErrUnknownChannel is returned by channel-bias commands given an
	// unrecognised Channel.
	ErrUnknownChannel = errors.New("avr: unknown channel")

	// ErrUnknownZone is returned by zone-scoped commands given a zone
	// with no wire mapping.
	ErrUnknownZone = errors.New("avr: unknown zone")

	// ErrUnknownValue is returned when a string value fails to parse
	// against a closed-set enumeration.
	ErrUnknownValue = errors.New("avr: unknown enumeration value")

	// ErrChannelUnavailable is returned when a channel-bias command
	// targets a channel the device has not reported as present.
	ErrChannelUnavailable = errors.New("avr: channel not currently available")

	// ErrOutOfRange is returned when a numeric argument is rejected
	// outright rather than clamped (the API clamps where the spec calls
	// for clamping and only returns this for arguments with no sensible
	// clamp, such as a speaker preset other than 1 or 2, or a dynamic EQ
	// reference level off the 0/5/10/15 grid).
	ErrOutOfRange = errors.New("avr: value out of range")
)
