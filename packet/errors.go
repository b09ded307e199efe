package packet

import "errors"

// Errors for discv5's packet-framing taxonomy.
var (
	ErrInvalidProtocolId    = errors.New("packet: static header protocol id mismatch")
	ErrInvalidVersion       = errors.New("packet: static header version mismatch")
	ErrInvalidFlag          = errors.New("packet: static header flag not recognized")
	ErrInvalidAuthDataBytes = errors.New("packet: authdata-size exceeds remaining packet bytes")
	ErrPacketTooSmall       = errors.New("packet: packet shorter than the minimum whoareyou size")
	ErrPacketTooLarge       = errors.New("packet: packet exceeds the maximum wire size")
)
