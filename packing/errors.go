package packing

import "errors"

var (
	// ErrPacketTooLarge is returned when the assembled packet exceeds
	// packet.MaxPacketByteLength.
	ErrPacketTooLarge = errors.New("packing: assembled packet exceeds the maximum wire size")
)
