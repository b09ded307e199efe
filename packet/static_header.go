package packet

import "encoding/binary"

// ProtocolID is the fixed 6-byte protocol identifier at the start of
// every static header.
const ProtocolID = "discv5"

// CurrentVersion is the wire version carried in the static header.
const CurrentVersion uint16 = 1

// Flag values for the static header.
type Flag byte

const (
	FlagOrdinary   Flag = 0
	FlagWhoareyou  Flag = 1
	FlagHandshake  Flag = 2
)

// StaticHeaderByteLength is the fixed, flag-independent size of the
// static header.
const StaticHeaderByteLength = 6 + 2 + 1 + 12 + 2

// StaticHeader is the 23-byte fixed-layout header that precedes every
// packet's authdata.
type StaticHeader struct {
	Flag         Flag
	Nonce        Nonce
	AuthdataSize uint16
}

// Encode writes the 23-byte static header.
func (h StaticHeader) Encode() []byte {
	buf := make([]byte, StaticHeaderByteLength)
	copy(buf[0:6], ProtocolID)
	binary.BigEndian.PutUint16(buf[6:8], CurrentVersion)
	buf[8] = byte(h.Flag)
	copy(buf[9:21], h.Nonce[:])
	binary.BigEndian.PutUint16(buf[21:23], h.AuthdataSize)
	return buf
}

// DecodeStaticHeader parses the first StaticHeaderByteLength bytes of
// data as a static header, validating protocol id, version, and flag.
func DecodeStaticHeader(data []byte) (StaticHeader, error) {
	if len(data) < StaticHeaderByteLength {
		return StaticHeader{}, ErrInvalidAuthDataBytes
	}
	if string(data[0:6]) != ProtocolID {
		return StaticHeader{}, ErrInvalidProtocolId
	}
	if binary.BigEndian.Uint16(data[6:8]) != CurrentVersion {
		return StaticHeader{}, ErrInvalidVersion
	}
	flag := Flag(data[8])
	if flag != FlagOrdinary && flag != FlagWhoareyou && flag != FlagHandshake {
		return StaticHeader{}, ErrInvalidFlag
	}
	var h StaticHeader
	h.Flag = flag
	copy(h.Nonce[:], data[9:21])
	h.AuthdataSize = binary.BigEndian.Uint16(data[21:23])
	return h, nil
}
