package unpacking

import (
	"github.com/eth2030/discv5/packet"
)

// Packet is the result of the generic Unpack dispatcher: exactly one of
// its shape-specific fields is populated, selected by Flag.
type Packet struct {
	Flag packet.Flag

	// Populated when Flag == packet.FlagOrdinary.
	SrcID [32]byte

	// Populated when Flag == packet.FlagWhoareyou.
	WhoareyouNonce    packet.Nonce
	WhoareyouAuthdata packet.WhoareyouAuthdata

	// Populated when Flag == packet.FlagHandshake.
	HandshakeAuthdata packet.HandshakeAuthdata

	// MessageBytes holds the decrypted message (1-byte type tag ∥ RLP
	// body) for ordinary and handshake packets; nil for whoareyou.
	MessageBytes []byte
}

// Unpack peeks at data's static-header flag and dispatches to the
// matching UnpackOrdinaryMessage/UnpackWhoareyou/UnpackHandshakeMessage,
// for callers that don't know a packet's shape ahead of time (e.g. a
// transport's top-level receive loop). key is ignored for whoareyou
// packets, which carry no encrypted message.
func Unpack(data []byte, selfID [32]byte, key [16]byte) (Packet, error) {
	_, header, _, _, err := unpackHeader(data, selfID)
	if err != nil {
		recordUnpackFailure("header")
		return Packet{}, err
	}

	switch header.Flag {
	case packet.FlagOrdinary:
		srcID, msg, err := UnpackOrdinaryMessage(data, selfID, key)
		if err != nil {
			return Packet{}, err
		}
		return Packet{Flag: header.Flag, SrcID: srcID, MessageBytes: msg}, nil
	case packet.FlagWhoareyou:
		nonce, authdata, err := UnpackWhoareyou(data, selfID)
		if err != nil {
			return Packet{}, err
		}
		return Packet{Flag: header.Flag, WhoareyouNonce: nonce, WhoareyouAuthdata: authdata}, nil
	case packet.FlagHandshake:
		authdata, msg, err := UnpackHandshakeMessage(data, selfID, key)
		if err != nil {
			return Packet{}, err
		}
		return Packet{Flag: header.Flag, HandshakeAuthdata: authdata, MessageBytes: msg}, nil
	default:
		return Packet{}, packet.ErrInvalidFlag
	}
}
