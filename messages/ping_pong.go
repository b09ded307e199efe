package messages

import (
	"net"

	"github.com/eth2030/discv5/rlp"
)

// Ping carries the sender's ENR sequence number so the recipient can
// detect a stale cached record.
type Ping struct {
	RequestID RequestID
	EnrSeq    uint64
}

// Encode returns the 1-byte type tag followed by the RLP-encoded body.
func (m Ping) Encode() ([]byte, error) {
	if len(m.RequestID) > MaxRequestIDByteLength {
		return nil, ErrRequestIDTooLong
	}
	body, err := rlp.EncodeToBytes(m)
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(TypePing)}, body...), nil
}

// DecodePing decodes a Ping's RLP body (the wire message with its type
// tag already stripped by DecodeType).
func DecodePing(body []byte) (Ping, error) {
	var m Ping
	if err := rlp.DecodeBytes(body, &m); err != nil {
		return Ping{}, err
	}
	if len(m.RequestID) > MaxRequestIDByteLength {
		return Ping{}, ErrRequestIDTooLong
	}
	return m, nil
}

// Pong answers a Ping, reporting the sender's own externally observed
// address back to the peer. RecipientIP is length-dispatched rather than
// tagged: 4 bytes means IPv4, 16 means IPv6.
type Pong struct {
	RequestID     RequestID
	EnrSeq        uint64
	RecipientIP   net.IP
	RecipientPort uint16
}

// Encode returns the 1-byte type tag followed by the RLP-encoded body.
func (m Pong) Encode() ([]byte, error) {
	if len(m.RequestID) > MaxRequestIDByteLength {
		return nil, ErrRequestIDTooLong
	}
	if len(m.RecipientIP) != 4 && len(m.RecipientIP) != 16 {
		return nil, ErrInvalidByteRepresentaion
	}
	body, err := rlp.EncodeToBytes(m)
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(TypePong)}, body...), nil
}

// DecodePong decodes a Pong's RLP body.
func DecodePong(body []byte) (Pong, error) {
	var m Pong
	if err := rlp.DecodeBytes(body, &m); err != nil {
		return Pong{}, err
	}
	if len(m.RequestID) > MaxRequestIDByteLength {
		return Pong{}, ErrRequestIDTooLong
	}
	switch len(m.RecipientIP) {
	case 4, 16:
	default:
		return Pong{}, ErrInvalidByteRepresentaion
	}
	return m, nil
}
