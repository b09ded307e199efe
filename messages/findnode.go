package messages

import "github.com/eth2030/discv5/rlp"

// MaxDistance is the highest valid FindNode distance value (domain
// [0, 256]).
const MaxDistance = 256

// FindNode asks the recipient for nodes at the given Kademlia distances
// from itself.
type FindNode struct {
	RequestID RequestID
	Distances []uint16
}

func validateDistances(distances []uint16) error {
	for _, d := range distances {
		if d > MaxDistance {
			return ErrDistanceOutOfRange
		}
	}
	return nil
}

// Encode returns the 1-byte type tag followed by the RLP-encoded body.
func (m FindNode) Encode() ([]byte, error) {
	if len(m.RequestID) > MaxRequestIDByteLength {
		return nil, ErrRequestIDTooLong
	}
	if err := validateDistances(m.Distances); err != nil {
		return nil, err
	}
	body, err := rlp.EncodeToBytes(m)
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(TypeFindNode)}, body...), nil
}

// DecodeFindNode decodes a FindNode's RLP body.
func DecodeFindNode(body []byte) (FindNode, error) {
	var m FindNode
	if err := rlp.DecodeBytes(body, &m); err != nil {
		return FindNode{}, err
	}
	if len(m.RequestID) > MaxRequestIDByteLength {
		return FindNode{}, ErrRequestIDTooLong
	}
	if err := validateDistances(m.Distances); err != nil {
		return FindNode{}, err
	}
	return m, nil
}
