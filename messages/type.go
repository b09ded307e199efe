package messages

// Type is the 1-byte wire tag identifying a message's shape.
type Type byte

const (
	TypePing     Type = 0x01
	TypePong     Type = 0x02
	TypeFindNode Type = 0x03
	TypeNodes    Type = 0x04
	TypeTalkReq  Type = 0x05
	TypeTalkResp Type = 0x06
)

// DecodeType splits the 1-byte type tag off the front of a wire message,
// returning the type and the remaining RLP-encoded body.
func DecodeType(data []byte) (Type, []byte, error) {
	if len(data) < 1 {
		return 0, nil, ErrEmptyMessage
	}
	t := Type(data[0])
	switch t {
	case TypePing, TypePong, TypeFindNode, TypeNodes, TypeTalkReq, TypeTalkResp:
	default:
		return 0, nil, ErrInvalidMessageType
	}
	return t, data[1:], nil
}

// Encode dispatches to msg's own Encode method by concrete type.
func Encode(msg interface{}) ([]byte, error) {
	switch m := msg.(type) {
	case Ping:
		return m.Encode()
	case Pong:
		return m.Encode()
	case FindNode:
		return m.Encode()
	case Nodes:
		return m.Encode()
	case TalkReq:
		return m.Encode()
	case TalkResp:
		return m.Encode()
	default:
		return nil, ErrInvalidMessageType
	}
}
