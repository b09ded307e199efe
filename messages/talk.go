package messages

import "github.com/eth2030/discv5/rlp"

// TalkReq carries an application-defined request under a named
// sub-protocol; this codec treats Protocol and Request as opaque bytes.
type TalkReq struct {
	RequestID RequestID
	Protocol  []byte
	Request   []byte
}

// Encode returns the 1-byte type tag followed by the RLP-encoded body.
func (m TalkReq) Encode() ([]byte, error) {
	if len(m.RequestID) > MaxRequestIDByteLength {
		return nil, ErrRequestIDTooLong
	}
	body, err := rlp.EncodeToBytes(m)
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(TypeTalkReq)}, body...), nil
}

// DecodeTalkReq decodes a TalkReq's RLP body.
func DecodeTalkReq(body []byte) (TalkReq, error) {
	var m TalkReq
	if err := rlp.DecodeBytes(body, &m); err != nil {
		return TalkReq{}, err
	}
	if len(m.RequestID) > MaxRequestIDByteLength {
		return TalkReq{}, ErrRequestIDTooLong
	}
	return m, nil
}

// TalkResp answers a TalkReq.
type TalkResp struct {
	RequestID RequestID
	Response  []byte
}

// Encode returns the 1-byte type tag followed by the RLP-encoded body.
func (m TalkResp) Encode() ([]byte, error) {
	if len(m.RequestID) > MaxRequestIDByteLength {
		return nil, ErrRequestIDTooLong
	}
	body, err := rlp.EncodeToBytes(m)
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(TypeTalkResp)}, body...), nil
}

// DecodeTalkResp decodes a TalkResp's RLP body.
func DecodeTalkResp(body []byte) (TalkResp, error) {
	var m TalkResp
	if err := rlp.DecodeBytes(body, &m); err != nil {
		return TalkResp{}, err
	}
	if len(m.RequestID) > MaxRequestIDByteLength {
		return TalkResp{}, ErrRequestIDTooLong
	}
	return m, nil
}
