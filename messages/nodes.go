package messages

import "github.com/eth2030/discv5/rlp"

// Nodes answers a FindNode. Records holds each responded node's full
// RLP-encoded ENR bytes verbatim: they are relayed opaquely rather than
// decoded and re-serialized, so a relayed record's signature remains
// verifiable against its original encoding.
type Nodes struct {
	RequestID RequestID
	Total     uint64
	Records   [][]byte
}

// Encode returns the 1-byte type tag followed by the RLP-encoded body.
func (m Nodes) Encode() ([]byte, error) {
	if len(m.RequestID) > MaxRequestIDByteLength {
		return nil, ErrRequestIDTooLong
	}
	payload, err := rlp.EncodeToBytes([]byte(m.RequestID))
	if err != nil {
		return nil, err
	}
	totalEnc, err := rlp.EncodeToBytes(m.Total)
	if err != nil {
		return nil, err
	}
	payload = append(payload, totalEnc...)

	var recordsPayload []byte
	for _, rec := range m.Records {
		recordsPayload = append(recordsPayload, rec...)
	}
	payload = append(payload, rlp.WrapList(recordsPayload)...)

	body := rlp.WrapList(payload)
	return append([]byte{byte(TypeNodes)}, body...), nil
}

// DecodeNodes decodes a Nodes's RLP body, preserving each record's exact
// encoded bytes via rlp.EncodeItem rather than re-deriving them.
func DecodeNodes(body []byte) (Nodes, error) {
	kind, headerLen, payloadLen, err := rlp.DecodeHeader(body)
	if err != nil {
		return Nodes{}, err
	}
	if kind != rlp.List {
		return Nodes{}, ErrDecodingFailedForInvalidInput
	}
	it := rlp.NewListIterator(body[headerLen : headerLen+payloadLen])

	_, ridPayload, err := it.Next()
	if err != nil {
		return Nodes{}, ErrDecodingFailedForInvalidInput
	}
	if len(ridPayload) > MaxRequestIDByteLength {
		return Nodes{}, ErrRequestIDTooLong
	}
	rid := RequestID(append([]byte(nil), ridPayload...))

	var total uint64
	if err := it.NextItem(&total); err != nil {
		return Nodes{}, err
	}

	recKind, recPayload, err := it.Next()
	if err != nil {
		return Nodes{}, ErrDecodingFailedForInvalidInput
	}
	if recKind != rlp.List {
		return Nodes{}, ErrDecodingFailedForInvalidInput
	}
	recIt := rlp.NewListIterator(recPayload)
	var records [][]byte
	for !recIt.Done() {
		k, p, err := recIt.Next()
		if err != nil {
			return Nodes{}, err
		}
		records = append(records, rlp.EncodeItem(k, p))
	}

	if !it.Done() {
		return Nodes{}, ErrDecodingFailedForInvalidInput
	}
	return Nodes{RequestID: rid, Total: total, Records: records}, nil
}
