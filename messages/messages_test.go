package messages

import (
	"bytes"
	"net"
	"testing"

	"github.com/eth2030/discv5/rlp"
)

func TestPingRoundTrip(t *testing.T) {
	m := Ping{RequestID: RequestID{0x00, 0x00, 0x00, 0x01}, EnrSeq: 2}
	wire, err := m.Encode()
	if err != nil {
		t.Fatal(err)
	}
	typ, body, err := DecodeType(wire)
	if err != nil {
		t.Fatal(err)
	}
	if typ != TypePing {
		t.Fatalf("type = %v, want TypePing", typ)
	}
	decoded, err := DecodePing(body)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.EnrSeq != m.EnrSeq || !bytes.Equal(decoded.RequestID, m.RequestID) {
		t.Fatalf("decoded = %+v, want %+v", decoded, m)
	}
}

func TestPongRoundTrip(t *testing.T) {
	m := Pong{
		RequestID:     RequestID{0x01},
		EnrSeq:        3,
		RecipientIP:   net.ParseIP("127.0.0.1").To4(),
		RecipientPort: 9000,
	}
	wire, err := m.Encode()
	if err != nil {
		t.Fatal(err)
	}
	_, body, err := DecodeType(wire)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodePong(body)
	if err != nil {
		t.Fatal(err)
	}
	if !decoded.RecipientIP.Equal(m.RecipientIP) || decoded.RecipientPort != m.RecipientPort {
		t.Fatalf("decoded = %+v, want %+v", decoded, m)
	}
}

func TestPongRejectsBadIPLength(t *testing.T) {
	m := Pong{RequestID: RequestID{0x01}, RecipientIP: []byte{0x01, 0x02, 0x03}}
	if _, err := m.Encode(); err != ErrInvalidByteRepresentaion {
		t.Fatalf("err = %v, want ErrInvalidByteRepresentaion", err)
	}
}

func TestFindNodeRoundTrip(t *testing.T) {
	m := FindNode{RequestID: RequestID{0x02}, Distances: []uint16{0, 128, 256}}
	wire, err := m.Encode()
	if err != nil {
		t.Fatal(err)
	}
	_, body, err := DecodeType(wire)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeFindNode(body)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded.Distances) != 3 || decoded.Distances[2] != 256 {
		t.Fatalf("decoded distances = %v", decoded.Distances)
	}
}

func TestFindNodeRejectsDistanceOutOfRange(t *testing.T) {
	m := FindNode{RequestID: RequestID{0x02}, Distances: []uint16{257}}
	if _, err := m.Encode(); err != ErrDistanceOutOfRange {
		t.Fatalf("err = %v, want ErrDistanceOutOfRange", err)
	}
}

func TestDecodeFindNodeRejectsOversizedDistancePayload(t *testing.T) {
	// Hand-built RLP: [request-id, [distance]] where distance is encoded
	// as 0x83 01 00 00 (three payload bytes, value 65536) — too wide for
	// the uint16 distance element even though it fits uint64. Before the
	// destination-width check this silently truncated to 0 and passed
	// validateDistances.
	body := []byte{
		0xc6,                   // list, payload length 6
		0x02,                   // request id: single byte 0x02 (no string prefix, <= 0x7f)
		0xc4,                   // distances list, payload length 4
		0x83, 0x01, 0x00, 0x00, // distance: 3-byte payload, value 65536
	}
	if _, err := DecodeFindNode(body); err != rlp.ErrItemPayloadByteLengthTooLarge {
		t.Fatalf("err = %v, want rlp.ErrItemPayloadByteLengthTooLarge", err)
	}
}

func TestNodesRoundTripPreservesRecordBytes(t *testing.T) {
	record1 := []byte{0xc2, 0x01, 0x02}
	record2 := []byte{0xc3, 0x01, 0x02, 0x03}
	m := Nodes{RequestID: RequestID{0x03}, Total: 2, Records: [][]byte{record1, record2}}

	wire, err := m.Encode()
	if err != nil {
		t.Fatal(err)
	}
	_, body, err := DecodeType(wire)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeNodes(body)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Total != 2 || len(decoded.Records) != 2 {
		t.Fatalf("decoded = %+v", decoded)
	}
	if !bytes.Equal(decoded.Records[0], record1) || !bytes.Equal(decoded.Records[1], record2) {
		t.Fatalf("records did not round-trip: %x, %x", decoded.Records[0], decoded.Records[1])
	}
}

func TestTalkReqRespRoundTrip(t *testing.T) {
	req := TalkReq{RequestID: RequestID{0x04}, Protocol: []byte("foo"), Request: []byte("ping")}
	wire, err := req.Encode()
	if err != nil {
		t.Fatal(err)
	}
	_, body, err := DecodeType(wire)
	if err != nil {
		t.Fatal(err)
	}
	decodedReq, err := DecodeTalkReq(body)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decodedReq.Protocol, req.Protocol) || !bytes.Equal(decodedReq.Request, req.Request) {
		t.Fatalf("decoded = %+v", decodedReq)
	}

	resp := TalkResp{RequestID: RequestID{0x04}, Response: []byte("pong")}
	wire2, err := resp.Encode()
	if err != nil {
		t.Fatal(err)
	}
	_, body2, err := DecodeType(wire2)
	if err != nil {
		t.Fatal(err)
	}
	decodedResp, err := DecodeTalkResp(body2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decodedResp.Response, resp.Response) {
		t.Fatalf("decoded = %+v", decodedResp)
	}
}

func TestDecodeTypeRejectsUnknownTag(t *testing.T) {
	if _, _, err := DecodeType([]byte{0xff}); err != ErrInvalidMessageType {
		t.Fatalf("err = %v, want ErrInvalidMessageType", err)
	}
}

func TestDecodeTypeRejectsEmpty(t *testing.T) {
	if _, _, err := DecodeType(nil); err != ErrEmptyMessage {
		t.Fatalf("err = %v, want ErrEmptyMessage", err)
	}
}
