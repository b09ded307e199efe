package packet

import "encoding/binary"

// NodeIDByteLength is the fixed size of a node id (keccak256 output for
// scheme v4).
const NodeIDByteLength = 32

// OrdinaryAuthdata is the authdata shape for flag=ordinary: just the
// sender's node id.
type OrdinaryAuthdata struct {
	SrcID [NodeIDByteLength]byte
}

// Encode returns the 32-byte ordinary authdata.
func (a OrdinaryAuthdata) Encode() []byte {
	return append([]byte(nil), a.SrcID[:]...)
}

// DecodeOrdinaryAuthdata parses a 32-byte ordinary authdata.
func DecodeOrdinaryAuthdata(data []byte) (OrdinaryAuthdata, error) {
	if len(data) != NodeIDByteLength {
		return OrdinaryAuthdata{}, ErrInvalidAuthDataBytes
	}
	var a OrdinaryAuthdata
	copy(a.SrcID[:], data)
	return a, nil
}

// WhoareyouAuthdataByteLength is the fixed size of a whoareyou authdata.
const WhoareyouAuthdataByteLength = 16 + 8

// WhoareyouAuthdata is the authdata shape for flag=whoareyou.
type WhoareyouAuthdata struct {
	IDNonce IdNonce
	EnrSeq  uint64
}

// Encode returns the 24-byte whoareyou authdata: id-nonce ∥ enr-seq.
func (a WhoareyouAuthdata) Encode() []byte {
	buf := make([]byte, WhoareyouAuthdataByteLength)
	copy(buf[0:16], a.IDNonce[:])
	binary.BigEndian.PutUint64(buf[16:24], a.EnrSeq)
	return buf
}

// DecodeWhoareyouAuthdata parses a 24-byte whoareyou authdata.
func DecodeWhoareyouAuthdata(data []byte) (WhoareyouAuthdata, error) {
	if len(data) != WhoareyouAuthdataByteLength {
		return WhoareyouAuthdata{}, ErrInvalidAuthDataBytes
	}
	var a WhoareyouAuthdata
	copy(a.IDNonce[:], data[0:16])
	a.EnrSeq = binary.BigEndian.Uint64(data[16:24])
	return a, nil
}

// Scheme v4 fixed sizes within handshake authdata.
const (
	SchemeV4SignatureByteLength = 64
	SchemeV4EphPublicKeyByteLength = 33
	// HandshakeAuthdataFixedByteLength is the handshake authdata size
	// with no embedded record: src-id ∥ sig-size ∥ eph-key-size ∥
	// id-signature ∥ eph-pubkey.
	HandshakeAuthdataFixedByteLength = NodeIDByteLength + 1 + 1 + SchemeV4SignatureByteLength + SchemeV4EphPublicKeyByteLength
)

// HandshakeAuthdata is the authdata shape for flag=handshake. Record is
// nil when the sender believes the recipient already has its current
// ENR; otherwise it holds the record's RLP encoding verbatim (
// kept as an opaque byte slice, not re-parsed, so a relayed record's
// signature stays verifiable).
type HandshakeAuthdata struct {
	SrcID       [NodeIDByteLength]byte
	IDSignature []byte
	EphPubkey   []byte
	Record      []byte
}

// Encode returns the handshake authdata: src-id ∥ sig-size ∥
// eph-key-size ∥ id-signature ∥ eph-pubkey ∥ optional record.
func (a HandshakeAuthdata) Encode() []byte {
	buf := make([]byte, 0, HandshakeAuthdataFixedByteLength+len(a.Record))
	buf = append(buf, a.SrcID[:]...)
	buf = append(buf, byte(len(a.IDSignature)))
	buf = append(buf, byte(len(a.EphPubkey)))
	buf = append(buf, a.IDSignature...)
	buf = append(buf, a.EphPubkey...)
	buf = append(buf, a.Record...)
	return buf
}

// DecodeHandshakeAuthdata parses a handshake authdata, tolerating a
// trailing optional record of any length.
func DecodeHandshakeAuthdata(data []byte) (HandshakeAuthdata, error) {
	if len(data) < NodeIDByteLength+2 {
		return HandshakeAuthdata{}, ErrInvalidAuthDataBytes
	}
	var a HandshakeAuthdata
	copy(a.SrcID[:], data[0:NodeIDByteLength])
	sigSize := int(data[NodeIDByteLength])
	ephSize := int(data[NodeIDByteLength+1])
	offset := NodeIDByteLength + 2
	if len(data) < offset+sigSize+ephSize {
		return HandshakeAuthdata{}, ErrInvalidAuthDataBytes
	}
	a.IDSignature = append([]byte(nil), data[offset:offset+sigSize]...)
	offset += sigSize
	a.EphPubkey = append([]byte(nil), data[offset:offset+ephSize]...)
	offset += ephSize
	if offset < len(data) {
		a.Record = append([]byte(nil), data[offset:]...)
	}
	return a, nil
}
