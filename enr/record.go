package enr

import (
	"fmt"
	"net"

	"github.com/eth2030/discv5/cryptoscheme"
	"github.com/eth2030/discv5/rlp"
)

// MaxRLPEncodedByteLength is the maximum size of an encoded record.
// Larger records are rejected both when encoding (the node
// refuses to publish something a peer would reject) and when decoding.
const MaxRLPEncodedByteLength = 300

// Record is an immutable, signed Ethereum Node Record: the result of
// Builder.SignAndBuild or FromRLPEncoded.
type Record struct {
	signatureData []byte
	content       *content
}

// ID returns the identity scheme name, always "v4" for records this
// package can produce or verify.
func (r *Record) ID() string { return r.content.ID() }

// Seq returns the record's sequence number.
func (r *Record) Seq() uint64 { return r.content.Seq() }

// PublicKeyBytes returns the raw 33-byte compressed secp256k1 public key.
func (r *Record) PublicKeyBytes() []byte { return r.content.PublicKeyBytes() }

// IP4 returns the record's IPv4 address, or nil if absent.
func (r *Record) IP4() net.IP { return r.content.IP4() }

// IP6 returns the record's IPv6 address, or nil if absent.
func (r *Record) IP6() net.IP { return r.content.IP6() }

// TCP4 returns the record's IPv4 TCP port.
func (r *Record) TCP4() (uint16, bool) { return r.content.TCP4() }

// TCP6 returns the record's IPv6 TCP port.
func (r *Record) TCP6() (uint16, bool) { return r.content.TCP6() }

// UDP4 returns the record's IPv4 UDP port.
func (r *Record) UDP4() (uint16, bool) { return r.content.UDP4() }

// UDP6 returns the record's IPv6 UDP port.
func (r *Record) UDP6() (uint16, bool) { return r.content.UDP6() }

// Get returns the raw bytes of an arbitrary (possibly unrecognized) key.
func (r *Record) Get(key string) ([]byte, bool) { return r.content.Get(key) }

// SignatureData returns the raw 64-byte r||s content signature.
func (r *Record) SignatureData() []byte {
	return append([]byte(nil), r.signatureData...)
}

// ToRLPEncoded returns the canonical RLP encoding of the record: [signature,
// seq, k1, v1, ...]. Returns ErrMaximumRecordRlpEncodedByteLengthExceeded
// if the result exceeds MaxRLPEncodedByteLength.
func (r *Record) ToRLPEncoded() ([]byte, error) {
	payload := encodeBytesItem(r.signatureData)
	payload = append(payload, r.content.encodeListPayload()...)
	encoded := rlp.WrapList(payload)
	if len(encoded) > MaxRLPEncodedByteLength {
		return nil, ErrMaximumRecordRlpEncodedByteLengthExceeded
	}
	return encoded, nil
}

// FromRLPEncoded decodes and verifies a record from its RLP encoding,
// checking size bound, signature byte length, key ordering, known-key
// byte lengths, identity scheme name, and the content signature itself.
func FromRLPEncoded(data []byte) (*Record, error) {
	if len(data) > MaxRLPEncodedByteLength {
		return nil, ErrMaximumRecordRlpEncodedByteLengthExceeded
	}
	kind, headerLen, payloadLen, err := rlp.DecodeHeader(data)
	if err != nil {
		return nil, fmt.Errorf("enr: decoding record header: %w", err)
	}
	if kind != rlp.List {
		return nil, ErrDecodingFailedForInvalidInput
	}
	payload := data[headerLen : headerLen+payloadLen]
	it := rlp.NewListIterator(payload)

	sigKind, sigPayload, err := it.Next()
	if err != nil {
		return nil, ErrDecodingFailedForInvalidInput
	}
	if sigKind == rlp.List || len(sigPayload) != cryptoscheme.SignatureByteLength {
		return nil, ErrSignatureDataWithInvalidByteLength
	}
	sig := append([]byte(nil), sigPayload...)

	c, err := decodeContent(it)
	if err != nil {
		return nil, err
	}

	pubBytes, ok := c.rawBytes(KeySecp256k1)
	if !ok {
		return nil, ErrSignatureVerifyingFailedForMissingPublicKey
	}
	pub, err := cryptoscheme.NewPublicKeyFromBytes(pubBytes)
	if err != nil {
		return nil, ErrInvalidPublicKeyData
	}

	hash := cryptoscheme.Keccak256(c.encode())
	if !cryptoscheme.Verify(pub, hash, sig) {
		return nil, ErrInvalidSignature
	}

	return &Record{signatureData: sig, content: c}, nil
}

// ToPublishable wraps r in a PublishableRecord, snapshotting its current
// content encoding so subsequent mutations can detect whether a
// resequence is actually required.
func (r *Record) ToPublishable() *PublishableRecord {
	return &PublishableRecord{content: r.content.clone(), lastPublished: r.content.clone()}
}
