package packet

import (
	"bytes"
	"testing"
)

func TestStaticHeaderRoundTrip(t *testing.T) {
	h := StaticHeader{Flag: FlagOrdinary, AuthdataSize: 32}
	copy(h.Nonce[:], bytes.Repeat([]byte{0xff}, 12))

	encoded := h.Encode()
	if len(encoded) != StaticHeaderByteLength {
		t.Fatalf("encoded length = %d, want %d", len(encoded), StaticHeaderByteLength)
	}
	decoded, err := DecodeStaticHeader(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if decoded != h {
		t.Fatalf("decoded header = %+v, want %+v", decoded, h)
	}
}

func TestDecodeStaticHeaderRejectsBadProtocolId(t *testing.T) {
	h := StaticHeader{Flag: FlagOrdinary, AuthdataSize: 32}
	encoded := h.Encode()
	encoded[0] = 'x'
	if _, err := DecodeStaticHeader(encoded); err != ErrInvalidProtocolId {
		t.Fatalf("err = %v, want ErrInvalidProtocolId", err)
	}
}

func TestDecodeStaticHeaderRejectsBadVersion(t *testing.T) {
	h := StaticHeader{Flag: FlagOrdinary, AuthdataSize: 32}
	encoded := h.Encode()
	encoded[7] = 0x02
	if _, err := DecodeStaticHeader(encoded); err != ErrInvalidVersion {
		t.Fatalf("err = %v, want ErrInvalidVersion", err)
	}
}

func TestDecodeStaticHeaderRejectsBadFlag(t *testing.T) {
	h := StaticHeader{Flag: FlagOrdinary, AuthdataSize: 32}
	encoded := h.Encode()
	encoded[8] = 0x07
	if _, err := DecodeStaticHeader(encoded); err != ErrInvalidFlag {
		t.Fatalf("err = %v, want ErrInvalidFlag", err)
	}
}

func TestAuthdataRoundTrips(t *testing.T) {
	var ordinary OrdinaryAuthdata
	ordinary.SrcID[0] = 0xaa
	decodedOrdinary, err := DecodeOrdinaryAuthdata(ordinary.Encode())
	if err != nil || decodedOrdinary != ordinary {
		t.Fatalf("ordinary authdata round-trip failed: %v", err)
	}

	var whoareyou WhoareyouAuthdata
	whoareyou.IDNonce[0] = 0x01
	whoareyou.EnrSeq = 7
	decodedWhoareyou, err := DecodeWhoareyouAuthdata(whoareyou.Encode())
	if err != nil || decodedWhoareyou != whoareyou {
		t.Fatalf("whoareyou authdata round-trip failed: %v", err)
	}

	handshake := HandshakeAuthdata{
		IDSignature: bytes.Repeat([]byte{0x11}, SchemeV4SignatureByteLength),
		EphPubkey:   bytes.Repeat([]byte{0x02}, SchemeV4EphPublicKeyByteLength),
	}
	handshake.SrcID[0] = 0xbb
	encoded := handshake.Encode()
	if len(encoded) != HandshakeAuthdataFixedByteLength {
		t.Fatalf("handshake authdata length = %d, want %d", len(encoded), HandshakeAuthdataFixedByteLength)
	}
	decodedHandshake, err := DecodeHandshakeAuthdata(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if decodedHandshake.SrcID != handshake.SrcID ||
		!bytes.Equal(decodedHandshake.IDSignature, handshake.IDSignature) ||
		!bytes.Equal(decodedHandshake.EphPubkey, handshake.EphPubkey) ||
		len(decodedHandshake.Record) != 0 {
		t.Fatal("handshake authdata did not round-trip")
	}
}

func TestHandshakeAuthdataWithRecord(t *testing.T) {
	handshake := HandshakeAuthdata{
		IDSignature: bytes.Repeat([]byte{0x11}, SchemeV4SignatureByteLength),
		EphPubkey:   bytes.Repeat([]byte{0x02}, SchemeV4EphPublicKeyByteLength),
		Record:      []byte{0xc2, 0x01, 0x02},
	}
	decoded, err := DecodeHandshakeAuthdata(handshake.Encode())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded.Record, handshake.Record) {
		t.Fatalf("record = %x, want %x", decoded.Record, handshake.Record)
	}
}

func TestMaskHeaderRoundTrip(t *testing.T) {
	var key [MaskingKeyByteLength]byte
	copy(key[:], bytes.Repeat([]byte{0xbb}, 16))
	iv, err := NewMaskingIv(bytes.NewReader(bytes.Repeat([]byte{0x00}, 16)))
	if err != nil {
		t.Fatal(err)
	}
	header := []byte("0123456789012345678901234567890")

	masked, err := MaskHeader(key, iv, header)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(masked, header) {
		t.Fatal("masked header equals plaintext")
	}
	unmasked, err := MaskHeader(key, iv, masked)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(unmasked, header) {
		t.Fatal("unmasking did not recover original header bytes")
	}
}

// TestMaskStreamContinuityMatchesSingleShot confirms that unmasking a
// buffer in two XORKeyStream calls against one NewMaskStream instance
// (as unpacking must, since authdata-size isn't known until the static
// header is decoded) produces the same bytes as a single MaskHeader call
// over the whole buffer: the keystream must not restart between calls.
func TestMaskStreamContinuityMatchesSingleShot(t *testing.T) {
	var key [MaskingKeyByteLength]byte
	copy(key[:], bytes.Repeat([]byte{0xcc}, 16))
	iv, err := NewMaskingIv(bytes.NewReader(bytes.Repeat([]byte{0x01}, 16)))
	if err != nil {
		t.Fatal(err)
	}
	plaintext := bytes.Repeat([]byte{0x42}, StaticHeaderByteLength+40)

	wantMasked, err := MaskHeader(key, iv, plaintext)
	if err != nil {
		t.Fatal(err)
	}

	stream, err := NewMaskStream(key, iv)
	if err != nil {
		t.Fatal(err)
	}
	gotMasked := make([]byte, len(plaintext))
	stream.XORKeyStream(gotMasked[0:StaticHeaderByteLength], plaintext[0:StaticHeaderByteLength])
	stream.XORKeyStream(gotMasked[StaticHeaderByteLength:], plaintext[StaticHeaderByteLength:])

	if !bytes.Equal(gotMasked, wantMasked) {
		t.Fatal("two-step XORKeyStream over one stream diverged from single-shot MaskHeader")
	}
}

func TestAssociatedData(t *testing.T) {
	var iv MaskingIv
	copy(iv[:], bytes.Repeat([]byte{0x05}, 16))
	header := bytes.Repeat([]byte{0x06}, StaticHeaderByteLength)
	authdata := []byte{0x07, 0x08, 0x09}

	got := AssociatedData(iv, header, authdata)
	want := append(append(append([]byte{}, iv[:]...), header...), authdata...)
	if !bytes.Equal(got, want) {
		t.Fatalf("AssociatedData = %x, want %x", got, want)
	}
}
