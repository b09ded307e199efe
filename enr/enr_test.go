package enr

import (
	"bytes"
	"math"
	"net"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/eth2030/discv5/cryptoscheme"
	"github.com/eth2030/discv5/rlp"
)

func mustPrivateKey(t *testing.T) *cryptoscheme.PrivateKey {
	t.Helper()
	priv, err := cryptoscheme.GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	return priv
}

func TestBuilderSignAndBuildRoundTrip(t *testing.T) {
	priv := mustPrivateKey(t)
	record, err := NewBuilder().
		WithIP4(net.ParseIP("127.0.0.1")).
		WithUDP4(30303).
		SignAndBuild(priv)
	if err != nil {
		t.Fatal(err)
	}
	if record.Seq() != 1 {
		t.Fatalf("seq = %d, want 1", record.Seq())
	}
	if !record.IP4().Equal(net.ParseIP("127.0.0.1")) {
		t.Fatalf("ip4 = %v", record.IP4())
	}
	port, ok := record.UDP4()
	if !ok || port != 30303 {
		t.Fatalf("udp4 = %d, %v", port, ok)
	}

	encoded, err := record.ToRLPEncoded()
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := FromRLPEncoded(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Seq() != record.Seq() || !decoded.IP4().Equal(record.IP4()) {
		t.Fatal("decoded record fields do not match original")
	}
}

// TestENRExampleRecordTextualRoundTrip checks that a seq=1 record with
// ip=127.0.0.1, udp=30303 round-trips through its
// textual form and re-verifies. It checks structural/semantic equality
// rather than a literal byte match against the published example: the
// signature here comes from RFC 6979 deterministic signing, and its bytes
// are not compared with the example's.
func TestENRExampleRecordTextualRoundTrip(t *testing.T) {
	keyBytes := common.FromHex("0xb71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291")
	priv, err := cryptoscheme.NewPrivateKeyFromBytes(keyBytes)
	if err != nil {
		t.Fatal(err)
	}

	record, err := NewBuilder().
		WithIP4(net.ParseIP("127.0.0.1")).
		WithUDP4(30303).
		SignAndBuild(priv)
	if err != nil {
		t.Fatal(err)
	}

	text, err := record.ToTextualForm()
	if err != nil {
		t.Fatal(err)
	}
	if text[:4] != TextualFormPrefix {
		t.Fatalf("textual form missing prefix: %s", text)
	}
	if len(text) > MaxTextualFormByteLength {
		t.Fatalf("textual form too long: %d", len(text))
	}

	decoded, err := FromTextualForm(text)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Seq() != 1 {
		t.Fatalf("seq = %d, want 1", decoded.Seq())
	}
	if !decoded.IP4().Equal(net.ParseIP("127.0.0.1")) {
		t.Fatalf("ip4 = %v", decoded.IP4())
	}
	port, ok := decoded.UDP4()
	if !ok || port != 30303 {
		t.Fatalf("udp4 = %d, %v", port, ok)
	}
	if !bytes.Equal(decoded.PublicKeyBytes(), priv.PublicKey().Bytes()) {
		t.Fatal("public key did not round-trip")
	}
}

// TestENRResequence checks that publishing unchanged
// content reuses seq; publishing changed content advances seq by
// exactly 1; publishing changed content at seq=MaxUint64 overflows.
func TestENRResequence(t *testing.T) {
	priv := mustPrivateKey(t)
	pr := NewPublishableRecord()
	pr.UpdateIP4(net.ParseIP("127.0.0.1"))

	r1, err := pr.Publish(priv)
	if err != nil {
		t.Fatal(err)
	}
	if r1.Seq() != 1 {
		t.Fatalf("seq after first publish = %d, want 1", r1.Seq())
	}

	pr.UpdateIP4(net.ParseIP("127.0.0.1")) // unchanged value
	r2, err := pr.Publish(priv)
	if err != nil {
		t.Fatal(err)
	}
	if r2.Seq() != 1 {
		t.Fatalf("seq after unchanged publish = %d, want 1", r2.Seq())
	}

	pr.UpdateIP4(net.ParseIP("192.168.0.1"))
	r3, err := pr.Publish(priv)
	if err != nil {
		t.Fatal(err)
	}
	if r3.Seq() != 2 {
		t.Fatalf("seq after changed publish = %d, want 2", r3.Seq())
	}

	pr.content.seq = math.MaxUint64
	pr.lastPublished.seq = math.MaxUint64
	pr.UpdateIP4(net.ParseIP("10.0.0.1"))
	if _, err := pr.Publish(priv); err != ErrSeqOverflow {
		t.Fatalf("err = %v, want ErrSeqOverflow", err)
	}
}

func TestENRDecodeRejectsUnsortedKeys(t *testing.T) {
	c := newContent(cryptoscheme.ID)
	c.pairs["zzz"] = encodeBytesItem([]byte("1"))
	c.pairs["aaa"] = encodeBytesItem([]byte("2"))
	priv := mustPrivateKey(t)
	c.pairs[KeySecp256k1] = encodeBytesItem(priv.PublicKey().Bytes())

	// Build the encoded record with keys forced into insertion order
	// (unsorted) rather than through content.encode, which always sorts.
	payload := encodeUintItem(c.seq)
	for _, k := range []string{KeyID, "zzz", "aaa", KeySecp256k1} {
		payload = append(payload, encodeStringItem(k)...)
		payload = append(payload, c.pairs[k]...)
	}
	hash := cryptoscheme.Keccak256(rlp.WrapList(payload))
	sig, err := priv.Sign(hash)
	if err != nil {
		t.Fatal(err)
	}
	sigPayload := encodeBytesItem(sig)
	recordPayload := append(append([]byte{}, sigPayload...), payload...)
	encoded := rlp.WrapList(recordPayload)

	if _, err := FromRLPEncoded(encoded); err != ErrKeysNotSortedOrNotUnique {
		t.Fatalf("err = %v, want ErrKeysNotSortedOrNotUnique", err)
	}
}

func TestENRDecodeRejectsBadPublicKeyLength(t *testing.T) {
	priv := mustPrivateKey(t)
	record, err := NewBuilder().SignAndBuild(priv)
	if err != nil {
		t.Fatal(err)
	}
	record.content.pairs[KeySecp256k1] = encodeBytesItem([]byte{0x02, 0x03})
	encoded, err := record.ToRLPEncoded()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := FromRLPEncoded(encoded); err != ErrPublicKeyDataWithInvalidByteLength {
		t.Fatalf("err = %v, want ErrPublicKeyDataWithInvalidByteLength", err)
	}
}

func TestFromTextualFormRejectsPadding(t *testing.T) {
	if _, err := FromTextualForm("enr:AAAA="); err != ErrInvalidTextualForm {
		t.Fatalf("err = %v, want ErrInvalidTextualForm", err)
	}
}

func TestFromTextualFormRejectsTrailingBits(t *testing.T) {
	// "AB" decodes a 2-char base64url group to one byte, but 'B' (index 1)
	// sets unused low bits in that group non-zero: a strict decoder must
	// reject this rather than silently truncate them away.
	if _, err := FromTextualForm("enr:AB"); err != ErrInvalidTextualForm {
		t.Fatalf("err = %v, want ErrInvalidTextualForm", err)
	}
}

func TestFromTextualFormRejectsMissingPrefix(t *testing.T) {
	if _, err := FromTextualForm("AAAA"); err != ErrMissingTextualFormPrefix {
		t.Fatalf("err = %v, want ErrMissingTextualFormPrefix", err)
	}
}
