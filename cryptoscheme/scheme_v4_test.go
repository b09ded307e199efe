package cryptoscheme

import (
	"bytes"
	"testing"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	priv, err := GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	hash := Keccak256([]byte("hello discv5"))
	sig, err := priv.Sign(hash)
	if err != nil {
		t.Fatal(err)
	}
	if len(sig) != SignatureByteLength {
		t.Fatalf("signature length = %d, want %d", len(sig), SignatureByteLength)
	}
	if !Verify(priv.PublicKey(), hash, sig) {
		t.Fatal("signature failed to verify")
	}
}

func TestPublicKeyRoundTripThroughBytes(t *testing.T) {
	priv, err := GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	pubBytes := priv.PublicKey().Bytes()
	if len(pubBytes) != PublicKeyByteLength {
		t.Fatalf("public key length = %d, want %d", len(pubBytes), PublicKeyByteLength)
	}
	pub2, err := NewPublicKeyFromBytes(pubBytes)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pub2.Bytes(), pubBytes) {
		t.Fatal("public key did not round-trip")
	}
}

func TestNodeIDDeterministic(t *testing.T) {
	priv, err := GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	id1 := priv.PublicKey().NodeID()
	id2 := priv.PublicKey().NodeID()
	if id1 != id2 {
		t.Fatal("NodeID is not deterministic")
	}
}

func TestECDHAgreement(t *testing.T) {
	a, err := GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	b, err := GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	// ECDH(b.pub, a.priv) must equal ECDH(a.pub, b.priv): both are b.pub *
	// a.priv scalar-multiplied on the same curve point, computed from
	// either side.
	sharedFromA, err := ECDH(b.PublicKey(), a)
	if err != nil {
		t.Fatal(err)
	}
	sharedFromB, err := ECDH(a.PublicKey(), b)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(sharedFromA, sharedFromB) {
		t.Fatalf("ECDH shared secrets disagree: %x vs %x", sharedFromA, sharedFromB)
	}
	if len(sharedFromA) != PublicKeyByteLength {
		t.Fatalf("shared secret length = %d, want %d", len(sharedFromA), PublicKeyByteLength)
	}
}

func TestDeriveSessionKeysDeterministic(t *testing.T) {
	ikm := Keccak256([]byte("shared secret"))
	challengeData := []byte("challenge-data-bytes")
	var nodeA, nodeB [NodeIDByteLength]byte
	nodeA[0] = 0xaa
	nodeB[0] = 0xbb

	k1, err := DeriveSessionKeys(ikm, challengeData, nodeA, nodeB)
	if err != nil {
		t.Fatal(err)
	}
	k2, err := DeriveSessionKeys(ikm, challengeData, nodeA, nodeB)
	if err != nil {
		t.Fatal(err)
	}
	if k1 != k2 {
		t.Fatal("DeriveSessionKeys is not deterministic for identical inputs")
	}
	if k1.InitiatorKey == k1.RecipientKey {
		t.Fatal("initiator and recipient keys must differ")
	}
}

func TestBuildVerifyIDSignature(t *testing.T) {
	staticPriv, err := GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	challengeData := []byte("challenge-data-bytes")
	ephPub := []byte{0x02, 0x01, 0x02, 0x03}
	var nodeB [NodeIDByteLength]byte
	nodeB[0] = 0xbb

	sig, err := BuildIDSignature(staticPriv, challengeData, ephPub, nodeB)
	if err != nil {
		t.Fatal(err)
	}
	if !VerifyIDSignature(staticPriv.PublicKey(), challengeData, ephPub, nodeB, sig) {
		t.Fatal("identity-proof signature failed to verify")
	}
}
