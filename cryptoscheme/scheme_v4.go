package cryptoscheme

import (
	"crypto/ecdsa"
	"errors"

	gethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Scheme v4 fixed sizes.
const (
	PublicKeyByteLength  = 33 // SEC1-compressed secp256k1 point.
	PrivateKeyByteLength = 32 // secp256k1 scalar.
	SignatureByteLength  = 64 // r || s, recovery id dropped.
	NodeIDByteLength     = 32 // keccak256 output.
)

// ID is the identity scheme name stored under the ENR "id" key.
const ID = "v4"

// PublicKeyKey is the ENR key holding the scheme's public key entry.
const PublicKeyKey = "secp256k1"

var (
	// ErrInvalidPrivateKey is returned when private key bytes do not
	// represent a valid secp256k1 scalar.
	ErrInvalidPrivateKey = errors.New("cryptoscheme: invalid private key")
	// ErrInvalidPublicKey is returned when public key bytes do not
	// represent a valid compressed secp256k1 point.
	ErrInvalidPublicKey = errors.New("cryptoscheme: invalid public key")
	// ErrInvalidSignature describes signature bytes that are not exactly
	// SignatureByteLength or that fail verification. No function in this
	// package returns it: Verify reports such a signature by returning
	// false.
	ErrInvalidSignature = errors.New("cryptoscheme: invalid signature")
)

// PrivateKey is a scheme-v4 secp256k1 private key.
type PrivateKey struct {
	key *ecdsa.PrivateKey
}

// PublicKey is a scheme-v4 secp256k1 public key.
type PublicKey struct {
	key *ecdsa.PublicKey
}

// NewPrivateKeyFromBytes parses a 32-byte scalar into a PrivateKey.
func NewPrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeyByteLength {
		return nil, ErrInvalidPrivateKey
	}
	key, err := gethcrypto.ToECDSA(b)
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}
	return &PrivateKey{key: key}, nil
}

// GeneratePrivateKey generates a new scheme-v4 private key using the
// package's CSPRNG-backed curve generator.
func GeneratePrivateKey() (*PrivateKey, error) {
	key, err := gethcrypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// Bytes returns the 32-byte scalar of the private key.
func (p *PrivateKey) Bytes() []byte {
	return gethcrypto.FromECDSA(p.key)
}

// PublicKey returns the public key corresponding to p.
func (p *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{key: &p.key.PublicKey}
}

// NewPublicKeyFromBytes parses a 33-byte SEC1-compressed point.
func NewPublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeyByteLength {
		return nil, ErrInvalidPublicKey
	}
	key, err := gethcrypto.DecompressPubkey(b)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}
	return &PublicKey{key: key}, nil
}

// Bytes returns the 33-byte SEC1-compressed form of the public key.
func (p *PublicKey) Bytes() []byte {
	return gethcrypto.CompressPubkey(p.key)
}

// NodeID derives the 32-byte node id: keccak256 of the uncompressed
// public key with the 0x04 prefix stripped (X || Y).
func (p *PublicKey) NodeID() [NodeIDByteLength]byte {
	uncompressed := gethcrypto.FromECDSAPub(p.key) // 65 bytes: 0x04 || X || Y
	h := Keccak256(uncompressed[1:])
	var id [NodeIDByteLength]byte
	copy(id[:], h)
	return id
}

// Sign produces a 64-byte r||s signature over a 32-byte hash (ECDSA,
// recovery id dropped). go-ethereum's crypto.Sign uses
// RFC 6979 deterministic nonce generation; the recovery byte it appends is
// dropped, matching the wire format's fixed 64-byte signature.
func (p *PrivateKey) Sign(hash []byte) ([]byte, error) {
	sig, err := gethcrypto.Sign(hash, p.key)
	if err != nil {
		return nil, err
	}
	return sig[:SignatureByteLength], nil
}

// Verify checks a 64-byte r||s signature over hash against pub.
func Verify(pub *PublicKey, hash []byte, sig []byte) bool {
	if len(sig) != SignatureByteLength {
		return false
	}
	return gethcrypto.VerifySignature(pub.Bytes(), hash, sig)
}
