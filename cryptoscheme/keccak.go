// Package cryptoscheme implements the discv5 "v4" identity scheme:
// secp256k1 keys, ECDSA signing, keccak256 node-id derivation, the
// non-standard compressed-point ECDH used by the handshake, and the
// handshake's HKDF session-key derivation and identity-proof signature.
package cryptoscheme

import "golang.org/x/crypto/sha3"

// Keccak256 hashes the concatenation of data with Keccak-256.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}
