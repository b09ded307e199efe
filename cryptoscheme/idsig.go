package cryptoscheme

import "crypto/sha256"

// IDSignatureTextPrefix is the fixed preimage prefix for the handshake's
// identity-proof signature.
const IDSignatureTextPrefix = "discovery v5 identity proof"

// idSignaturePreimage builds SHA-256("discovery v5 identity proof" ∥
// challenge-data ∥ eph-pubkey-bytes ∥ node-id-B) and hashes it. Distinct
// from Keccak256 (used for ENR content signing): the handshake identity
// proof is hashed with SHA-256.
func idSignaturePreimage(challengeData, ephPubkeyBytes []byte, nodeIDB [NodeIDByteLength]byte) [32]byte {
	h := sha256.New()
	h.Write([]byte(IDSignatureTextPrefix))
	h.Write(challengeData)
	h.Write(ephPubkeyBytes)
	h.Write(nodeIDB[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// BuildIDSignature signs the handshake identity-proof preimage with the
// initiator's static private key, binding the ephemeral public key to the
// challenge-data of the preceding whoareyou packet.
func BuildIDSignature(staticPriv *PrivateKey, challengeData, ephPubkeyBytes []byte, nodeIDB [NodeIDByteLength]byte) ([]byte, error) {
	hash := idSignaturePreimage(challengeData, ephPubkeyBytes, nodeIDB)
	return staticPriv.Sign(hash[:])
}

// VerifyIDSignature reconstructs the identity-proof preimage and verifies
// sig against the claimed static public key of the initiator. This is the
// receiver-side counterpart: the receiver reconstructs the same
// pre-image and verifies it.
func VerifyIDSignature(staticPub *PublicKey, challengeData, ephPubkeyBytes []byte, nodeIDB [NodeIDByteLength]byte, sig []byte) bool {
	hash := idSignaturePreimage(challengeData, ephPubkeyBytes, nodeIDB)
	return Verify(staticPub, hash[:], sig)
}
