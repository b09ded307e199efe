package cryptoscheme

import (
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// SessionKeyInfoPrefix is the HKDF info string prefix for handshake
// session-key derivation.
const SessionKeyInfoPrefix = "discovery v5 key agreement"

// SessionKeyByteLength is the length of each derived AES-128 session key.
const SessionKeyByteLength = 16

// SessionKeys holds the pair of AES-128 keys derived for a handshake.
type SessionKeys struct {
	InitiatorKey [SessionKeyByteLength]byte
	RecipientKey [SessionKeyByteLength]byte
}

// ErrSessionKeyDerivationFailed is returned in place of an underlying HKDF
// read failure (the cause is not wrapped); such a failure should be
// unreachable given the fixed, valid output length requested.
var ErrSessionKeyDerivationFailed = errors.New("cryptoscheme: session key derivation failed")

// DeriveSessionKeys derives session keys given the ECDH shared secret
// (IKM), the handshake's challenge-data (used as HKDF salt), and both
// peers' node ids (used in the HKDF info string), derive the two
// AES-128 session keys.
//
// IKM is the 33-byte output of ECDH; nodeIDA is the initiator's id,
// nodeIDB is the recipient's id, matching the direction the handshake
// models (A initiates to B).
func DeriveSessionKeys(ikm []byte, challengeData []byte, nodeIDA, nodeIDB [NodeIDByteLength]byte) (SessionKeys, error) {
	info := make([]byte, 0, len(SessionKeyInfoPrefix)+2*NodeIDByteLength)
	info = append(info, SessionKeyInfoPrefix...)
	info = append(info, nodeIDA[:]...)
	info = append(info, nodeIDB[:]...)

	reader := hkdf.New(sha256.New, ikm, challengeData, info)
	out := make([]byte, 2*SessionKeyByteLength)
	if _, err := io.ReadFull(reader, out); err != nil {
		return SessionKeys{}, ErrSessionKeyDerivationFailed
	}

	var keys SessionKeys
	copy(keys.InitiatorKey[:], out[:SessionKeyByteLength])
	copy(keys.RecipientKey[:], out[SessionKeyByteLength:])
	return keys, nil
}
