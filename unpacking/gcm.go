package unpacking

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/eth2030/discv5/packet"
)

// decryptMessage opens ciphertext (as sealed by packing.encryptMessage)
// under key and the packet's 12-byte nonce, checking aad.
func decryptMessage(key [16]byte, nonce packet.Nonce, aad, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < packet.MinCiphertextByteLength {
		return nil, ErrInvalidMessageByteLength
	}
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	plaintext, err := gcm.Open(nil, nonce[:], ciphertext, aad)
	if err != nil {
		return nil, ErrMessageDecryptingFailed
	}
	return plaintext, nil
}
