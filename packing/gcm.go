package packing

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/eth2030/discv5/packet"
)

// encryptMessage seals plaintext (1-byte type tag ∥ RLP message body)
// under key and the packet's 12-byte nonce, with aad bound in.
func encryptMessage(key [16]byte, nonce packet.Nonce, aad, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return gcm.Seal(nil, nonce[:], plaintext, aad), nil
}
