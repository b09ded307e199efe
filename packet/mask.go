package packet

import (
	"crypto/aes"
	"crypto/cipher"
)

// MaskingKeyByteLength is the size of the AES-128-CTR masking key (the
// first 16 bytes of the destination node id).
const MaskingKeyByteLength = 16

// NewMaskStream returns a fresh AES-128-CTR keystream seeded with iv,
// keyed by maskingKey (dest-id[0:16]). Unpacking needs the stream object
// directly: the static header (23 bytes) and authdata are unmasked by
// two successive XORKeyStream calls against the same stream, since the
// header's length must be known before authdata-size can be read, but
// the keystream itself is one continuous run over both.
func NewMaskStream(maskingKey [MaskingKeyByteLength]byte, iv MaskingIv) (cipher.Stream, error) {
	block, err := aes.NewCipher(maskingKey[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewCTR(block, iv[:]), nil
}

// MaskHeader applies AES-128-CTR keyed by maskingKey (dest-id[0:16]) and
// seeded with iv over headerBytes (static-header ∥ authdata) in a single
// pass, returning the masked bytes. CTR is its own inverse, so the same
// call unmasks when the whole region is available at once (the packing
// side, which has no need to read authdata-size mid-stream).
func MaskHeader(maskingKey [MaskingKeyByteLength]byte, iv MaskingIv, headerBytes []byte) ([]byte, error) {
	stream, err := NewMaskStream(maskingKey, iv)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(headerBytes))
	stream.XORKeyStream(out, headerBytes)
	return out, nil
}
