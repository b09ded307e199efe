package packet

// Packet size bounds.
const (
	MinPacketByteLength = 63
	MaxPacketByteLength = 1280
)

// MaskingIvByteLength is the size of the envelope's leading masking-iv.
const MaskingIvByteLength = 16

// GCMTagByteLength is the size of the AES-128-GCM authentication tag
// appended to every ciphertext.
const GCMTagByteLength = 16

// MinCiphertextByteLength is the minimum encrypted-message length for a
// packet that carries one: a 1-byte message-type tag plus the GCM tag.
// The RLP message body is not counted, so a ciphertext of this length
// decrypts to the type tag alone.
const MinCiphertextByteLength = 1 + GCMTagByteLength

// AssociatedData builds the AES-128-GCM AAD: masking-iv ∥ (unmasked)
// static-header ∥ authdata.
func AssociatedData(iv MaskingIv, headerBytes, authdata []byte) []byte {
	aad := make([]byte, 0, len(iv)+len(headerBytes)+len(authdata))
	aad = append(aad, iv[:]...)
	aad = append(aad, headerBytes...)
	aad = append(aad, authdata...)
	return aad
}
