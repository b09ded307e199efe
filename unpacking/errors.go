package unpacking

import "errors"

var (
	// ErrMessageDecryptingFailed is returned when AES-128-GCM
	// authentication fails.
	ErrMessageDecryptingFailed = errors.New("unpacking: message decryption failed")
	// ErrInvalidMessageByteLength is returned when the ciphertext region
	// is shorter than a 1-byte type tag plus the GCM tag.
	ErrInvalidMessageByteLength = errors.New("unpacking: ciphertext shorter than the minimum message size")
	// ErrUnexpectedFlag is returned when a packet's static-header flag
	// doesn't match the shape the caller asked to unpack.
	ErrUnexpectedFlag = errors.New("unpacking: static header flag does not match the requested packet shape")
)
