// Package packet implements discv5's packet framing: the fixed static
// header, the three authdata shapes (ordinary, whoareyou, handshake), and
// AES-CTR header masking. It holds no session state — packing and
// unpacking the encrypted message body live in the sibling packing/
// unpacking packages, which depend on this one for the header/authdata
// layout.
package packet

import "io"

// MaskingIv is the 16 random bytes that seed AES-CTR masking of a
// packet's header.
type MaskingIv [16]byte

// NewMaskingIv draws a fresh masking-iv from rand.
func NewMaskingIv(rand io.Reader) (MaskingIv, error) {
	var iv MaskingIv
	if _, err := io.ReadFull(rand, iv[:]); err != nil {
		return MaskingIv{}, err
	}
	return iv, nil
}

// Nonce is the 12-byte packet nonce carried in the static header and used
// as the AES-128-GCM nonce for message encryption.
type Nonce [12]byte

// NewNonce draws a fresh packet nonce from rand.
func NewNonce(rand io.Reader) (Nonce, error) {
	var n Nonce
	if _, err := io.ReadFull(rand, n[:]); err != nil {
		return Nonce{}, err
	}
	return n, nil
}

// IdNonce is the 16-byte nonce a whoareyou packet poses as its challenge,
// bound into the handshake's identity-proof signature.
type IdNonce [16]byte

// NewIdNonce draws a fresh id-nonce from rand.
func NewIdNonce(rand io.Reader) (IdNonce, error) {
	var n IdNonce
	if _, err := io.ReadFull(rand, n[:]); err != nil {
		return IdNonce{}, err
	}
	return n, nil
}
