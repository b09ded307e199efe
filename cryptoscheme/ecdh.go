package cryptoscheme

import (
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ECDH computes the discv5 handshake's non-standard shared secret: the
// full SEC1-compressed point destPub * ephPriv (prefix byte 0x02/0x03 per
// Y parity, followed by the X coordinate), not a plain X-only ECDH value.
// go-ethereum's crypto package exposes only sign/verify/recover, not raw
// point arithmetic, so this uses decred's secp256k1 library directly
// (already pulled in transitively by go-ethereum).
func ECDH(destPub *PublicKey, ephPriv *PrivateKey) ([]byte, error) {
	privKey := secp256k1.PrivKeyFromBytes(ephPriv.Bytes())
	defer privKey.Zero()

	pubKey, err := secp256k1.ParsePubKey(destPub.Bytes())
	if err != nil {
		return nil, ErrInvalidPublicKey
	}

	var point, result secp256k1.JacobianPoint
	pubKey.AsJacobian(&point)
	secp256k1.ScalarMultNonConst(&privKey.Key, &point, &result)
	result.ToAffine()

	shared := secp256k1.NewPublicKey(&result.X, &result.Y)
	return shared.SerializeCompressed(), nil
}
