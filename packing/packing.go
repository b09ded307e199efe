// Package packing assembles discv5's three packet flavors: ordinary
// message, whoareyou, and handshake message. It has no session-layer
// awareness of its own — callers supply the session key, nonce, and
// peer ids appropriate to whichever direction they're packing for.
package packing

import (
	"io"

	"github.com/eth2030/discv5/packet"
)

func maskingKeyFromDestID(destID [32]byte) [packet.MaskingKeyByteLength]byte {
	var key [packet.MaskingKeyByteLength]byte
	copy(key[:], destID[:packet.MaskingKeyByteLength])
	return key
}

func assemble(rand io.Reader, destID [32]byte, flag packet.Flag, nonce packet.Nonce, authdata []byte, ciphertext []byte) ([]byte, error) {
	iv, err := packet.NewMaskingIv(rand)
	if err != nil {
		return nil, err
	}
	header := packet.StaticHeader{Flag: flag, Nonce: nonce, AuthdataSize: uint16(len(authdata))}
	headerBytes := header.Encode()
	unmasked := append(append([]byte{}, headerBytes...), authdata...)

	maskedHeader, err := packet.MaskHeader(maskingKeyFromDestID(destID), iv, unmasked)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, packet.MaskingIvByteLength+len(maskedHeader)+len(ciphertext))
	out = append(out, iv[:]...)
	out = append(out, maskedHeader...)
	out = append(out, ciphertext...)
	if len(out) > packet.MaxPacketByteLength {
		return nil, ErrPacketTooLarge
	}
	recordPacked(flag)
	return out, nil
}

// encryptAndAssemble builds AAD from the yet-unmasked header ∥ authdata,
// seals messageBytes under key, and assembles the final packet.
func encryptAndAssemble(rand io.Reader, destID [32]byte, flag packet.Flag, nonce packet.Nonce, authdata []byte, key [16]byte, messageBytes []byte) ([]byte, error) {
	iv, err := packet.NewMaskingIv(rand)
	if err != nil {
		return nil, err
	}
	header := packet.StaticHeader{Flag: flag, Nonce: nonce, AuthdataSize: uint16(len(authdata))}
	headerBytes := header.Encode()

	aad := packet.AssociatedData(iv, headerBytes, authdata)
	ciphertext, err := encryptMessage(key, nonce, aad, messageBytes)
	if err != nil {
		return nil, err
	}

	unmasked := append(append([]byte{}, headerBytes...), authdata...)
	maskedHeader, err := packet.MaskHeader(maskingKeyFromDestID(destID), iv, unmasked)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, packet.MaskingIvByteLength+len(maskedHeader)+len(ciphertext))
	out = append(out, iv[:]...)
	out = append(out, maskedHeader...)
	out = append(out, ciphertext...)
	if len(out) > packet.MaxPacketByteLength {
		return nil, ErrPacketTooLarge
	}
	recordPacked(flag)
	return out, nil
}

// PackOrdinaryMessage builds an ordinary-message packet: authdata is
// just srcID, and messageBytes (1-byte type tag ∥ RLP body, e.g. from
// messages.Encode) is AES-128-GCM-sealed under key.
func PackOrdinaryMessage(rand io.Reader, destID, srcID [32]byte, nonce packet.Nonce, key [16]byte, messageBytes []byte) ([]byte, error) {
	authdata := packet.OrdinaryAuthdata{SrcID: srcID}.Encode()
	return encryptAndAssemble(rand, destID, packet.FlagOrdinary, nonce, authdata, key, messageBytes)
}

// PackWhoareyou builds a whoareyou packet. It carries no encrypted
// message: the ciphertext region is empty.
func PackWhoareyou(rand io.Reader, destID [32]byte, nonce packet.Nonce, idNonce packet.IdNonce, enrSeq uint64) ([]byte, error) {
	authdata := packet.WhoareyouAuthdata{IDNonce: idNonce, EnrSeq: enrSeq}.Encode()
	return assemble(rand, destID, packet.FlagWhoareyou, nonce, authdata, nil)
}

// PackHandshakeMessage builds a handshake packet without an embedded
// ENR: authdata is srcID ∥ idSignature ∥ ephPubkey (sig-size/eph-size
// prefixed), and messageBytes is sealed under key exactly as in
// PackOrdinaryMessage.
func PackHandshakeMessage(rand io.Reader, destID, srcID [32]byte, nonce packet.Nonce, idSignature, ephPubkey []byte, key [16]byte, messageBytes []byte) ([]byte, error) {
	authdata := packet.HandshakeAuthdata{SrcID: srcID, IDSignature: idSignature, EphPubkey: ephPubkey}.Encode()
	return encryptAndAssemble(rand, destID, packet.FlagHandshake, nonce, authdata, key, messageBytes)
}

// PackHandshakeMessageWithRecord is PackHandshakeMessage plus an
// embedded ENR: recordRLP is the sender's own record, already
// RLP-encoded (e.g. via (*enr.Record).ToRLPEncoded), appended verbatim
// to the handshake authdata so the recipient can adopt it without a
// round trip.
func PackHandshakeMessageWithRecord(rand io.Reader, destID, srcID [32]byte, nonce packet.Nonce, idSignature, ephPubkey, recordRLP []byte, key [16]byte, messageBytes []byte) ([]byte, error) {
	authdata := packet.HandshakeAuthdata{SrcID: srcID, IDSignature: idSignature, EphPubkey: ephPubkey, Record: recordRLP}.Encode()
	return encryptAndAssemble(rand, destID, packet.FlagHandshake, nonce, authdata, key, messageBytes)
}
