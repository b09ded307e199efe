// Package unpacking is the inverse of packing: it splits a raw wire
// packet back into its authdata and, where present, its decrypted
// message bytes.
package unpacking

import (
	"github.com/eth2030/discv5/packet"
)

// UnpackOrdinaryMessage unpacks an ordinary-message packet addressed to
// selfID, decrypting its message under key. Returns the sender's node
// id and the decrypted message bytes (1-byte type tag ∥ RLP body).
func UnpackOrdinaryMessage(data []byte, selfID [32]byte, key [16]byte) (srcID [32]byte, messageBytes []byte, err error) {
	iv, header, authdataBytes, ciphertext, err := unpackHeader(data, selfID)
	if err != nil {
		recordUnpackFailure("header")
		return
	}
	if header.Flag != packet.FlagOrdinary {
		err = ErrUnexpectedFlag
		recordUnpackFailure("flag")
		return
	}
	authdata, err := packet.DecodeOrdinaryAuthdata(authdataBytes)
	if err != nil {
		recordUnpackFailure("authdata")
		return
	}
	aad := packet.AssociatedData(iv, header.Encode(), authdataBytes)
	messageBytes, err = decryptMessage(key, header.Nonce, aad, ciphertext)
	if err != nil {
		recordUnpackFailure("decrypt")
		return
	}
	srcID = authdata.SrcID
	recordUnpacked(header.Flag)
	return
}

// UnpackWhoareyou unpacks a whoareyou packet addressed to selfID. It
// carries no encrypted message.
func UnpackWhoareyou(data []byte, selfID [32]byte) (nonce packet.Nonce, authdata packet.WhoareyouAuthdata, err error) {
	_, header, authdataBytes, _, err := unpackHeader(data, selfID)
	if err != nil {
		recordUnpackFailure("header")
		return
	}
	if header.Flag != packet.FlagWhoareyou {
		err = ErrUnexpectedFlag
		recordUnpackFailure("flag")
		return
	}
	authdata, err = packet.DecodeWhoareyouAuthdata(authdataBytes)
	if err != nil {
		recordUnpackFailure("authdata")
		return
	}
	nonce = header.Nonce
	recordUnpacked(header.Flag)
	return
}

// UnpackHandshakeMessage unpacks a handshake packet addressed to
// selfID, decrypting its message under key. The returned
// packet.HandshakeAuthdata carries a non-nil Record when the sender
// embedded its ENR (see UnpackHandshakeMessageWithRecord for callers
// that want that distinction explicit).
func UnpackHandshakeMessage(data []byte, selfID [32]byte, key [16]byte) (authdata packet.HandshakeAuthdata, messageBytes []byte, err error) {
	iv, header, authdataBytes, ciphertext, err := unpackHeader(data, selfID)
	if err != nil {
		recordUnpackFailure("header")
		return
	}
	if header.Flag != packet.FlagHandshake {
		err = ErrUnexpectedFlag
		recordUnpackFailure("flag")
		return
	}
	authdata, err = packet.DecodeHandshakeAuthdata(authdataBytes)
	if err != nil {
		recordUnpackFailure("authdata")
		return
	}
	aad := packet.AssociatedData(iv, header.Encode(), authdataBytes)
	messageBytes, err = decryptMessage(key, header.Nonce, aad, ciphertext)
	if err != nil {
		recordUnpackFailure("decrypt")
		return
	}
	recordUnpacked(header.Flag)
	return
}

// UnpackHandshakeMessageWithRecord is UnpackHandshakeMessage for
// callers that only want to proceed when the sender embedded its ENR;
// recordRLP is nil, unchanged from authdata.Record, when none was sent.
func UnpackHandshakeMessageWithRecord(data []byte, selfID [32]byte, key [16]byte) (authdata packet.HandshakeAuthdata, recordRLP []byte, messageBytes []byte, err error) {
	authdata, messageBytes, err = UnpackHandshakeMessage(data, selfID, key)
	if err != nil {
		return
	}
	recordRLP = authdata.Record
	return
}
