package unpacking

import (
	"github.com/eth2030/discv5/packet"
)

// unpackHeader splits a raw wire packet addressed to the local node
// (selfID) into its masking-iv, decoded static header, raw authdata,
// and remaining ciphertext.
//
// The static header and authdata share one continuous AES-128-CTR
// keystream, but authdata's length isn't known until the header is
// decoded — so the stream is consumed in two XORKeyStream calls against
// the same packet.NewMaskStream instance rather than two independent
// single-shot unmasks.
func unpackHeader(data []byte, selfID [32]byte) (iv packet.MaskingIv, header packet.StaticHeader, authdata []byte, ciphertext []byte, err error) {
	if len(data) < packet.MinPacketByteLength {
		err = packet.ErrPacketTooSmall
		return
	}
	if len(data) > packet.MaxPacketByteLength {
		err = packet.ErrPacketTooLarge
		return
	}

	copy(iv[:], data[0:packet.MaskingIvByteLength])
	rest := data[packet.MaskingIvByteLength:]
	if len(rest) < packet.StaticHeaderByteLength {
		err = packet.ErrInvalidAuthDataBytes
		return
	}

	var maskingKey [packet.MaskingKeyByteLength]byte
	copy(maskingKey[:], selfID[:packet.MaskingKeyByteLength])
	stream, streamErr := packet.NewMaskStream(maskingKey, iv)
	if streamErr != nil {
		err = streamErr
		return
	}

	headerBytes := make([]byte, packet.StaticHeaderByteLength)
	stream.XORKeyStream(headerBytes, rest[0:packet.StaticHeaderByteLength])

	header, err = packet.DecodeStaticHeader(headerBytes)
	if err != nil {
		return
	}

	rest = rest[packet.StaticHeaderByteLength:]
	if len(rest) < int(header.AuthdataSize) {
		err = packet.ErrInvalidAuthDataBytes
		return
	}

	authdata = make([]byte, header.AuthdataSize)
	stream.XORKeyStream(authdata, rest[0:header.AuthdataSize])

	ciphertext = rest[header.AuthdataSize:]
	return
}
