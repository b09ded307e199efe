package rlp

import "errors"

// Decoding errors, named per discv5's own wire-format error taxonomy
// rather than go-ethereum's conventional ErrCanonSize/ErrCanonInt naming,
// since callers match on these sentinels across package boundaries (enr,
// messages) and the taxonomy is part of the protocol contract.
var (
	// ErrEmptyData is returned when decoding is attempted against a
	// zero-length input.
	ErrEmptyData = errors.New("rlp: empty data")

	// ErrItemDataWithInvalidByteLength is returned when an item's declared
	// length disagrees with the number of bytes actually available.
	ErrItemDataWithInvalidByteLength = errors.New("rlp: item data length disagrees with header")

	// ErrSingleByteEncodedAsTwo is returned when a value in [0x00, 0x7f] is
	// encoded as a length-1 string (0x81 0xNN) instead of self-encoding.
	ErrSingleByteEncodedAsTwo = errors.New("rlp: single byte value encoded as a two-byte string")

	// ErrShortStringEncodedAsLong is returned when a string of 55 bytes or
	// fewer uses the long-form (0xb8+) header.
	ErrShortStringEncodedAsLong = errors.New("rlp: short string encoded in long form")

	// ErrShortListEncodedAsLong is returned when a list whose payload is 55
	// bytes or fewer uses the long-form (0xf8+) header.
	ErrShortListEncodedAsLong = errors.New("rlp: short list encoded in long form")

	// ErrItemTypeDoesNotMatch is returned when the caller requests a string
	// where a list is present, or vice versa.
	ErrItemTypeDoesNotMatch = errors.New("rlp: item type does not match requested kind")

	// ErrItemPayloadByteLengthTooLarge is returned when an item's payload is
	// wider than the destination type can hold (e.g. a >8-byte uint64).
	ErrItemPayloadByteLengthTooLarge = errors.New("rlp: item payload too large for destination type")

	// ErrUintDecodingFoundLeftPadding is returned when an integer (including
	// a length-of-length field) has a leading zero byte.
	ErrUintDecodingFoundLeftPadding = errors.New("rlp: integer has a leading zero byte")

	// ErrListDecodingNumberDoesNotMatch is returned when a list has the
	// wrong number of items for the destination struct/tuple.
	ErrListDecodingNumberDoesNotMatch = errors.New("rlp: list arity does not match destination")

	// ErrListDecodingIterationEnded is returned when an item is requested
	// past the end of the enclosing list.
	ErrListDecodingIterationEnded = errors.New("rlp: list iteration ended")

	// ErrInvalidByteRepresentaion is returned for values whose byte pattern
	// has no valid interpretation for the destination type: in this
	// package, a bool payload other than empty, 0x00 or 0x01.
	ErrInvalidByteRepresentaion = errors.New("rlp: invalid byte representation")

	// errUnsupportedKind is an internal encode-side error for Go types with
	// no RLP mapping (channels, funcs, complex numbers, ...). Not part of
	// the wire-format error taxonomy since encode operates on Go values the
	// caller controls, not untrusted input.
	errUnsupportedKind = errors.New("rlp: unsupported value kind for encoding")
)
