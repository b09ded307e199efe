package messages

import "errors"

var (
	ErrEmptyMessage                  = errors.New("messages: wire message is empty")
	ErrInvalidMessageType            = errors.New("messages: unrecognized message type tag")
	ErrRequestIDTooLong              = errors.New("messages: request id exceeds 8 bytes")
	ErrDistanceOutOfRange            = errors.New("messages: findnode distance exceeds 256")
	ErrInvalidByteRepresentaion      = errors.New("messages: recipient ip is neither 4 nor 16 bytes")
	ErrDecodingFailedForInvalidInput = errors.New("messages: decoding failed for invalid input")
)
