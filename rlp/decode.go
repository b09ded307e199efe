package rlp

import (
	"bytes"
	"io"
	"math/big"
	"reflect"
)

// Kind represents the shape of an RLP value.
type Kind int

const (
	Byte   Kind = iota // a single byte in [0x00, 0x7f], self-encoded.
	String             // an RLP string (including the empty string).
	List               // an RLP list.
)

// Decode reads one RLP-encoded value from r and stores it in val, which
// must be a non-nil pointer.
func Decode(r io.Reader, val interface{}) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return DecodeBytes(data, val)
}

// DecodeBytes decodes an RLP-encoded byte slice into val, which must be a
// non-nil pointer. Trailing bytes beyond the first complete item are
// rejected.
func DecodeBytes(b []byte, val interface{}) error {
	if len(b) == 0 {
		return ErrEmptyData
	}
	s := newByteStream(b)
	v := reflect.ValueOf(val)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return ErrItemTypeDoesNotMatch
	}
	if err := s.decodeInto(v.Elem()); err != nil {
		return err
	}
	if s.pos != len(s.data) {
		return ErrItemDataWithInvalidByteLength
	}
	return nil
}

// DecodeHeader parses the header of the first RLP item in data without
// decoding its payload. It returns the item's kind, the number of header
// bytes consumed (0 for a self-encoded byte), and the payload length.
func DecodeHeader(data []byte) (kind Kind, headerLen int, payloadLen int, err error) {
	if len(data) == 0 {
		return 0, 0, 0, ErrEmptyData
	}
	s := newByteStream(data)
	k, payload, total, err := s.readItem()
	if err != nil {
		return 0, 0, 0, err
	}
	return k, total - len(payload), len(payload), nil
}

// DecodePayload decodes the raw content bytes of a single item of the
// given kind (as produced by DecodeHeader's payload slice, or by a
// ListIterator) into val.
func DecodePayload(kind Kind, payload []byte, val interface{}) error {
	var synthetic []byte
	switch kind {
	case Byte:
		if len(payload) != 1 {
			return ErrItemDataWithInvalidByteLength
		}
		synthetic = payload
	case String:
		synthetic = encodeString(payload)
	case List:
		synthetic = wrapList(payload)
	default:
		return ErrItemTypeDoesNotMatch
	}
	return DecodeBytes(synthetic, val)
}

// ListIterator iterates the items of an already-opened RLP list, given the
// list's raw payload bytes (the content between the list header and its
// end).
type ListIterator struct {
	s *Stream
}

// NewListIterator creates a ListIterator over a list's content bytes.
func NewListIterator(listPayload []byte) *ListIterator {
	return &ListIterator{s: &Stream{data: listPayload, pos: 0, stack: []listFrame{{end: len(listPayload)}}}}
}

// Next returns the kind and raw payload of the next item, advancing the
// iterator. Returns ErrListDecodingIterationEnded once all items have been
// consumed.
func (it *ListIterator) Next() (Kind, []byte, error) {
	if it.s.pos >= it.s.limit() {
		return 0, nil, ErrListDecodingIterationEnded
	}
	kind, payload, _, err := it.s.readItem()
	if err != nil {
		return 0, nil, err
	}
	return kind, payload, nil
}

// NextItem decodes the next item directly into val.
func (it *ListIterator) NextItem(val interface{}) error {
	kind, payload, err := it.Next()
	if err != nil {
		return err
	}
	return DecodePayload(kind, payload, val)
}

// Done reports whether every item in the list has been consumed.
func (it *ListIterator) Done() bool {
	return it.s.pos >= it.s.limit()
}

// Remaining returns the unconsumed tail of the list's payload bytes.
func (it *ListIterator) Remaining() []byte {
	return it.s.data[it.s.pos:it.s.limit()]
}

// Stream provides streaming, stateful access to RLP-encoded data: List /
// ListEnd bracket a scope so Bytes/Uint64/etc. read from within it.
type Stream struct {
	data  []byte
	pos   int
	stack []listFrame
}

type listFrame struct {
	end int
}

// NewStream creates a Stream reading the entirety of r.
func NewStream(r io.Reader) *Stream {
	data, _ := io.ReadAll(r)
	return newByteStream(data)
}

// NewStreamFromBytes creates a Stream over an in-memory buffer.
func NewStreamFromBytes(data []byte) *Stream {
	return newByteStream(data)
}

func newByteStream(data []byte) *Stream {
	return &Stream{data: data, pos: 0}
}

// Kind reports the type and content size of the next value without
// consuming it.
func (s *Stream) Kind() (Kind, uint64, error) {
	lim := s.limit()
	if s.pos >= lim {
		return 0, 0, ErrListDecodingIterationEnded
	}
	prefix := s.data[s.pos]
	switch {
	case prefix <= 0x7f:
		return Byte, 1, nil
	case prefix <= 0xb7:
		return String, uint64(prefix - 0x80), nil
	case prefix <= 0xbf:
		lenOfLen := int(prefix - 0xb7)
		if s.pos+1+lenOfLen > lim {
			return 0, 0, ErrItemDataWithInvalidByteLength
		}
		return String, readBigEndian(s.data[s.pos+1 : s.pos+1+lenOfLen]), nil
	case prefix <= 0xf7:
		return List, uint64(prefix - 0xc0), nil
	default:
		lenOfLen := int(prefix - 0xf7)
		if s.pos+1+lenOfLen > lim {
			return 0, 0, ErrItemDataWithInvalidByteLength
		}
		return List, readBigEndian(s.data[s.pos+1 : s.pos+1+lenOfLen]), nil
	}
}

// readItem reads one complete RLP item (header + payload) and returns its
// kind, payload bytes (for Byte, the single byte itself), and the total
// number of bytes consumed.
func (s *Stream) readItem() (kind Kind, payload []byte, totalConsumed int, err error) {
	lim := s.limit()
	if s.pos >= lim {
		return 0, nil, 0, ErrListDecodingIterationEnded
	}
	prefix := s.data[s.pos]

	switch {
	case prefix <= 0x7f:
		payload = s.data[s.pos : s.pos+1]
		s.pos++
		return Byte, payload, 1, nil

	case prefix <= 0xb7:
		size := int(prefix - 0x80)
		start := s.pos + 1
		end := start + size
		if end > lim {
			return 0, nil, 0, ErrItemDataWithInvalidByteLength
		}
		if size == 1 && s.data[start] <= 0x7f {
			return 0, nil, 0, ErrSingleByteEncodedAsTwo
		}
		payload = s.data[start:end]
		s.pos = end
		return String, payload, 1 + size, nil

	case prefix <= 0xbf:
		lenOfLen := int(prefix - 0xb7)
		if s.pos+1+lenOfLen > lim {
			return 0, nil, 0, ErrItemDataWithInvalidByteLength
		}
		sizeBytes := s.data[s.pos+1 : s.pos+1+lenOfLen]
		if len(sizeBytes) > 0 && sizeBytes[0] == 0 {
			return 0, nil, 0, ErrUintDecodingFoundLeftPadding
		}
		size := int(readBigEndian(sizeBytes))
		if size <= 55 {
			return 0, nil, 0, ErrShortStringEncodedAsLong
		}
		start := s.pos + 1 + lenOfLen
		end := start + size
		if end > lim {
			return 0, nil, 0, ErrItemDataWithInvalidByteLength
		}
		payload = s.data[start:end]
		s.pos = end
		return String, payload, 1 + lenOfLen + size, nil

	case prefix <= 0xf7:
		size := int(prefix - 0xc0)
		start := s.pos + 1
		end := start + size
		if end > lim {
			return 0, nil, 0, ErrItemDataWithInvalidByteLength
		}
		payload = s.data[start:end]
		s.pos = end
		return List, payload, 1 + size, nil

	default:
		lenOfLen := int(prefix - 0xf7)
		if s.pos+1+lenOfLen > lim {
			return 0, nil, 0, ErrItemDataWithInvalidByteLength
		}
		sizeBytes := s.data[s.pos+1 : s.pos+1+lenOfLen]
		if len(sizeBytes) > 0 && sizeBytes[0] == 0 {
			return 0, nil, 0, ErrUintDecodingFoundLeftPadding
		}
		size := int(readBigEndian(sizeBytes))
		if size <= 55 {
			return 0, nil, 0, ErrShortListEncodedAsLong
		}
		start := s.pos + 1 + lenOfLen
		end := start + size
		if end > lim {
			return 0, nil, 0, ErrItemDataWithInvalidByteLength
		}
		payload = s.data[start:end]
		s.pos = end
		return List, payload, 1 + lenOfLen + size, nil
	}
}

// Bytes reads an RLP string (or self-encoded byte) value.
func (s *Stream) Bytes() ([]byte, error) {
	kind, payload, _, err := s.readItem()
	if err != nil {
		return nil, err
	}
	if kind == List {
		return nil, ErrItemTypeDoesNotMatch
	}
	return payload, nil
}

// List enters the scope of an RLP list, returning its payload length in
// bytes. Subsequent Bytes/Uint64/List calls read from within it, until
// ListEnd is called.
func (s *Stream) List() (uint64, error) {
	if s.pos >= s.limit() {
		return 0, ErrListDecodingIterationEnded
	}
	prefix := s.data[s.pos]

	var payloadStart, payloadEnd int
	switch {
	case prefix >= 0xc0 && prefix <= 0xf7:
		size := int(prefix - 0xc0)
		payloadStart = s.pos + 1
		payloadEnd = payloadStart + size
	case prefix > 0xf7:
		lenOfLen := int(prefix - 0xf7)
		if s.pos+1+lenOfLen > s.limit() {
			return 0, ErrItemDataWithInvalidByteLength
		}
		sizeBytes := s.data[s.pos+1 : s.pos+1+lenOfLen]
		if len(sizeBytes) > 0 && sizeBytes[0] == 0 {
			return 0, ErrUintDecodingFoundLeftPadding
		}
		size := int(readBigEndian(sizeBytes))
		if size <= 55 {
			return 0, ErrShortListEncodedAsLong
		}
		payloadStart = s.pos + 1 + lenOfLen
		payloadEnd = payloadStart + size
	default:
		return 0, ErrItemTypeDoesNotMatch
	}

	if payloadEnd > s.limit() {
		return 0, ErrItemDataWithInvalidByteLength
	}
	s.stack = append(s.stack, listFrame{end: payloadEnd})
	s.pos = payloadStart
	return uint64(payloadEnd - payloadStart), nil
}

// ListEnd closes the current list scope, failing if items remain unread
// (the list had more items than the
// destination expected).
func (s *Stream) ListEnd() error {
	if len(s.stack) == 0 {
		return ErrItemTypeDoesNotMatch
	}
	top := s.stack[len(s.stack)-1]
	if s.pos != top.end {
		return ErrListDecodingNumberDoesNotMatch
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

func (s *Stream) limit() int {
	if len(s.stack) > 0 {
		return s.stack[len(s.stack)-1].end
	}
	return len(s.data)
}

// Uint64 reads an RLP-encoded unsigned integer.
func (s *Stream) Uint64() (uint64, error) {
	u, _, err := s.uintPayload()
	return u, err
}

// uintPayload reads an RLP-encoded unsigned integer and also returns the
// payload's raw byte length, so decodeInto can reject a payload wider than
// a narrower destination type (e.g. a 3-byte payload decoded into a
// uint16) instead of silently truncating it via SetUint/SetInt.
func (s *Stream) uintPayload() (uint64, int, error) {
	b, err := s.Bytes()
	if err != nil {
		return 0, 0, err
	}
	if len(b) == 0 {
		return 0, 0, nil
	}
	if len(b) > 8 {
		return 0, 0, ErrItemPayloadByteLengthTooLarge
	}
	if len(b) > 1 && b[0] == 0 {
		return 0, 0, ErrUintDecodingFoundLeftPadding
	}
	return readBigEndian(b), len(b), nil
}

// BigInt reads an RLP-encoded big integer.
func (s *Stream) BigInt() (*big.Int, error) {
	b, err := s.Bytes()
	if err != nil {
		return nil, err
	}
	if len(b) > 1 && b[0] == 0 {
		return nil, ErrUintDecodingFoundLeftPadding
	}
	return new(big.Int).SetBytes(b), nil
}

func readBigEndian(b []byte) uint64 {
	var val uint64
	for _, x := range b {
		val = (val << 8) | uint64(x)
	}
	return val
}

func (s *Stream) decodeInto(v reflect.Value) error {
	if v.Type() == reflect.TypeOf(big.Int{}) {
		bi, err := s.BigInt()
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(*bi))
		return nil
	}
	if v.Kind() == reflect.Ptr {
		if v.Type() == reflect.TypeOf((*big.Int)(nil)) {
			bi, err := s.BigInt()
			if err != nil {
				return err
			}
			v.Set(reflect.ValueOf(bi))
			return nil
		}
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return s.decodeInto(v.Elem())
	}

	switch v.Kind() {
	case reflect.Bool:
		b, err := s.Bytes()
		if err != nil {
			return err
		}
		switch {
		case len(b) == 0:
			v.SetBool(false)
		case len(b) == 1 && b[0] == 0x01:
			v.SetBool(true)
		case len(b) == 1 && b[0] == 0x00:
			v.SetBool(false)
		default:
			return ErrInvalidByteRepresentaion
		}
		return nil

	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		u, n, err := s.uintPayload()
		if err != nil {
			return err
		}
		if maxLen := v.Type().Bits() / 8; n > maxLen {
			return ErrItemPayloadByteLengthTooLarge
		}
		v.SetUint(u)
		return nil

	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		u, n, err := s.uintPayload()
		if err != nil {
			return err
		}
		if maxLen := v.Type().Bits() / 8; n > maxLen {
			return ErrItemPayloadByteLengthTooLarge
		}
		v.SetInt(int64(u))
		return nil

	case reflect.String:
		b, err := s.Bytes()
		if err != nil {
			return err
		}
		v.SetString(string(b))
		return nil

	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b, err := s.Bytes()
			if err != nil {
				return err
			}
			v.SetBytes(bytes.Clone(b))
			return nil
		}
		return s.decodeList(v)

	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b, err := s.Bytes()
			if err != nil {
				return err
			}
			if len(b) != v.Len() {
				return ErrItemDataWithInvalidByteLength
			}
			for i := 0; i < v.Len(); i++ {
				v.Index(i).SetUint(uint64(b[i]))
			}
			return nil
		}
		return s.decodeList(v)

	case reflect.Struct:
		return s.decodeStruct(v)

	default:
		return ErrItemTypeDoesNotMatch
	}
}

func (s *Stream) decodeList(v reflect.Value) error {
	_, err := s.List()
	if err != nil {
		return err
	}

	isSlice := v.Kind() == reflect.Slice
	if isSlice {
		v.Set(v.Slice(0, 0))
	}
	i := 0
	for s.pos < s.stack[len(s.stack)-1].end {
		if isSlice {
			v.Set(reflect.Append(v, reflect.New(v.Type().Elem()).Elem()))
		}
		if i >= v.Len() {
			// More items than the fixed-size array holds: stop so that
			// ListEnd reports the arity mismatch.
			break
		}
		if err := s.decodeInto(v.Index(i)); err != nil {
			return err
		}
		i++
	}
	return s.ListEnd()
}

func (s *Stream) decodeStruct(v reflect.Value) error {
	_, err := s.List()
	if err != nil {
		return err
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if s.pos >= s.stack[len(s.stack)-1].end {
			return ErrListDecodingNumberDoesNotMatch
		}
		if err := s.decodeInto(v.Field(i)); err != nil {
			return err
		}
	}
	return s.ListEnd()
}
