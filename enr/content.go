package enr

import (
	"net"
	"sort"

	"github.com/eth2030/discv5/cryptoscheme"
	"github.com/eth2030/discv5/rlp"
)

// Predefined key names.
const (
	KeyID        = "id"
	KeySecp256k1 = cryptoscheme.PublicKeyKey
	KeyIP        = "ip"
	KeyIP6       = "ip6"
	KeyTCP       = "tcp"
	KeyTCP6      = "tcp6"
	KeyUDP       = "udp"
	KeyUDP6      = "udp6"
)

// SequenceNumberInitial is the seq a freshly-built record starts at.
const SequenceNumberInitial uint64 = 1

// content holds an ENR's fields as seq plus an unordered set of key ->
// pre-encoded RLP item bytes. Storing values pre-encoded (rather than as
// typed Go fields) lets unknown keys round-trip through decode/encode
// without being interpreted, and lets the signing payload be built by
// simple concatenation of sorted pairs.
type content struct {
	seq   uint64
	pairs map[string][]byte
}

func newContent(id string) *content {
	c := &content{seq: SequenceNumberInitial, pairs: make(map[string][]byte)}
	c.pairs[KeyID] = encodeStringItem(id)
	return c
}

func encodeStringItem(s string) []byte {
	b, _ := rlp.EncodeToBytes(s)
	return b
}

func encodeBytesItem(b []byte) []byte {
	enc, _ := rlp.EncodeToBytes(b)
	return enc
}

// encodeUintItem encodes v as a canonical minimal-byte RLP integer. Ports
// and other small integers must go through this path rather than a
// fixed-width encoding: RLP integers drop leading zero bytes, so a 2-byte
// big-endian port encoding is non-canonical whenever the high byte is
// zero.
func encodeUintItem(v uint64) []byte {
	enc, _ := rlp.EncodeToBytes(v)
	return enc
}

func (c *content) clone() *content {
	cp := &content{seq: c.seq, pairs: make(map[string][]byte, len(c.pairs))}
	for k, v := range c.pairs {
		vv := make([]byte, len(v))
		copy(vv, v)
		cp.pairs[k] = vv
	}
	return cp
}

func (c *content) sortedKeys() []string {
	keys := make([]string, 0, len(c.pairs))
	for k := range c.pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// encodeListPayload builds the canonical RLP list payload [seq, k1, v1, k2,
// v2, ...] content, without the outer list header.
func (c *content) encodeListPayload() []byte {
	payload := encodeUintItem(c.seq)
	for _, k := range c.sortedKeys() {
		payload = append(payload, encodeStringItem(k)...)
		payload = append(payload, c.pairs[k]...)
	}
	return payload
}

// encode returns the RLP encoding of the content as a standalone list:
// the object that is keccak256-hashed and signed.
func (c *content) encode() []byte {
	return rlp.WrapList(c.encodeListPayload())
}

// rawBytes returns the raw payload bytes (the already-decoded, not
// re-encoded, value) stored under key.
func (c *content) rawBytes(key string) ([]byte, bool) {
	enc, ok := c.pairs[key]
	if !ok {
		return nil, false
	}
	_, headerLen, payloadLen, err := rlp.DecodeHeader(enc)
	if err != nil {
		return nil, false
	}
	return enc[headerLen : headerLen+payloadLen], true
}

// Get returns the raw value bytes for an arbitrary (possibly unknown) key,
// for callers building on supplemental entries.
func (c *content) Get(key string) ([]byte, bool) {
	return c.rawBytes(key)
}

// EncodedBytes returns the full RLP-encoded item bytes stored under key,
// for callers (entries.go) that decode structured values directly rather
// than through rawBytes's single-item unwrap.
func (c *content) EncodedBytes(key string) ([]byte, bool) {
	b, ok := c.pairs[key]
	return b, ok
}

// Set stores value as the pre-encoded RLP bytes for an arbitrary key.
func (c *content) Set(key string, value []byte) {
	c.pairs[key] = encodeBytesItem(value)
}

func (c *content) Seq() uint64 { return c.seq }

func (c *content) ID() string {
	raw, _ := c.rawBytes(KeyID)
	return string(raw)
}

func (c *content) PublicKeyBytes() []byte {
	raw, _ := c.rawBytes(KeySecp256k1)
	return raw
}

func (c *content) ip(key string, n int) net.IP {
	raw, ok := c.rawBytes(key)
	if !ok || len(raw) != n {
		return nil
	}
	ip := make(net.IP, n)
	copy(ip, raw)
	return ip
}

func (c *content) IP4() net.IP  { return c.ip(KeyIP, 4) }
func (c *content) IP6() net.IP  { return c.ip(KeyIP6, 16) }

func (c *content) port(key string) (uint16, bool) {
	raw, ok := c.rawBytes(key)
	if !ok || len(raw) > 2 {
		return 0, false
	}
	var v uint64
	for _, b := range raw {
		v = v<<8 | uint64(b)
	}
	return uint16(v), true
}

func (c *content) TCP4() (uint16, bool)  { return c.port(KeyTCP) }
func (c *content) TCP6() (uint16, bool)  { return c.port(KeyTCP6) }
func (c *content) UDP4() (uint16, bool)  { return c.port(KeyUDP) }
func (c *content) UDP6() (uint16, bool)  { return c.port(KeyUDP6) }
