package enr

import (
	"net"

	"github.com/eth2030/discv5/cryptoscheme"
)

// Builder assembles a new record's content before it is signed.
type Builder struct {
	content *content
}

// NewBuilder starts a Builder for a v4-identity-scheme record at
// SequenceNumberInitial.
func NewBuilder() *Builder {
	return &Builder{content: newContent(cryptoscheme.ID)}
}

// WithSeq overrides the default initial sequence number.
func (b *Builder) WithSeq(seq uint64) *Builder {
	b.content.seq = seq
	return b
}

// WithIP4 sets the "ip" entry to a 4-byte IPv4 address.
func (b *Builder) WithIP4(ip net.IP) *Builder {
	b.content.pairs[KeyIP] = encodeBytesItem(ip.To4())
	return b
}

// WithIP6 sets the "ip6" entry to a 16-byte IPv6 address.
func (b *Builder) WithIP6(ip net.IP) *Builder {
	b.content.pairs[KeyIP6] = encodeBytesItem(ip.To16())
	return b
}

// WithTCP4 sets the "tcp" entry.
func (b *Builder) WithTCP4(port uint16) *Builder {
	b.content.pairs[KeyTCP] = encodeUintItem(uint64(port))
	return b
}

// WithTCP6 sets the "tcp6" entry.
func (b *Builder) WithTCP6(port uint16) *Builder {
	b.content.pairs[KeyTCP6] = encodeUintItem(uint64(port))
	return b
}

// WithUDP4 sets the "udp" entry.
func (b *Builder) WithUDP4(port uint16) *Builder {
	b.content.pairs[KeyUDP] = encodeUintItem(uint64(port))
	return b
}

// WithUDP6 sets the "udp6" entry.
func (b *Builder) WithUDP6(port uint16) *Builder {
	b.content.pairs[KeyUDP6] = encodeUintItem(uint64(port))
	return b
}

// WithRaw sets an arbitrary key to value, pre-encoding it as an RLP
// string. Used for supplemental entries this package doesn't otherwise
// know about (see entries.go).
func (b *Builder) WithRaw(key string, value []byte) *Builder {
	b.content.pairs[key] = encodeBytesItem(value)
	return b
}

// SignAndBuild stamps the builder's content with priv's public key,
// signs keccak256(content encoding), and returns the resulting Record.
func (b *Builder) SignAndBuild(priv *cryptoscheme.PrivateKey) (*Record, error) {
	b.content.pairs[KeySecp256k1] = encodeBytesItem(priv.PublicKey().Bytes())
	hash := cryptoscheme.Keccak256(b.content.encode())
	sig, err := priv.Sign(hash)
	if err != nil {
		return nil, ErrSignatureConstructingFailed
	}
	return &Record{signatureData: sig, content: b.content.clone()}, nil
}
