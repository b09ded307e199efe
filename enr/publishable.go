package enr

import (
	"bytes"
	"net"

	"github.com/eth2030/discv5/cryptoscheme"
	"github.com/holiman/uint256"
)

// PublishableRecord is a mutable record builder intended for a node's own,
// evolving local record: callers apply Update* calls as the node's
// observed address changes, then call Publish to obtain a freshly signed
// Record. Publish only advances seq when the published fields actually
// changed since the last publish (a compare-then-resequence algorithm);
// re-publishing with no changes returns the same seq.
type PublishableRecord struct {
	content       *content
	lastPublished *content // nil until the first successful Publish.
}

// NewPublishableRecord starts a PublishableRecord for a v4-identity-scheme
// record at SequenceNumberInitial, analogous to NewBuilder.
func NewPublishableRecord() *PublishableRecord {
	return &PublishableRecord{content: newContent(cryptoscheme.ID)}
}

// UpdateIP4 sets the "ip" entry.
func (pr *PublishableRecord) UpdateIP4(ip net.IP) {
	pr.content.pairs[KeyIP] = encodeBytesItem(ip.To4())
}

// UpdateIP6 sets the "ip6" entry.
func (pr *PublishableRecord) UpdateIP6(ip net.IP) {
	pr.content.pairs[KeyIP6] = encodeBytesItem(ip.To16())
}

// UpdateTCP4 sets the "tcp" entry.
func (pr *PublishableRecord) UpdateTCP4(port uint16) {
	pr.content.pairs[KeyTCP] = encodeUintItem(uint64(port))
}

// UpdateTCP6 sets the "tcp6" entry.
func (pr *PublishableRecord) UpdateTCP6(port uint16) {
	pr.content.pairs[KeyTCP6] = encodeUintItem(uint64(port))
}

// UpdateUDP4 sets the "udp" entry.
func (pr *PublishableRecord) UpdateUDP4(port uint16) {
	pr.content.pairs[KeyUDP] = encodeUintItem(uint64(port))
}

// UpdateUDP6 sets the "udp6" entry.
func (pr *PublishableRecord) UpdateUDP6(port uint16) {
	pr.content.pairs[KeyUDP6] = encodeUintItem(uint64(port))
}

// UpdateRaw sets an arbitrary key, for supplemental entries.
func (pr *PublishableRecord) UpdateRaw(key string, value []byte) {
	pr.content.pairs[key] = encodeBytesItem(value)
}

// Publish signs the current content with priv's public key and returns
// the resulting Record. seq only advances past the last published value
// when a field other than seq itself has actually changed; an
// unconditional re-publish of unchanged content reuses the prior seq.
func (pr *PublishableRecord) Publish(priv *cryptoscheme.PrivateKey) (*Record, error) {
	pr.content.pairs[KeySecp256k1] = encodeBytesItem(priv.PublicKey().Bytes())

	if pr.lastPublished != nil {
		if pairsEqualExceptSeq(pr.content, pr.lastPublished) {
			pr.content.seq = pr.lastPublished.seq
		} else if pr.content.seq <= pr.lastPublished.seq {
			next := new(uint256.Int)
			if overflow := next.AddOverflow(uint256.NewInt(pr.lastPublished.seq), uint256.NewInt(1)); overflow {
				return nil, ErrSeqOverflow
			}
			pr.content.seq = next.Uint64()
		}
	}

	hash := cryptoscheme.Keccak256(pr.content.encode())
	sig, err := priv.Sign(hash)
	if err != nil {
		return nil, ErrSignatureConstructingFailed
	}

	pr.lastPublished = pr.content.clone()
	return &Record{signatureData: sig, content: pr.content.clone()}, nil
}

// pairsEqualExceptSeq reports whether a and b hold identical key/value
// pairs, ignoring their seq fields.
func pairsEqualExceptSeq(a, b *content) bool {
	if len(a.pairs) != len(b.pairs) {
		return false
	}
	for k, v := range a.pairs {
		bv, ok := b.pairs[k]
		if !ok || !bytes.Equal(v, bv) {
			return false
		}
	}
	return true
}
