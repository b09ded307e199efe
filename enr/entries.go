package enr

import "github.com/eth2030/discv5/rlp"

// Supplemental entry keys for consensus-layer ENR capability entries: a
// fork identifier and two subnet subscription bitfields. Neither has
// special meaning to this package beyond its typed accessor; an
// unrecognized reader still sees them via content.Get.
const (
	KeyEth      = "eth"
	KeyAttnets  = "attnets"
	KeySyncnets = "syncnets"
)

// ForkID identifies a chain fork: a 4-byte digest summarizing the chain's
// fork history, plus the next scheduled fork's version and activation
// epoch.
type ForkID struct {
	ForkDigest      [4]byte
	NextForkVersion [4]byte
	NextForkEpoch   uint64
}

// WithEth sets the "eth" entry. The value is wrapped in a single-element
// list (matching how consensus clients encode fork ids). Eth reads only
// that shape: an "eth" list with more than one element is not decoded.
func (b *Builder) WithEth(forkID ForkID) *Builder {
	enc, _ := rlp.EncodeToBytes([]ForkID{forkID})
	b.content.pairs[KeyEth] = enc
	return b
}

// Eth returns the record's fork id, if present.
func (r *Record) Eth() (ForkID, bool) {
	enc, ok := r.content.EncodedBytes(KeyEth)
	if !ok {
		return ForkID{}, false
	}
	var wrapped [1]ForkID
	if err := rlp.DecodeBytes(enc, &wrapped); err != nil {
		return ForkID{}, false
	}
	return wrapped[0], true
}

// UpdateEth sets the "eth" entry on a PublishableRecord.
func (pr *PublishableRecord) UpdateEth(forkID ForkID) {
	enc, _ := rlp.EncodeToBytes([]ForkID{forkID})
	pr.content.pairs[KeyEth] = enc
}

// WithAttnets sets the "attnets" entry: a bitfield of subscribed
// attestation subnets. It carries no further structure at the ENR layer.
func (b *Builder) WithAttnets(bits []byte) *Builder {
	b.content.pairs[KeyAttnets] = encodeBytesItem(bits)
	return b
}

// Attnets returns the record's attestation-subnet bitfield, if present.
func (r *Record) Attnets() ([]byte, bool) { return r.content.rawBytes(KeyAttnets) }

// UpdateAttnets sets the "attnets" entry on a PublishableRecord.
func (pr *PublishableRecord) UpdateAttnets(bits []byte) {
	pr.content.pairs[KeyAttnets] = encodeBytesItem(bits)
}

// WithSyncnets sets the "syncnets" entry: a bitfield of subscribed sync
// committee subnets.
func (b *Builder) WithSyncnets(bits []byte) *Builder {
	b.content.pairs[KeySyncnets] = encodeBytesItem(bits)
	return b
}

// Syncnets returns the record's sync-committee-subnet bitfield, if
// present.
func (r *Record) Syncnets() ([]byte, bool) { return r.content.rawBytes(KeySyncnets) }

// UpdateSyncnets sets the "syncnets" entry on a PublishableRecord.
func (pr *PublishableRecord) UpdateSyncnets(bits []byte) {
	pr.content.pairs[KeySyncnets] = encodeBytesItem(bits)
}
