package enr

import (
	"github.com/eth2030/discv5/cryptoscheme"
	"github.com/eth2030/discv5/rlp"
)

// decodeContent reads [seq, k1, v1, k2, v2, ...] from it, enforcing strict
// ascending, unique key order and the byte-length invariants of the
// identity-scheme keys. Unknown keys are preserved verbatim (via
// rlp.EncodeItem) without interpretation.
func decodeContent(it *rlp.ListIterator) (*content, error) {
	seqKind, seqPayload, err := it.Next()
	if err != nil {
		return nil, ErrSeqNotFound
	}
	var seq uint64
	if err := rlp.DecodePayload(seqKind, seqPayload, &seq); err != nil {
		return nil, ErrSeqNotFound
	}

	c := &content{seq: seq, pairs: make(map[string][]byte)}
	previousKey := ""
	first := true

	for !it.Done() {
		keyKind, keyPayload, err := it.Next()
		if err != nil {
			return nil, ErrDecodingFailedForInvalidInput
		}
		if keyKind == rlp.List {
			return nil, ErrDecodingFailedForInvalidInput
		}
		key := string(keyPayload)
		if !first && key <= previousKey {
			return nil, ErrKeysNotSortedOrNotUnique
		}
		first = false
		previousKey = key

		valKind, valPayload, err := it.Next()
		if err != nil {
			return nil, ErrPairValueNotFound
		}

		switch key {
		case KeyID:
			if string(valPayload) != cryptoscheme.ID {
				return nil, ErrSchemeNameNotRecognized
			}
		case KeySecp256k1:
			if len(valPayload) != cryptoscheme.PublicKeyByteLength {
				return nil, ErrPublicKeyDataWithInvalidByteLength
			}
		case KeyIP:
			if len(valPayload) != 4 {
				return nil, ErrInvalidEntryByteLength
			}
		case KeyIP6:
			if len(valPayload) != 16 {
				return nil, ErrInvalidEntryByteLength
			}
		}

		c.pairs[key] = rlp.EncodeItem(valKind, valPayload)
	}

	if _, ok := c.rawBytes(KeyID); !ok {
		return nil, ErrSchemeNameNotRecognized
	}
	return c, nil
}
