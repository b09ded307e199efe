package enr

import (
	"encoding/base64"
	"strings"
)

// TextualFormPrefix is the fixed prefix of a record's textual form.
const TextualFormPrefix = "enr:"

// MaxTextualFormByteLength is the maximum length of a textual-form
// string.
const MaxTextualFormByteLength = 400

// ToTextualForm renders r as "enr:" followed by the unpadded base64url
// encoding of its RLP bytes.
func (r *Record) ToTextualForm() (string, error) {
	encoded, err := r.ToRLPEncoded()
	if err != nil {
		return "", err
	}
	text := TextualFormPrefix + base64.RawURLEncoding.EncodeToString(encoded)
	if len(text) > MaxTextualFormByteLength {
		return "", ErrMaximumTextualFormByteLengthExceeded
	}
	return text, nil
}

// FromTextualForm parses and verifies a record from its textual form.
// Padding characters are rejected outright: RawURLEncoding never emits
// them, so their presence means the input wasn't produced by
// ToTextualForm.
func FromTextualForm(s string) (*Record, error) {
	if len(s) > MaxTextualFormByteLength {
		return nil, ErrMaximumTextualFormByteLengthExceeded
	}
	if !strings.HasPrefix(s, TextualFormPrefix) {
		return nil, ErrMissingTextualFormPrefix
	}
	body := s[len(TextualFormPrefix):]
	if strings.ContainsRune(body, '=') {
		return nil, ErrInvalidTextualForm
	}
	data, err := base64.RawURLEncoding.Strict().DecodeString(body)
	if err != nil {
		return nil, ErrInvalidTextualForm
	}
	return FromRLPEncoded(data)
}
