package enr

import "errors"

// Errors for the ENR codec's error taxonomy.
var (
	ErrSchemeNameNotRecognized                     = errors.New("enr: identity scheme name not recognized")
	ErrKeysNotSortedOrNotUnique                     = errors.New("enr: pairs not sorted by key or keys not unique")
	ErrPairValueNotFound                            = errors.New("enr: key not followed by a value")
	ErrSeqNotFound                                  = errors.New("enr: sequence number absent")
	ErrPublicKeyDataWithInvalidByteLength            = errors.New("enr: public key data has invalid byte length")
	ErrInvalidPublicKeyData                         = errors.New("enr: public key represented by invalid bytes")
	ErrSignatureDataWithInvalidByteLength            = errors.New("enr: signature data has invalid byte length")
	ErrInvalidSignatureData                         = errors.New("enr: signature represented by invalid bytes")
	ErrSignatureVerifyingFailed                     = errors.New("enr: signature verifying against content failed")
	ErrSignatureVerifyingFailedForMissingPublicKey  = errors.New("enr: content does not contain public key data")
	ErrSignatureConstructingFailed                  = errors.New("enr: constructing signature for content failed")
	ErrInvalidSignature                             = errors.New("enr: invalid content signature")
	ErrMaximumRecordRlpEncodedByteLengthExceeded     = errors.New("enr: encoded record exceeds maximum byte length")
	ErrDecodingFailedForInvalidInput                = errors.New("enr: decoding failed for invalid input")
	ErrSeqOverflow                                  = errors.New("enr: sequence number overflow")
	ErrInvalidEntryByteLength                       = errors.New("enr: recognized entry has invalid byte length")
	ErrMaximumTextualFormByteLengthExceeded         = errors.New("enr: textual form exceeds maximum byte length")
	ErrMissingTextualFormPrefix                     = errors.New("enr: textual form missing \"enr:\" prefix")
	ErrInvalidTextualForm                           = errors.New("enr: textual form is not valid unpadded base64url")
)
