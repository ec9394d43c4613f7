package c32check

import "github.com/pkg/errors"

// Error kinds returned by the codecs. Detail is attached with
// errors.Wrapf at the point of failure; use errors.Is to test the kind.
var (
	ErrInvalidEncoding  = errors.New("invalid encoding")
	ErrInvalidVersion   = errors.New("invalid version")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)
