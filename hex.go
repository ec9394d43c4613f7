package c32check

import (
	"strings"

	"github.com/pkg/errors"
)

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// normalizeHex validates h and returns it lowercased and padded to an even
// number of nibbles.
func normalizeHex(h string) (string, error) {
	if !isHex(h) {
		return "", errors.Wrapf(ErrInvalidEncoding, "not a hex-encoded string %q", h)
	}
	if len(h)%2 != 0 {
		h = "0" + h
	}
	return strings.ToLower(h), nil
}

// versionHex renders a version as a single byte of hex.
func versionHex(version int) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[(version>>4)&0xf], digits[version&0xf]})
}
