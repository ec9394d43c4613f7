package c32check

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"github.com/pkg/errors"
)

const checksumLen = 4

// checksum returns the first four bytes of sha256(sha256(payload)).
func checksum(payload []byte) []byte {
	firstSHA := sha256.Sum256(payload)
	secondSHA := sha256.Sum256(firstSHA[:])
	return secondSHA[:checksumLen]
}

func checksumHex(dataHex string) (string, error) {
	payload, err := hex.DecodeString(dataHex)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidEncoding, "not a hex-encoded string %q", dataHex)
	}
	return hex.EncodeToString(checksum(payload)), nil
}

// CheckEncode encodes a version and hex payload with a four byte
// double-SHA256 checksum of version+payload appended.
func (f *Family) CheckEncode(version int, dataHex string) (string, error) {
	if err := f.validVersion(version); err != nil {
		return "", err
	}
	dataHex, err := normalizeHex(dataHex)
	if err != nil {
		return "", err
	}

	vHex := versionHex(version)
	sumHex, err := checksumHex(vHex + dataHex)
	if err != nil {
		return "", err
	}

	if f.layout == VersionByte {
		return f.Encode(vHex+dataHex+sumHex, 0)
	}
	encoded, err := f.Encode(dataHex+sumHex, 0)
	if err != nil {
		return "", err
	}
	return string(f.alphabet[version]) + encoded, nil
}

// CheckDecode decodes a string produced by CheckEncode and verifies its
// checksum.
func (f *Family) CheckDecode(input string) (int, string, error) {
	input = f.Normalize(input)

	var (
		version int
		dataHex string
		err     error
	)
	if f.layout == VersionByte {
		dataHex, err = f.Decode(input, 0)
		if err != nil {
			return 0, "", err
		}
		if len(dataHex) < 2+checksumLen*2 {
			return 0, "", errors.Wrapf(ErrInvalidEncoding, "%s check string %q too short", f.name, input)
		}
		v, _ := hex.DecodeString(dataHex[:2])
		version, dataHex = int(v[0]), dataHex[2:]
	} else {
		if len(input) == 0 {
			return 0, "", errors.Wrapf(ErrInvalidEncoding, "empty %s check string", f.name)
		}
		version = f.digit(input[0])
		if version < 0 {
			return 0, "", errors.Wrapf(ErrInvalidEncoding, "not a %s-encoded string: bad character %q", f.name, input[0])
		}
		dataHex, err = f.Decode(input[1:], 0)
		if err != nil {
			return 0, "", err
		}
		if len(dataHex) < checksumLen*2 {
			return 0, "", errors.Wrapf(ErrInvalidEncoding, "%s check string %q too short", f.name, input)
		}
	}

	split := len(dataHex) - checksumLen*2
	payloadHex, sumHex := dataHex[:split], dataHex[split:]

	want, err := hex.DecodeString(sumHex)
	if err != nil {
		return 0, "", errors.Wrapf(ErrInvalidEncoding, "not a hex-encoded string %q", sumHex)
	}
	payload, err := hex.DecodeString(versionHex(version) + payloadHex)
	if err != nil {
		return 0, "", errors.Wrapf(ErrInvalidEncoding, "not a hex-encoded string %q", payloadHex)
	}
	if !bytes.Equal(checksum(payload), want) {
		return 0, "", errors.Wrapf(ErrChecksumMismatch, "%s check string %q", f.name, input)
	}

	return version, payloadHex, nil
}

// CheckEncode is c32check encoding.
func CheckEncode(version int, dataHex string) (string, error) {
	return C32.CheckEncode(version, dataHex)
}

// CheckDecode is c32check decoding.
func CheckDecode(input string) (int, string, error) {
	return C32.CheckDecode(input)
}
