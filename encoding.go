package c32check

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// Encode encodes big-endian hex in the family's alphabet. Each leading zero
// byte becomes one zero symbol. A positive minLength left-pads the result
// with zero symbols.
func (f *Family) Encode(inputHex string, minLength int) (string, error) {
	inputHex, err := normalizeHex(inputHex)
	if err != nil {
		return "", err
	}

	raw, err := hex.DecodeString(inputHex)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidEncoding, "not a hex-encoded string %q", inputHex)
	}
	leadingZeros := 0
	for _, b := range raw {
		if b != 0x00 {
			break
		}
		leadingZeros++
	}

	val, err := bigUintFromHex(inputHex)
	if err != nil {
		return "", err
	}

	zero := bigUintFromInt(0)
	var res []byte
	for val.cmp(zero) > 0 {
		var rem int
		val, rem = val.divRem(f.radix)
		res = append(res, f.alphabet[rem])
	}
	for i := 0; i < leadingZeros; i++ {
		res = append(res, f.alphabet[0])
	}
	for len(res) < minLength {
		res = append(res, f.alphabet[0])
	}

	reverseBytes(res)
	return string(res), nil
}

// Decode decodes a string in the family's alphabet back to big-endian hex.
// Each leading zero symbol becomes one zero byte. A positive minByteLength
// left-pads the result with zero bytes.
func (f *Family) Decode(input string, minByteLength int) (string, error) {
	input = f.Normalize(input)
	for i := 0; i < len(input); i++ {
		if f.digit(input[i]) < 0 {
			return "", errors.Wrapf(ErrInvalidEncoding, "not a %s-encoded string: bad character %q", f.name, input[i])
		}
	}

	zero := f.alphabet[0]
	leadingZeros := 0
	for leadingZeros < len(input) && input[leadingZeros] == zero {
		leadingZeros++
	}

	val := bigUintFromInt(0)
	for i := 0; i < len(input); i++ {
		val = val.mulAdd(f.radix, f.digit(input[i]))
	}

	hexStr := strings.Repeat("00", leadingZeros) + val.hex()
	if pad := minByteLength*2 - len(hexStr); pad > 0 {
		hexStr = strings.Repeat("00", (pad+1)/2) + hexStr
	}
	return hexStr, nil
}

// Encode encodes hex as c32.
func Encode(inputHex string, minLength int) (string, error) {
	return C32.Encode(inputHex, minLength)
}

// Decode decodes c32 to hex.
func Decode(input string, minByteLength int) (string, error) {
	return C32.Decode(input, minByteLength)
}

// reverseBytes reverses a byte slice in place.
func reverseBytes(data []byte) {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
}
