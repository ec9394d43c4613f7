package c32check

import (
	"encoding/hex"
	"math/big"

	"github.com/pkg/errors"
)

// bigUint is the unsigned big integer the base conversion loops run on.
// Values are never mutated after construction.
type bigUint struct {
	v *big.Int
}

func bigUintFromInt(n int) bigUint {
	return bigUint{v: big.NewInt(int64(n))}
}

// bigUintFromHex reads big-endian hex. The empty string is zero.
func bigUintFromHex(h string) (bigUint, error) {
	if len(h)%2 != 0 {
		h = "0" + h
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return bigUint{}, errors.Wrapf(ErrInvalidEncoding, "not a hex-encoded string %q", h)
	}
	return bigUint{v: new(big.Int).SetBytes(b)}, nil
}

// divRem returns x / radix and x % radix.
func (x bigUint) divRem(radix bigUint) (bigUint, int) {
	q, r := new(big.Int), new(big.Int)
	q.DivMod(x.v, radix.v, r)
	return bigUint{v: q}, int(r.Int64())
}

// mulAdd returns x*radix + digit.
func (x bigUint) mulAdd(radix bigUint, digit int) bigUint {
	res := new(big.Int).Mul(x.v, radix.v)
	res.Add(res, big.NewInt(int64(digit)))
	return bigUint{v: res}
}

func (x bigUint) cmp(y bigUint) int {
	return x.v.Cmp(y.v)
}

// hex renders the minimal big-endian byte representation; zero is "".
func (x bigUint) hex() string {
	return hex.EncodeToString(x.v.Bytes())
}
