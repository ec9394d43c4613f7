package c32check

import (
	"strings"

	"github.com/pkg/errors"
)

// Case is the canonical letter case a family folds its input to before
// decoding.
type Case int

const (
	CaseKeep Case = iota
	CaseUpper
	CaseLower
)

// Normalization describes how a family cleans up human-typed input before
// decoding. Encoders always emit the canonical form and never consult it.
type Normalization struct {
	Case       Case
	Homoglyphs map[rune]rune
}

func (n Normalization) apply(s string) string {
	switch n.Case {
	case CaseUpper:
		s = strings.ToUpper(s)
	case CaseLower:
		s = strings.ToLower(s)
	}
	if len(n.Homoglyphs) == 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if c, ok := n.Homoglyphs[r]; ok {
			return c
		}
		return r
	}, s)
}

// VersionLayout says where a checksummed string carries its version.
type VersionLayout int

const (
	// VersionSymbol: the version is a separate leading alphabet symbol and is
	// not part of the encoded integer.
	VersionSymbol VersionLayout = iota
	// VersionByte: the version is the first byte of the encoded payload,
	// as in bitcoin base58check.
	VersionByte
)

// Family is an alphabet together with the rules for checksumming and
// presenting addresses in it. Families are immutable and safe for
// concurrent use.
type Family struct {
	name     string
	alphabet string
	norm     Normalization
	layout   VersionLayout

	// marker is a constant prefix on addresses; upperVersion instead
	// upper-cases the leading version symbol.
	marker       string
	upperVersion bool

	radix bigUint
	index [256]int
}

func newFamily(name, alphabet string, norm Normalization, layout VersionLayout) *Family {
	f := &Family{
		name:     name,
		alphabet: alphabet,
		norm:     norm,
		layout:   layout,
		radix:    bigUintFromInt(len(alphabet)),
	}
	for i := range f.index {
		f.index[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		f.index[alphabet[i]] = i
	}
	return f
}

var (
	// C32 is Crockford-style base32: digits and upper-case letters without
	// I, L, O and U. Decoding is case-insensitive and maps O to 0 and I, L
	// to 1.
	C32 = func() *Family {
		f := newFamily("c32", "0123456789ABCDEFGHJKMNPQRSTVWXYZ", Normalization{
			Case:       CaseUpper,
			Homoglyphs: map[rune]rune{'O': '0', 'L': '1', 'I': '1'},
		}, VersionSymbol)
		f.marker = "S"
		return f
	}()

	// Z32 is z-base-32. Decoding is case-sensitive.
	Z32 = func() *Family {
		f := newFamily("z32", "ybndrfg8ejkmcpqxot1uwisza345h769", Normalization{}, VersionSymbol)
		f.upperVersion = true
		return f
	}()

	// Base58 is the bitcoin base58 alphabet with base58check versioning.
	Base58 = newFamily("b58", "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz", Normalization{}, VersionByte)
)

// Families lists the predeclared families.
var Families = []*Family{C32, Z32, Base58}

// FamilyByName returns the predeclared family called name.
func FamilyByName(name string) (*Family, error) {
	for _, f := range Families {
		if f.name == name {
			return f, nil
		}
	}
	return nil, errors.Errorf("unknown alphabet family %q", name)
}

func (f *Family) Name() string     { return f.name }
func (f *Family) Alphabet() string { return f.alphabet }
func (f *Family) String() string   { return f.name }

// MaxVersion is one past the largest version CheckEncode accepts.
func (f *Family) MaxVersion() int {
	if f.layout == VersionByte {
		return 256
	}
	return len(f.alphabet)
}

// Normalize applies the family's case folding and homoglyph substitutions.
func (f *Family) Normalize(s string) string {
	return f.norm.apply(s)
}

// Normalize normalizes a c32 string.
func Normalize(s string) string {
	return C32.Normalize(s)
}

func (f *Family) digit(c byte) int {
	return f.index[c]
}

func (f *Family) validVersion(version int) error {
	if version < 0 || version >= f.MaxVersion() {
		return errors.Wrapf(ErrInvalidVersion, "%s version %d not in [0, %d)", f.name, version, f.MaxVersion())
	}
	return nil
}
