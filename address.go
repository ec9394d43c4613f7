package c32check

import (
	"strings"

	"github.com/pkg/errors"
)

const hash160HexLen = 40

// NetworkVersions holds the address versions of one network.
type NetworkVersions struct {
	P2PKH int `json:"p2pkh"`
	P2SH  int `json:"p2sh"`
}

// VersionTable holds address versions for mainnet and testnet.
type VersionTable struct {
	Mainnet NetworkVersions `json:"mainnet"`
	Testnet NetworkVersions `json:"testnet"`
}

// Versions are the c32 address versions.
var Versions = VersionTable{
	Mainnet: NetworkVersions{
		P2PKH: 22, // 'P'
		P2SH:  20, // 'M'
	},
	Testnet: NetworkVersions{
		P2PKH: 26, // 'T'
		P2SH:  21, // 'N'
	},
}

// BitcoinVersions are the base58check address versions playing the same
// roles as Versions.
var BitcoinVersions = VersionTable{
	Mainnet: NetworkVersions{P2PKH: 0, P2SH: 5},
	Testnet: NetworkVersions{P2PKH: 111, P2SH: 196},
}

func validHash160(h string) bool {
	return len(h) == hash160HexLen && isHex(h)
}

// Address encodes a version and a hash160 as an address of the family.
func (f *Family) Address(version int, hash160Hex string) (string, error) {
	if !validHash160(hash160Hex) {
		return "", errors.Wrapf(ErrInvalidEncoding, "not a hash160 hex string %q", hash160Hex)
	}

	s, err := f.CheckEncode(version, hash160Hex)
	if err != nil {
		return "", err
	}

	if f.upperVersion {
		return strings.ToUpper(s[:1]) + s[1:], nil
	}
	return f.marker + s, nil
}

// AddressDecode decodes an address into its version and hash160.
func (f *Family) AddressDecode(addr string) (int, string, error) {
	switch {
	case f.marker != "":
		if len(addr) <= len(f.marker)+checksumLen {
			return 0, "", errors.Wrapf(ErrInvalidEncoding, "%s address %q: invalid length", f.name, addr)
		}
		if !strings.HasPrefix(addr, f.marker) {
			return 0, "", errors.Wrapf(ErrInvalidEncoding, "%s address %q: missing %q marker", f.name, addr, f.marker)
		}
		addr = addr[len(f.marker):]
	case f.upperVersion:
		if len(addr) <= checksumLen {
			return 0, "", errors.Wrapf(ErrInvalidEncoding, "%s address %q: invalid length", f.name, addr)
		}
		if lead := addr[:1]; lead != strings.ToUpper(lead) {
			return 0, "", errors.Wrapf(ErrInvalidEncoding, "%s address %q: lower-case version marker", f.name, addr)
		}
		addr = strings.ToLower(addr[:1]) + addr[1:]
	}
	return f.CheckDecode(addr)
}

// Address makes a c32 address: the c32check string with "S" prepended.
func Address(version int, hash160Hex string) (string, error) {
	return C32.Address(version, hash160Hex)
}

// AddressDecode decodes a c32 address.
func AddressDecode(addr string) (int, string, error) {
	return C32.AddressDecode(addr)
}
