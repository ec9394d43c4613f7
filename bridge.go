package c32check

import "github.com/pkg/errors"

// Bridge re-encodes addresses of one family as addresses of another.
// Equivalents maps a From version to the To version that plays the same
// role; the two families number their versions independently.
type Bridge struct {
	From, To    *Family
	Equivalents map[int]int
}

func equivalents(from, to VersionTable) map[int]int {
	return map[int]int{
		from.Mainnet.P2PKH: to.Mainnet.P2PKH,
		from.Mainnet.P2SH:  to.Mainnet.P2SH,
		from.Testnet.P2PKH: to.Testnet.P2PKH,
		from.Testnet.P2SH:  to.Testnet.P2SH,
	}
}

var (
	C32ToB58Bridge = &Bridge{From: C32, To: Base58, Equivalents: equivalents(Versions, BitcoinVersions)}
	B58ToC32Bridge = &Bridge{From: Base58, To: C32, Equivalents: equivalents(BitcoinVersions, Versions)}
)

// Reencode converts addr, choosing the target version from Equivalents.
func (b *Bridge) Reencode(addr string) (string, error) {
	version, hash160Hex, err := b.From.AddressDecode(addr)
	if err != nil {
		return "", err
	}
	target, ok := b.Equivalents[version]
	if !ok {
		return "", errors.Wrapf(ErrInvalidVersion, "no %s equivalent for %s version %d", b.To.name, b.From.name, version)
	}
	return b.To.Address(target, hash160Hex)
}

// ReencodeVersion converts addr using the given target version.
func (b *Bridge) ReencodeVersion(addr string, version int) (string, error) {
	_, hash160Hex, err := b.From.AddressDecode(addr)
	if err != nil {
		return "", err
	}
	return b.To.Address(version, hash160Hex)
}

// C32ToB58 converts a c32 address to the equivalent base58check address.
func C32ToB58(addr string) (string, error) {
	return C32ToB58Bridge.Reencode(addr)
}

// C32ToB58Version converts a c32 address to a base58check address with
// the given version byte.
func C32ToB58Version(addr string, version int) (string, error) {
	return C32ToB58Bridge.ReencodeVersion(addr, version)
}

// B58ToC32 converts a base58check address to the equivalent c32 address.
func B58ToC32(addr string) (string, error) {
	return B58ToC32Bridge.Reencode(addr)
}

// B58ToC32Version converts a base58check address to a c32 address with the
// given version.
func B58ToC32Version(addr string, version int) (string, error) {
	return B58ToC32Bridge.ReencodeVersion(addr, version)
}
