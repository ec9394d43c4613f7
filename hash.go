package c32check

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/ripemd160"
)

// Hash160 returns ripemd160(sha256(data)).
func Hash160(data []byte) []byte {
	publicSHA256 := sha256.Sum256(data)

	hasher := ripemd160.New()
	// hash.Hash writes never fail
	_, _ = hasher.Write(publicSHA256[:])
	return hasher.Sum(nil)
}

// PublicKeyAddress returns the address of a serialized public key.
func (f *Family) PublicKeyAddress(version int, pubKey []byte) (string, error) {
	return f.Address(version, hex.EncodeToString(Hash160(pubKey)))
}
