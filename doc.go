// Package c32check implements checksummed base-N address encodings: c32
// (Crockford base32), z32 (z-base-32) and base58check, plus conversion of
// addresses between c32 and base58check.
//
// A c32check string is a version symbol followed by the c32 encoding of
// payload+checksum, where the checksum is the first four bytes of
// sha256(sha256(version ‖ payload)). An address is a c32check string of a
// 20-byte hash160 with "S" prepended:
//
//	addr, _ := c32check.Address(c32check.Versions.Mainnet.P2PKH, "a46ff88886c2ef9762d970b4d2c63678835bd39d")
//	// SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7
//
// All functions are pure and safe for concurrent use.
package c32check
