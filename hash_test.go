package c32check

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash160(t *testing.T) {
	assert.Equal(t, "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb", hex.EncodeToString(Hash160(nil)))
	assert.Len(t, Hash160([]byte("hello world")), 20)
}

func TestPublicKeyAddress(t *testing.T) {
	pubKey, err := hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	require.NoError(t, err)

	for _, f := range Families {
		addr, err := f.PublicKeyAddress(Versions.Mainnet.P2PKH, pubKey)
		require.NoError(t, err)

		version, h, err := f.AddressDecode(addr)
		require.NoError(t, err)
		assert.Equal(t, Versions.Mainnet.P2PKH, version, f.Name())
		assert.Equal(t, hex.EncodeToString(Hash160(pubKey)), h, f.Name())
	}

	_, err = C32.PublicKeyAddress(32, pubKey)
	assert.ErrorIs(t, err, ErrInvalidVersion)
}
