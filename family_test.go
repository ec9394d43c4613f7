package c32check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilyByName(t *testing.T) {
	for _, f := range Families {
		got, err := FamilyByName(f.Name())
		require.NoError(t, err)
		assert.Same(t, f, got)
	}

	_, err := FamilyByName("b64")
	assert.Error(t, err)
}

func TestFamilyAlphabets(t *testing.T) {
	for _, f := range Families {
		seen := map[byte]bool{}
		for i := 0; i < len(f.Alphabet()); i++ {
			c := f.Alphabet()[i]
			assert.False(t, seen[c], "%s: duplicate symbol %q", f.Name(), c)
			seen[c] = true
			assert.Equal(t, i, f.digit(c))
		}
	}

	assert.Len(t, C32.Alphabet(), 32)
	assert.Len(t, Z32.Alphabet(), 32)
	assert.Len(t, Base58.Alphabet(), 58)
	assert.Equal(t, 32, C32.MaxVersion())
	assert.Equal(t, 256, Base58.MaxVersion())
}
