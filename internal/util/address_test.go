package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checksumVectors = []string{
	"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
	"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
	"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
}

func TestChecksumAddress(t *testing.T) {
	for _, want := range checksumVectors {
		assert.Equal(t, want, ChecksumAddress(strings.ToLower(want)))
		assert.Equal(t, want, ChecksumAddress("0x"+strings.ToUpper(want[2:])))
	}
}

func TestNormalizeAddress(t *testing.T) {
	for _, addr := range checksumVectors {
		got, err := NormalizeAddress(addr)
		require.NoError(t, err)
		assert.Equal(t, addr, got)

		got, err = NormalizeAddress(strings.ToLower(addr))
		require.NoError(t, err)
		assert.Equal(t, addr, got)
	}

	bad := []string{
		"",
		"0x123",
		"5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xZZAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0x5AAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	}
	for _, addr := range bad {
		_, err := NormalizeAddress(addr)
		assert.ErrorIs(t, err, ErrInvalidWalletAddress, addr)
	}
}
