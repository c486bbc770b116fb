package util

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

const addressHexLen = 40

// IsHexAddress reports whether s is a 0x-prefixed 20 byte hex string.
func IsHexAddress(s string) bool {
	if len(s) != 2+addressHexLen || !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return false
	}
	_, err := hex.DecodeString(s[2:])
	return err == nil
}

// ChecksumAddress returns the EIP-55 mixed case form of a hex address.
func ChecksumAddress(s string) string {
	lower := strings.ToLower(s[2:])
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	sum := h.Sum(nil)

	out := []byte(lower)
	for i, ch := range out {
		if ch < 'a' || ch > 'f' {
			continue
		}
		nibble := sum[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] = ch - 'a' + 'A'
		}
	}
	return "0x" + string(out)
}

// NormalizeAddress validates a wallet address and returns its checksummed
// form. All-lowercase and all-uppercase input skip the checksum test.
func NormalizeAddress(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !IsHexAddress(s) {
		return "", ErrInvalidWalletAddress
	}
	body := s[2:]
	checksummed := ChecksumAddress(s)
	if body != strings.ToLower(body) && body != strings.ToUpper(body) && checksummed != "0x"+body {
		return "", ErrInvalidWalletAddress
	}
	return checksummed, nil
}
