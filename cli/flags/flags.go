/*
Package flags contains parsers for CLI flag and argument values.
*/
package flags

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// ParseByte parses a byte given in decimal or with 0x (hex), 0o (octal) or
// 0b (binary) prefix.
func ParseByte(s string) (byte, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid byte value %q: %w", s, err)
	}
	return byte(v), nil
}

// ParseHex decodes a hex string with an optional 0x prefix.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string: %w", err)
	}
	return b, nil
}
