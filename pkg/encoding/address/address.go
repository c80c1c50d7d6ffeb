/*
Package address implements Neo address encoding: a script hash in a checked
base58 string with the address prefix as the version byte.
*/
package address

import (
	"fmt"

	"github.com/nspcc-dev/base58codec/pkg/crypto/hash"
	"github.com/nspcc-dev/base58codec/pkg/encoding/base58"
	"github.com/nspcc-dev/base58codec/pkg/util"
)

const (
	// NEO2Prefix is the first byte of an address for NEO2.
	NEO2Prefix byte = 0x17
	// NEO3Prefix is the first byte of an address for NEO3.
	NEO3Prefix byte = 0x35
)

// Prefix is the byte used to prepend to addresses when encoding them, it can
// be changed and defaults to 53 (0x35), the standard NEO prefix.
var Prefix = NEO3Prefix

// Uint160ToString returns the "NEO address" from the given Uint160.
func Uint160ToString(u util.Uint160) string {
	return base58.CheckEncode(u.BytesBE(), Prefix)
}

// StringToUint160 attempts to decode the given NEO address string
// into a Uint160.
func StringToUint160(s string) (u util.Uint160, err error) {
	b, version, err := base58.CheckDecode(s)
	if err != nil {
		return u, err
	}
	if version != Prefix {
		return u, &base58.VersionMismatchError{Expected: Prefix, Actual: version}
	}
	if len(b) != util.Uint160Size {
		return u, fmt.Errorf("invalid address length: expected %d bytes, got %d", util.Uint160Size, len(b))
	}
	return util.Uint160DecodeBytesBE(b)
}

// FromScript returns the address of the given verification script, that is
// an address of its Hash160.
func FromScript(script []byte) string {
	return Uint160ToString(hash.Hash160(script))
}
