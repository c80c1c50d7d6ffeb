package util

import (
	"encoding/hex"
	"fmt"
)

// Uint160Size is the size of Uint160 in bytes.
const Uint160Size = 20

// Uint160 is a 20 byte long unsigned integer, usually a script hash. It's
// stored in big-endian order.
type Uint160 [Uint160Size]uint8

// Uint160DecodeStringBE attempts to decode the given big-endian hex string
// into an Uint160.
func Uint160DecodeStringBE(s string) (Uint160, error) {
	var u Uint160
	if len(s) != Uint160Size*2 {
		return u, fmt.Errorf("expected string size of %d got %d", Uint160Size*2, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return u, err
	}
	return Uint160DecodeBytesBE(b)
}

// Uint160DecodeStringLE attempts to decode the given little-endian hex string
// into an Uint160.
func Uint160DecodeStringLE(s string) (Uint160, error) {
	var u Uint160
	if len(s) != Uint160Size*2 {
		return u, fmt.Errorf("expected string size of %d got %d", Uint160Size*2, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return u, err
	}
	reverse(b)
	return Uint160DecodeBytesBE(b)
}

// Uint160DecodeBytesBE attempts to decode the given big-endian bytes into
// an Uint160.
func Uint160DecodeBytesBE(b []byte) (u Uint160, err error) {
	if len(b) != Uint160Size {
		return u, fmt.Errorf("expected byte size of %d got %d", Uint160Size, len(b))
	}
	copy(u[:], b)
	return
}

// BytesBE returns a big-endian byte representation of u.
func (u Uint160) BytesBE() []byte {
	return u[:]
}

// BytesLE returns a little-endian byte representation of u.
func (u Uint160) BytesLE() []byte {
	return copyReverse(u[:])
}

// String implements the stringer interface, it's the same as StringBE.
func (u Uint160) String() string {
	return u.StringBE()
}

// StringBE returns a big-endian hex representation of u.
func (u Uint160) StringBE() string {
	return hex.EncodeToString(u.BytesBE())
}

// StringLE returns a little-endian hex representation of u.
func (u Uint160) StringLE() string {
	return hex.EncodeToString(u.BytesLE())
}
