package base58

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// EncodeInteger encodes n as a base58 number. Integers are never framed,
// checked mode doesn't affect them. Zero is encoded as a single zero
// character.
func (c *Codec) EncodeInteger(n uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n)
	digits := c.converter.Convert(bytesToDigits(buf[:]), 256, Radix)
	return c.alphabet.text(0, digits)
}

// DecodeInteger decodes a base58 number. An empty string is zero, numbers
// exceeding 64 bits are rejected with ErrIntegerOverflow.
func (c *Codec) DecodeInteger(s string) (uint64, error) {
	digits, err := c.alphabet.digits(s)
	if err != nil {
		return 0, err
	}
	var n uint64
	for _, d := range digits {
		hi, lo := bits.Mul64(n, Radix)
		if hi != 0 {
			return 0, ErrIntegerOverflow
		}
		var carry uint64
		n, carry = bits.Add64(lo, uint64(d), 0)
		if carry != 0 {
			return 0, ErrIntegerOverflow
		}
	}
	return n, nil
}

// EncodeBigInt is EncodeInteger for arbitrary non-negative integers.
func (c *Codec) EncodeBigInt(n *big.Int) (string, error) {
	if n.Sign() < 0 {
		return "", ErrNegativeInteger
	}
	b := n.Bytes()
	if len(b) == 0 {
		b = []byte{0}
	}
	return c.alphabet.text(0, c.converter.Convert(bytesToDigits(b), 256, Radix)), nil
}

// DecodeBigInt is DecodeInteger without the 64-bit limit.
func (c *Codec) DecodeBigInt(s string) (*big.Int, error) {
	digits, err := c.alphabet.digits(s)
	if err != nil {
		return nil, err
	}
	conv := c.converter.Convert(digits, Radix, 256)
	b := make([]byte, len(conv))
	for i, d := range conv {
		b[i] = byte(d)
	}
	return new(big.Int).SetBytes(b), nil
}
