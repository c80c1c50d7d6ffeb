package base58

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// MaxBase is the biggest base supported by converters.
const MaxBase = 1 << 16

// Converter changes the base of a number represented as a sequence of
// digits. Both input and output are big-endian. The result never has
// leading zero digits except for the single zero digit returned for a
// non-empty all-zero input, an empty input gives an empty result. Every
// input digit must be less than from.
type Converter interface {
	Convert(digits []uint32, from, to uint32) []uint32
}

var (
	_ Converter = LongDivision{}
	_ Converter = BigInt{}
	_ Converter = Uint256{}
)

// LongDivision is a Converter doing schoolbook long division over the digit
// array, one pass per output digit.
type LongDivision struct{}

// BigInt is a Converter backed by math/big.
type BigInt struct{}

// Uint256 is a Converter using fixed-width 256-bit arithmetic. Numbers that
// don't fit into 256 bits are handed over to Fallback (LongDivision if nil).
type Uint256 struct {
	Fallback Converter
}

func checkBases(from, to uint32) {
	if from < 2 || from > MaxBase || to < 2 || to > MaxBase {
		panic(fmt.Sprintf("unsupported base conversion %d -> %d", from, to))
	}
}

// Convert implements the Converter interface.
func (LongDivision) Convert(digits []uint32, from, to uint32) []uint32 {
	checkBases(from, to)
	var (
		res    []uint32
		source = digits
		f      = uint64(from)
		t      = uint64(to)
	)
	for len(source) != 0 {
		var (
			quotient  = make([]uint32, 0, len(source))
			remainder uint64
		)
		for _, d := range source {
			acc := uint64(d) + remainder*f
			digit := acc / t
			remainder = acc % t
			if len(quotient) != 0 || digit != 0 {
				quotient = append(quotient, uint32(digit))
			}
		}
		res = append(res, uint32(remainder))
		source = quotient
	}
	reverseDigits(res)
	return res
}

// textDigits are the digits math/big uses for bases up to 62.
const textDigits = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Convert implements the Converter interface.
func (BigInt) Convert(digits []uint32, from, to uint32) []uint32 {
	checkBases(from, to)
	if len(digits) == 0 {
		return nil
	}
	n := new(big.Int)
	switch {
	case from == 256:
		b := make([]byte, len(digits))
		for i, d := range digits {
			b[i] = byte(d)
		}
		n.SetBytes(b)
	case from <= big.MaxBase:
		s := make([]byte, len(digits))
		for i, d := range digits {
			s[i] = textDigits[d]
		}
		n.SetString(string(s), int(from))
	default:
		f := new(big.Int).SetUint64(uint64(from))
		d := new(big.Int)
		for _, v := range digits {
			n.Mul(n, f)
			n.Add(n, d.SetUint64(uint64(v)))
		}
	}
	if n.Sign() == 0 {
		return []uint32{0}
	}

	var res []uint32
	switch {
	case to == 256:
		b := n.Bytes()
		res = make([]uint32, len(b))
		for i := range b {
			res[i] = uint32(b[i])
		}
	case to <= big.MaxBase:
		s := n.Text(int(to))
		res = make([]uint32, len(s))
		for i := 0; i < len(s); i++ {
			res[i] = uint32(textDigitValue(s[i]))
		}
	default:
		t := new(big.Int).SetUint64(uint64(to))
		m := new(big.Int)
		for n.Sign() != 0 {
			n.QuoRem(n, t, m)
			res = append(res, uint32(m.Uint64()))
		}
		reverseDigits(res)
	}
	return res
}

func textDigitValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'z':
		return c - 'a' + 10
	default:
		return c - 'A' + 36
	}
}

// Convert implements the Converter interface.
func (u Uint256) Convert(digits []uint32, from, to uint32) []uint32 {
	checkBases(from, to)
	if len(digits) == 0 {
		return nil
	}
	n, ok := uint256FromDigits(digits, from)
	if !ok {
		fb := u.Fallback
		if fb == nil {
			fb = LongDivision{}
		}
		return fb.Convert(digits, from, to)
	}
	if n.IsZero() {
		return []uint32{0}
	}

	var res []uint32
	if to == 256 {
		b := n.Bytes()
		res = make([]uint32, len(b))
		for i := range b {
			res[i] = uint32(b[i])
		}
		return res
	}
	var (
		t = uint256.NewInt(uint64(to))
		m = new(uint256.Int)
	)
	for !n.IsZero() {
		m.Mod(n, t)
		res = append(res, uint32(m.Uint64()))
		n.Div(n, t)
	}
	reverseDigits(res)
	return res
}

func uint256FromDigits(digits []uint32, from uint32) (*uint256.Int, bool) {
	var i int
	for i < len(digits) && digits[i] == 0 {
		i++
	}
	digits = digits[i:]
	n := new(uint256.Int)
	if from == 256 {
		if len(digits) > 32 {
			return nil, false
		}
		b := make([]byte, len(digits))
		for i, d := range digits {
			b[i] = byte(d)
		}
		return n.SetBytes(b), true
	}
	var (
		f        = uint256.NewInt(uint64(from))
		d        = new(uint256.Int)
		overflow bool
	)
	for _, v := range digits {
		if _, overflow = n.MulOverflow(n, f); overflow {
			return nil, false
		}
		if _, overflow = n.AddOverflow(n, d.SetUint64(uint64(v))); overflow {
			return nil, false
		}
	}
	return n, true
}

func reverseDigits(d []uint32) {
	for i, j := 0, len(d)-1; i < j; i, j = i+1, j-1 {
		d[i], d[j] = d[j], d[i]
	}
}
