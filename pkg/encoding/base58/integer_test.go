package base58

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeInteger(t *testing.T) {
	for _, tc := range []struct {
		n uint64
		s string
	}{
		{0, "1"},
		{1, "2"},
		{57, "z"},
		{58, "21"},
		{3471, "22r"},
		{math.MaxInt64, "NQm6nKp8qFC"},
		{math.MaxUint64, "jpXCZedGfVQ"},
	} {
		for name, conv := range converters {
			c := MustNew(Config{Converter: conv})
			require.Equal(t, tc.s, c.EncodeInteger(tc.n), name)

			n, err := c.DecodeInteger(tc.s)
			require.NoError(t, err)
			require.Equal(t, tc.n, n)
		}
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	for _, alphabet := range AlphabetNames() {
		c := MustNew(Config{Alphabet: alphabet})
		for _, n := range []uint64{0, 1, 58, 3471, math.MaxInt64} {
			n2, err := c.DecodeInteger(c.EncodeInteger(n))
			require.NoError(t, err)
			require.Equal(t, n, n2)
		}
	}
}

func TestIntegerIgnoresCheck(t *testing.T) {
	plain := MustNew(Config{})
	checked := MustNew(Config{Check: true, Version: 0x42})
	require.Equal(t, plain.EncodeInteger(3471), checked.EncodeInteger(3471))

	n, err := checked.DecodeInteger("22r")
	require.NoError(t, err)
	require.Equal(t, uint64(3471), n)
}

func TestDecodeIntegerEdgeCases(t *testing.T) {
	c := MustNew(Config{})

	n, err := c.DecodeInteger("")
	require.NoError(t, err)
	require.Equal(t, uint64(0), n)

	n, err = c.DecodeInteger("11122r")
	require.NoError(t, err)
	require.Equal(t, uint64(3471), n)

	_, err = c.DecodeInteger("22r0")
	require.ErrorIs(t, err, ErrInvalidCharacter)

	// 2^64
	_, err = c.DecodeInteger("jpXCZedGfVR")
	require.ErrorIs(t, err, ErrIntegerOverflow)

	_, err = c.DecodeInteger(strings.Repeat("z", 20))
	require.ErrorIs(t, err, ErrIntegerOverflow)
}

func TestBigInt(t *testing.T) {
	c := MustNew(Config{})
	two64 := new(big.Int).Lsh(big.NewInt(1), 64)

	s, err := c.EncodeBigInt(two64)
	require.NoError(t, err)
	require.Equal(t, "jpXCZedGfVR", s)

	n, err := c.DecodeBigInt(s)
	require.NoError(t, err)
	require.Equal(t, 0, two64.Cmp(n))

	s, err = c.EncodeBigInt(big.NewInt(0))
	require.NoError(t, err)
	require.Equal(t, "1", s)

	n, err = c.DecodeBigInt("")
	require.NoError(t, err)
	require.Equal(t, 0, n.Sign())

	_, err = c.EncodeBigInt(big.NewInt(-1))
	require.ErrorIs(t, err, ErrNegativeInteger)

	_, err = c.DecodeBigInt("0")
	require.ErrorIs(t, err, ErrInvalidCharacter)

	for _, v := range []uint64{0, 1, 58, 3471, math.MaxUint64} {
		s, err := c.EncodeBigInt(new(big.Int).SetUint64(v))
		require.NoError(t, err)
		require.Equal(t, c.EncodeInteger(v), s)
	}
}

// decodeIntegerDecimal converts the number into base 10 digits first and then
// parses the decimal string.
func decodeIntegerDecimal(c *Codec, s string) (uint64, error) {
	digits, err := c.alphabet.digits(s)
	if err != nil {
		return 0, err
	}
	var sb strings.Builder
	for _, d := range (LongDivision{}).Convert(digits, Radix, 10) {
		sb.WriteByte(byte('0' + d))
	}
	if sb.Len() == 0 {
		return 0, nil
	}
	return strconv.ParseUint(sb.String(), 10, 64)
}

// decodeIntegerHex converts the number via a base 16 intermediate.
func decodeIntegerHex(c *Codec, s string) (uint64, error) {
	digits, err := c.alphabet.digits(s)
	if err != nil {
		return 0, err
	}
	var sb strings.Builder
	for _, d := range (LongDivision{}).Convert(digits, Radix, 16) {
		sb.WriteString(strconv.FormatUint(uint64(d), 16))
	}
	if sb.Len() == 0 {
		return 0, nil
	}
	return strconv.ParseUint(sb.String(), 16, 64)
}

func TestDecodeIntegerPathsEquivalence(t *testing.T) {
	var (
		c      = MustNew(Config{})
		r      = rand.New(rand.NewSource(58))
		values = []uint64{0, 1, 9, 10, 15, 16, 57, 58, 255, 256, 3471, math.MaxUint32, math.MaxInt64, math.MaxUint64 - 1, math.MaxUint64}
	)
	for i := 0; i < 64; i++ {
		values = append(values, uint64(1)<<i, uint64(1)<<i-1)
	}
	for i := 0; i < 5000; i++ {
		values = append(values, r.Uint64()>>r.Intn(64))
	}
	for _, v := range values {
		s := c.EncodeInteger(v)

		direct, err := c.DecodeInteger(s)
		require.NoError(t, err)
		dec, err := decodeIntegerDecimal(c, s)
		require.NoError(t, err)
		hex, err := decodeIntegerHex(c, s)
		require.NoError(t, err)

		require.Equal(t, v, direct, s)
		require.Equal(t, direct, dec, s)
		require.Equal(t, direct, hex, s)
	}
}

func ExampleCodec_EncodeInteger() {
	c := MustNew(Config{})
	s := c.EncodeInteger(3471)
	n, _ := c.DecodeInteger(s)
	fmt.Println(s, n)
	// Output: 22r 3471
}
