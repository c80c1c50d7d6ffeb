/*
Package base58 implements base58 encoding of byte strings and integers with
configurable alphabets and an optional checked mode (version byte plus
double SHA-256 checksum) used by addresses and WIF keys.
*/
package base58

import (
	"fmt"
)

// Config is a codec configuration. Its zero value is a plain codec using
// BitcoinAlphabet.
type Config struct {
	// Alphabet is either a well-known alphabet name (see AlphabetNames) or
	// a string of 58 unique characters. Empty means BitcoinAlphabet.
	Alphabet string `yaml:"Alphabet"`
	// Check enables checked mode for byte strings.
	Check bool `yaml:"Check"`
	// Version is the version byte used in checked mode.
	Version byte `yaml:"Version"`
	// Converter is the base conversion backend, BigInt if nil.
	Converter Converter `yaml:"-"`
}

// Codec encodes and decodes base58 data. It's immutable and can be used
// concurrently.
type Codec struct {
	alphabet  *Alphabet
	check     bool
	version   byte
	converter Converter
}

var plain = MustNew(Config{})

// New creates a Codec from the given configuration, an error is returned for
// an invalid alphabet.
func New(cfg Config) (*Codec, error) {
	chars := cfg.Alphabet
	if chars == "" {
		chars = BitcoinAlphabet
	} else if named, ok := AlphabetByName(chars); ok {
		chars = named
	}
	a, err := NewAlphabet(chars)
	if err != nil {
		return nil, err
	}
	conv := cfg.Converter
	if conv == nil {
		conv = BigInt{}
	}
	return &Codec{
		alphabet:  a,
		check:     cfg.Check,
		version:   cfg.Version,
		converter: conv,
	}, nil
}

// MustNew is like New, but panics on error.
func MustNew(cfg Config) *Codec {
	c, err := New(cfg)
	if err != nil {
		panic(fmt.Errorf("base58: %w", err))
	}
	return c
}

// Config returns the effective codec configuration with the alphabet
// spelled out.
func (c *Codec) Config() Config {
	return Config{
		Alphabet:  c.alphabet.String(),
		Check:     c.check,
		Version:   c.version,
		Converter: c.converter,
	}
}

// Alphabet returns the codec's alphabet.
func (c *Codec) Alphabet() *Alphabet {
	return c.alphabet
}

// Encode encodes b, framing it first in checked mode.
func (c *Codec) Encode(b []byte) string {
	if c.check {
		b = NewFrame(c.version, b).Bytes()
	}
	return c.encode(b)
}

// Decode decodes s. In checked mode the checksum and the version are
// verified and only the payload is returned.
func (c *Codec) Decode(s string) ([]byte, error) {
	b, err := c.decode(s)
	if err != nil {
		return nil, err
	}
	if !c.check {
		return b, nil
	}
	f, err := ParseFrame(b)
	if err != nil {
		return nil, err
	}
	if f.Version != c.version {
		return nil, &VersionMismatchError{Expected: c.version, Actual: f.Version}
	}
	return f.Payload, nil
}

func (c *Codec) encode(b []byte) string {
	var zeros int
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}
	digits := c.converter.Convert(bytesToDigits(b[zeros:]), 256, Radix)
	return c.alphabet.text(zeros, digits)
}

func (c *Codec) decode(s string) ([]byte, error) {
	digits, err := c.alphabet.digits(s)
	if err != nil {
		return nil, err
	}
	var zeros int
	for zeros < len(digits) && digits[zeros] == 0 {
		zeros++
	}
	conv := c.converter.Convert(digits[zeros:], Radix, 256)
	b := make([]byte, zeros, zeros+len(conv))
	for _, d := range conv {
		b = append(b, byte(d))
	}
	return b, nil
}

// Encode encodes b using BitcoinAlphabet.
func Encode(b []byte) string {
	return plain.encode(b)
}

// Decode decodes s using BitcoinAlphabet.
func Decode(s string) ([]byte, error) {
	return plain.decode(s)
}

// CheckEncode encodes b in checked mode with the given version using
// BitcoinAlphabet.
func CheckEncode(b []byte, version byte) string {
	return plain.encode(NewFrame(version, b).Bytes())
}

// CheckDecode decodes a checked string using BitcoinAlphabet. It verifies
// the checksum, but accepts any version, returning it to the caller.
func CheckDecode(s string) ([]byte, byte, error) {
	b, err := plain.decode(s)
	if err != nil {
		return nil, 0, err
	}
	f, err := ParseFrame(b)
	if err != nil {
		return nil, 0, err
	}
	return f.Payload, f.Version, nil
}

func bytesToDigits(b []byte) []uint32 {
	digits := make([]uint32, len(b))
	for i := range b {
		digits[i] = uint32(b[i])
	}
	return digits
}
