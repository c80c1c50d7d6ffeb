package base58

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Radix is the number of characters in any base58 alphabet.
const Radix = 58

// Well-known alphabets.
const (
	// BitcoinAlphabet is used by Bitcoin, Neo and IPFS. It's the default one.
	BitcoinAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	// FlickrAlphabet is used for Flickr short URLs.
	FlickrAlphabet = "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"
	// RippleAlphabet is used for Ripple addresses.
	RippleAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"
	// GMPAlphabet is the digit set GMP uses for base 58 numbers.
	GMPAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuv"
)

var namedAlphabets = map[string]string{
	"bitcoin": BitcoinAlphabet,
	"ipfs":    BitcoinAlphabet,
	"flickr":  FlickrAlphabet,
	"ripple":  RippleAlphabet,
	"gmp":     GMPAlphabet,
}

// Alphabet is an immutable bidirectional mapping between digit values
// 0..57 and characters.
type Alphabet struct {
	chars [Radix]rune
	ascii [utf8.RuneSelf]int8
	other map[rune]uint8
}

// NewAlphabet creates an Alphabet from the string of 58 unique characters.
func NewAlphabet(s string) (*Alphabet, error) {
	n := utf8.RuneCountInString(s)
	if !utf8.ValidString(s) {
		return nil, &InvalidAlphabetError{Size: n, InvalidUTF8: true}
	}
	if n != Radix {
		return nil, &InvalidAlphabetError{Size: n}
	}
	a := &Alphabet{other: make(map[rune]uint8)}
	for i := range a.ascii {
		a.ascii[i] = -1
	}
	var i int
	for _, r := range s {
		if _, ok := a.index(r); ok {
			return nil, &InvalidAlphabetError{Size: n, Duplicate: r}
		}
		a.chars[i] = r
		if r < utf8.RuneSelf {
			a.ascii[r] = int8(i)
		} else {
			a.other[r] = uint8(i)
		}
		i++
	}
	return a, nil
}

// AlphabetByName returns one of the well-known alphabets by its name
// (case-insensitive). The second value is false for unknown names.
func AlphabetByName(name string) (string, bool) {
	s, ok := namedAlphabets[strings.ToLower(name)]
	return s, ok
}

// AlphabetNames returns a sorted list of well-known alphabet names.
func AlphabetNames() []string {
	names := make([]string, 0, len(namedAlphabets))
	for name := range namedAlphabets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns all characters of the alphabet in digit order.
func (a *Alphabet) String() string {
	return string(a.chars[:])
}

// Zero returns the character standing for digit 0.
func (a *Alphabet) Zero() rune {
	return a.chars[0]
}

// Contains checks whether r belongs to the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index(r)
	return ok
}

func (a *Alphabet) index(r rune) (uint32, bool) {
	if r >= 0 && r < utf8.RuneSelf {
		d := a.ascii[r]
		return uint32(d), d >= 0
	}
	d, ok := a.other[r]
	return uint32(d), ok
}

// digits maps s to digit values. Characters outside of the alphabet and
// bytes that are not valid UTF-8 are collected (each once) into an
// InvalidCharacterError.
func (a *Alphabet) digits(s string) ([]uint32, error) {
	var (
		res      = make([]uint32, 0, len(s))
		invalid  []rune
		badBytes []byte
	)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			if !containsByte(badBytes, s[i]) {
				badBytes = append(badBytes, s[i])
			}
			i++
			continue
		}
		i += size
		d, ok := a.index(r)
		if !ok {
			if !containsRune(invalid, r) {
				invalid = append(invalid, r)
			}
			continue
		}
		res = append(res, d)
	}
	if len(invalid) != 0 || len(badBytes) != 0 {
		return nil, &InvalidCharacterError{Chars: invalid, Bytes: badBytes}
	}
	return res, nil
}

// text maps digit values back to characters, prepending zeros copies of the
// zero character.
func (a *Alphabet) text(zeros int, digits []uint32) string {
	var sb strings.Builder
	sb.Grow(zeros + len(digits))
	for i := 0; i < zeros; i++ {
		sb.WriteRune(a.chars[0])
	}
	for _, d := range digits {
		sb.WriteRune(a.chars[d])
	}
	return sb.String()
}

func containsRune(rs []rune, r rune) bool {
	for i := range rs {
		if rs[i] == r {
			return true
		}
	}
	return false
}

func containsByte(bs []byte, b byte) bool {
	for i := range bs {
		if bs[i] == b {
			return true
		}
	}
	return false
}
