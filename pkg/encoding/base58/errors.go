package base58

import (
	"encoding/hex"
	"errors"
	"fmt"
)

var (
	// ErrInvalidAlphabet is returned when an alphabet doesn't consist of
	// exactly 58 unique characters.
	ErrInvalidAlphabet = errors.New("character set must contain 58 unique characters")
	// ErrInvalidCharacter is returned when the data to decode contains
	// characters outside of the alphabet.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrInvalidFormat is returned when a checked string is too short to
	// contain a version byte and a checksum.
	ErrInvalidFormat = errors.New("invalid format: version and/or checksum bytes missing")
	// ErrChecksumMismatch is returned when the checksum of a checked string
	// doesn't match its contents.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrVersionMismatch is returned when a checked string has a version byte
	// different from the expected one.
	ErrVersionMismatch = errors.New("version mismatch")
	// ErrIntegerOverflow is returned when the decoded integer doesn't fit
	// into 64 bits.
	ErrIntegerOverflow = errors.New("integer overflow")
	// ErrNegativeInteger is returned on attempt to encode a negative integer.
	ErrNegativeInteger = errors.New("negative integer")
)

// InvalidAlphabetError describes a bad alphabet.
type InvalidAlphabetError struct {
	// Size is the number of characters in the alphabet.
	Size int
	// Duplicate is the first repeated character, zero if there are none.
	Duplicate rune
	// InvalidUTF8 is set when the alphabet is not a valid UTF-8 string.
	InvalidUTF8 bool
}

// Error implements the error interface.
func (e *InvalidAlphabetError) Error() string {
	if e.InvalidUTF8 {
		return fmt.Sprintf("%s: not a valid UTF-8 string", ErrInvalidAlphabet)
	}
	if e.Duplicate != 0 {
		return fmt.Sprintf("%s: %q is repeated", ErrInvalidAlphabet, e.Duplicate)
	}
	return fmt.Sprintf("%s: got %d", ErrInvalidAlphabet, e.Size)
}

// Unwrap returns ErrInvalidAlphabet.
func (e *InvalidAlphabetError) Unwrap() error { return ErrInvalidAlphabet }

// InvalidCharacterError lists characters that are not part of the alphabet.
type InvalidCharacterError struct {
	// Chars contains every offending character once, in order of appearance.
	Chars []rune
	// Bytes contains every byte that is not a part of valid UTF-8 sequence
	// once, in order of appearance.
	Bytes []byte
}

// Error implements the error interface.
func (e *InvalidCharacterError) Error() string {
	switch {
	case len(e.Bytes) == 0:
		return fmt.Sprintf("data contains invalid characters %q", string(e.Chars))
	case len(e.Chars) == 0:
		return fmt.Sprintf("data contains invalid UTF-8 bytes %q", string(e.Bytes))
	default:
		return fmt.Sprintf("data contains invalid characters %q and invalid UTF-8 bytes %q",
			string(e.Chars), string(e.Bytes))
	}
}

// Unwrap returns ErrInvalidCharacter.
func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }

// ChecksumMismatchError is returned when the embedded checksum is wrong.
type ChecksumMismatchError struct {
	Expected []byte
	Actual   []byte
}

// Error implements the error interface.
func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum %q does not match the expected %q",
		hex.EncodeToString(e.Actual), hex.EncodeToString(e.Expected))
}

// Unwrap returns ErrChecksumMismatch.
func (e *ChecksumMismatchError) Unwrap() error { return ErrChecksumMismatch }

// VersionMismatchError is returned when the embedded version byte differs
// from the configured one.
type VersionMismatchError struct {
	Expected byte
	Actual   byte
}

// Error implements the error interface.
func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("version %d does not match the expected %d", e.Actual, e.Expected)
}

// Unwrap returns ErrVersionMismatch.
func (e *VersionMismatchError) Unwrap() error { return ErrVersionMismatch }
