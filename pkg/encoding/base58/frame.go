package base58

import (
	"bytes"

	"github.com/nspcc-dev/base58codec/pkg/crypto/hash"
)

const (
	// VersionSize is the size of the version prefix of a checked string.
	VersionSize = 1
	// ChecksumSize is the size of the checksum suffix of a checked string.
	ChecksumSize = 4
)

// Frame is a checked payload: version byte, payload and the first 4 bytes of
// double SHA-256 of both.
type Frame struct {
	Version  byte
	Payload  []byte
	Checksum [ChecksumSize]byte
}

// NewFrame creates a Frame with a proper checksum.
func NewFrame(version byte, payload []byte) Frame {
	f := Frame{Version: version, Payload: payload}
	copy(f.Checksum[:], f.expected())
	return f
}

// SplitFrame cuts b into version, payload and checksum without verifying
// anything but the length. The payload shares memory with b.
func SplitFrame(b []byte) (Frame, error) {
	var f Frame
	if len(b) < VersionSize+ChecksumSize {
		return f, ErrInvalidFormat
	}
	f.Version = b[0]
	f.Payload = b[VersionSize : len(b)-ChecksumSize]
	copy(f.Checksum[:], b[len(b)-ChecksumSize:])
	return f, nil
}

// ParseFrame splits b with SplitFrame and verifies the checksum.
func ParseFrame(b []byte) (Frame, error) {
	f, err := SplitFrame(b)
	if err != nil {
		return f, err
	}
	return f, f.Verify()
}

// Bytes returns the serialized frame.
func (f Frame) Bytes() []byte {
	b := make([]byte, 0, VersionSize+len(f.Payload)+ChecksumSize)
	b = append(b, f.Version)
	b = append(b, f.Payload...)
	return append(b, f.Checksum[:]...)
}

// Verify checks the frame's checksum.
func (f Frame) Verify() error {
	exp := f.expected()
	if !bytes.Equal(exp, f.Checksum[:]) {
		return &ChecksumMismatchError{
			Expected: exp,
			Actual:   append([]byte(nil), f.Checksum[:]...),
		}
	}
	return nil
}

func (f Frame) expected() []byte {
	b := make([]byte, 0, VersionSize+len(f.Payload))
	b = append(b, f.Version)
	b = append(b, f.Payload...)
	return hash.Checksum(b)
}
