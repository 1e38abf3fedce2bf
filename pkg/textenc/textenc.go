// Package textenc renders byte sequences as printable text and back.
//
// Two encodings are supported: lowercase hexadecimal and URL-safe base64 without padding.
// They are not interoperable, so the producer and consumer of a string must be configured with the same Encoding.
package textenc

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrDecode          = errors.New("invalid encoded text")
	ErrInvalidUTF8     = errors.New("invalid utf8 string")
	ErrUnknownEncoding = errors.New("unknown text encoding")
)

// Encoding selects how bytes are rendered as text.
type Encoding uint8

const (
	// Hex is lowercase hexadecimal, two characters per byte.
	Hex Encoding = iota
	// Base64 is URL-safe base64 with no padding.
	Base64
)

func (e Encoding) String() string {
	switch e {
	case Hex:
		return "hex"
	case Base64:
		return "base64"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(e))
	}
}

// ParseEncoding parses the configuration name of an Encoding.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hex":
		return Hex, nil
	case "base64":
		return Base64, nil
	default:
		return 0, fmt.Errorf("%w: '%s'", ErrUnknownEncoding, name)
	}
}

// Validate returns an error if e isn't a known Encoding.
func (e Encoding) Validate() error {
	switch e {
	case Hex, Base64:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEncoding, e)
	}
}

// Encode renders data as text.
func (e Encoding) Encode(data []byte) string {
	if e == Base64 {
		return base64.RawURLEncoding.EncodeToString(data)
	}
	return hex.EncodeToString(data)
}

// Decode reverses Encode.
// Base64 input with trailing padding is accepted.
func (e Encoding) Decode(text string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch e {
	case Hex:
		data, err = hex.DecodeString(text)
	case Base64:
		data, err = base64.RawURLEncoding.DecodeString(strings.TrimRight(text, "="))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, e)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, e, err)
	}
	return data, nil
}

// UTF8 returns data as a string if it's valid UTF-8.
func UTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}
