package seal

import (
	"errors"

	"github.com/saylorsolutions/keyshield/pkg/textenc"
)

var ErrNilEncryptor = errors.New("nil encryptor")

// TextSealer seals strings into encoded text, and opens them again.
type TextSealer struct {
	enc      *Encryptor
	encoding textenc.Encoding
}

func NewTextSealer(enc *Encryptor, encoding textenc.Encoding) (*TextSealer, error) {
	if enc == nil {
		return nil, ErrNilEncryptor
	}
	if err := encoding.Validate(); err != nil {
		return nil, err
	}
	return &TextSealer{enc: enc, encoding: encoding}, nil
}

// Encoding returns the text encoding in effect.
func (s *TextSealer) Encoding() textenc.Encoding {
	return s.encoding
}

// SealString seals content and renders the sealed payload as text.
func (s *TextSealer) SealString(content string) (string, error) {
	sealed, err := s.enc.Seal([]byte(content))
	if err != nil {
		return "", err
	}
	return s.encoding.Encode(sealed), nil
}

// OpenString reverses SealString.
func (s *TextSealer) OpenString(text string) (string, error) {
	sealed, err := s.encoding.Decode(text)
	if err != nil {
		return "", err
	}
	data, err := s.enc.Open(sealed)
	if err != nil {
		return "", err
	}
	return textenc.UTF8(data)
}

// Encrypt seals content when doEncrypt is true, and opens it otherwise.
func (s *TextSealer) Encrypt(content string, doEncrypt bool) (string, error) {
	if doEncrypt {
		return s.SealString(content)
	}
	return s.OpenString(content)
}
