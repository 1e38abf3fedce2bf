package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEncoding(t *testing.T) {
	tests := map[string]struct {
		given     string
		expected  Encoding
		expectErr bool
	}{
		"Hex":        {given: "hex", expected: Hex},
		"Base64":     {given: "base64", expected: Base64},
		"Mixed case": {given: " Base64 ", expected: Base64},
		"Unknown":    {given: "base32", expectErr: true},
		"Empty":      {given: "", expectErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			enc, err := ParseEncoding(tc.given)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrUnknownEncoding)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, enc)
			assert.Equal(t, tc.expected.String(), enc.String())
		})
	}
}

func TestEncoding_RoundTrip(t *testing.T) {
	data := []byte{0x00, 0xde, 0xad, 0xbe, 0xef, 0xff, 0xfb}
	for _, enc := range []Encoding{Hex, Base64} {
		t.Run(enc.String(), func(t *testing.T) {
			text := enc.Encode(data)
			decoded, err := enc.Decode(text)
			require.NoError(t, err)
			assert.Equal(t, data, decoded)

			empty, err := enc.Decode(enc.Encode(nil))
			require.NoError(t, err)
			assert.Empty(t, empty)
		})
	}
}

func TestEncoding_Format(t *testing.T) {
	data := []byte{0xfb, 0xff, 0xbf}
	assert.Equal(t, "fbffbf", Hex.Encode(data))
	assert.Equal(t, "-_-_", Base64.Encode(data))
	assert.Equal(t, "AQ", Base64.Encode([]byte{0x01}))
}

func TestEncoding_DecodePadded(t *testing.T) {
	decoded, err := Base64.Decode("AQ==")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, decoded)
}

func TestEncoding_DecodeNeg(t *testing.T) {
	_, err := Hex.Decode("not hex")
	assert.ErrorIs(t, err, ErrDecode)
	_, err = Hex.Decode("abc")
	assert.ErrorIs(t, err, ErrDecode)
	_, err = Base64.Decode("a+b/")
	assert.ErrorIs(t, err, ErrDecode)
	_, err = Encoding(9).Decode("00")
	assert.ErrorIs(t, err, ErrUnknownEncoding)
	assert.ErrorIs(t, Encoding(9).Validate(), ErrUnknownEncoding)
	assert.NoError(t, Base64.Validate())
}

func TestEncoding_NotInteroperable(t *testing.T) {
	text := Base64.Encode([]byte("hello world"))
	_, err := Hex.Decode(text)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestUTF8(t *testing.T) {
	s, err := UTF8([]byte("héllo ⚡"))
	assert.NoError(t, err)
	assert.Equal(t, "héllo ⚡", s)

	_, err = UTF8([]byte{0xff, 0xfe})
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}
