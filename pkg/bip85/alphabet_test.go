package bip85

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestEncodeBase85(t *testing.T) {
	tests := map[string]struct {
		given    []byte
		expected string
	}{
		"Empty":         {given: nil, expected: ""},
		"Two chunks":    {given: []byte{0, 1, 2, 3, 4, 5, 6, 7}, expected: "009C61O)~M"},
		"Max chunk":     {given: []byte{0xff, 0xff, 0xff, 0xff}, expected: "|NsC0"},
		"Partial chunk": {given: []byte("ab"), expected: "VPX"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, encodeBase85(tc.given))
		})
	}
	assert.Len(t, encodeBase85(make([]byte, 64)), 80)
}

func TestEmojiAlphabet(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range emoji {
		assert.Equal(t, 1, utf8.RuneCountInString(e), e)
		assert.False(t, seen[e], "Duplicate emoji %s", e)
		seen[e] = true
	}
	assert.Len(t, base85Alphabet, 85)
}
