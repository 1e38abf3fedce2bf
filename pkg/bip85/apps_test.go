package bip85

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
)

func TestMaster_Mnemonic(t *testing.T) {
	m := parseTestMaster(t)
	tests := map[string]struct {
		words    int
		expected string
	}{
		"12 words": {
			words:    12,
			expected: "girl mad pet galaxy egg matter matrix prison refuse sense ordinary nose",
		},
		"24 words": {
			words:    24,
			expected: "puppy ocean match cereal symbol another shed magic wrap hammer bulb intact gadget divorce twin tonight reason outdoor destroy simple truth cigar social volcano",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			mnemonic, err := m.Mnemonic(tc.words, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, mnemonic)
		})
	}

	eighteen, err := m.Mnemonic(18, 3)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(eighteen), 18)
	assert.True(t, bip39.IsMnemonicValid(eighteen))

	_, err = m.Mnemonic(15, 0)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestMaster_Xpriv(t *testing.T) {
	m := parseTestMaster(t)
	xpriv, err := m.Xpriv(0)
	require.NoError(t, err)
	assert.Regexp(t, `^xprv`, xpriv)

	child, err := ParseMaster(xpriv)
	require.NoError(t, err)
	assert.Equal(t, xpriv, child.Serialize())
	assert.Equal(t, uint8(0), child.key.Depth())

	next, err := m.Xpriv(1)
	require.NoError(t, err)
	assert.NotEqual(t, xpriv, next)
}

func TestMaster_WIF(t *testing.T) {
	m := parseTestMaster(t)
	addr, pk, err := m.WIF(0)
	require.NoError(t, err)
	assert.Equal(t, "Kzyv4uF39d4Jrw2W7UryTHwZr1zQVNk4dAFyqE6BuMrMh1Za7uhp", pk)
	assert.Regexp(t, `^3`, addr)

	wif, err := btcutil.DecodeWIF(pk)
	require.NoError(t, err)
	assert.True(t, wif.CompressPubKey)

	again, _, err := m.WIF(0)
	require.NoError(t, err)
	assert.Equal(t, addr, again)
}

func TestMaster_Password(t *testing.T) {
	m := parseTestMaster(t)
	pwd, err := m.Password(20, 2)
	require.NoError(t, err)
	assert.Len(t, pwd, 20)
	for _, c := range pwd {
		assert.Contains(t, base85Alphabet, string(c))
	}

	longest, err := m.Password(MaxPasswordLength, 2)
	require.NoError(t, err)
	assert.Len(t, longest, MaxPasswordLength)
	assert.NotEqual(t, pwd, longest[:20], "Length is part of the derivation path")

	_, err = m.Password(MinPasswordLength-1, 0)
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = m.Password(MaxPasswordLength+1, 0)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestMaster_EmojiPassword(t *testing.T) {
	m := parseTestMaster(t)
	pwd, err := m.EmojiPassword(20, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, utf8.RuneCountInString(pwd))

	allowed := map[rune]bool{}
	for _, e := range emoji {
		r, _ := utf8.DecodeRuneInString(e)
		allowed[r] = true
	}
	for _, r := range pwd {
		assert.True(t, allowed[r], "Unexpected rune %q", r)
	}

	again, err := m.EmojiPassword(20, 1)
	require.NoError(t, err)
	assert.Equal(t, pwd, again)

	_, err = m.EmojiPassword(MaxEmojiLength+1, 0)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestMaster_IndexOutOfRange(t *testing.T) {
	m := parseTestMaster(t)
	const index uint32 = 1 << 31
	_, err := m.Mnemonic(24, index)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = m.Xpriv(index)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, _, err = m.WIF(index)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = m.Password(20, index)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = m.EmojiPassword(20, index)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
