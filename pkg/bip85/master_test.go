package bip85

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test vectors published with BIP85.
const testMaster = "xprv9s21ZrQH143K2LBWUUQRFXhucrQqBpKdRRxNVq2zBqsx8HVqFk2uYo8kmbaLLHRdqtQpUm98uKfu3vca1LqdGhUtyoFnCNkfmXRyPXLjbKb"

func parseTestMaster(t *testing.T) *Master {
	t.Helper()
	m, err := ParseMaster(testMaster)
	require.NoError(t, err)
	return m
}

func TestParseMaster(t *testing.T) {
	m := parseTestMaster(t)
	assert.Equal(t, testMaster, m.Serialize())
}

func TestParseMaster_Neg(t *testing.T) {
	m := parseTestMaster(t)
	pub, err := m.key.Neuter()
	require.NoError(t, err)

	tests := map[string]string{
		"Empty":      "",
		"Garbage":    "not a key",
		"Bad check":  testMaster[:len(testMaster)-1] + "c",
		"Public key": pub.String(),
	}
	for name, given := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMaster(given)
			assert.ErrorIs(t, err, ErrInvalidMaster)
		})
	}
}

func TestMaster_Redacted(t *testing.T) {
	m := parseTestMaster(t)
	for _, verb := range []string{"%v", "%s", "%#v", "%+v"} {
		assert.NotContains(t, fmt.Sprintf(verb, m), testMaster[4:20], verb)
	}
}

func TestNewMaster(t *testing.T) {
	seed := make([]byte, 64)
	a, err := NewMaster(seed)
	require.NoError(t, err)
	b, err := NewMaster(seed)
	require.NoError(t, err)
	assert.Equal(t, a.Serialize(), b.Serialize())
	assert.Regexp(t, `^xprv`, a.Serialize())

	_, err = NewMaster(make([]byte, 8))
	assert.ErrorIs(t, err, ErrInvalidMaster)
}

func TestFromMnemonic(t *testing.T) {
	// BIP39 reference vector.
	const (
		mnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
		expected = "xprv9s21ZrQH143K3h3fDYiay8mocZ3afhfULfb5GX8kCBdno77K4HiA15Tg23wpbeF1pLfs1c5SPmYHrEpTuuRhxMwvKDwqdKiGJS9XFKzUsAF"
	)
	m, err := FromMnemonic(mnemonic, "TREZOR")
	require.NoError(t, err)
	assert.Equal(t, expected, m.Serialize())

	other, err := FromMnemonic(mnemonic, "")
	require.NoError(t, err)
	assert.NotEqual(t, expected, other.Serialize())

	_, err = FromMnemonic("abandon abandon abandon", "")
	assert.ErrorIs(t, err, ErrInvalidMnemonic)
	_, err = FromMnemonic("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon", "")
	assert.ErrorIs(t, err, ErrInvalidMnemonic, "Checksum must be verified")
}

func TestMaster_Entropy(t *testing.T) {
	m := parseTestMaster(t)
	entropy, err := m.Entropy(0, 0)
	require.NoError(t, err)
	assert.Equal(t,
		"efecfbccffea313214232d29e71563d941229afb4338c21f9517c41aaa0d16f00b83d2a09ef747e7a64e8e2bd5a14869e693da66ce94ac2da570ab7ee48618f7",
		hex.EncodeToString(entropy),
	)

	other, err := m.Entropy(0, 1)
	require.NoError(t, err)
	assert.NotEqual(t, entropy, other)

	_, err = m.Entropy(0, hdkeychain.HardenedKeyStart)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestValidateKey(t *testing.T) {
	assert.ErrorIs(t, validateKey(make([]byte, 32)), ErrInvalidKey)
	order, err := hex.DecodeString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	require.NoError(t, err)
	assert.ErrorIs(t, validateKey(order), ErrInvalidKey)
	order[31]--
	assert.NoError(t, validateKey(order))
}
