package bip85

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/tyler-smith/go-bip39"
)

const (
	MinPasswordLength = 10
	MaxPasswordLength = 80
	MinEmojiLength    = 10
	MaxEmojiLength    = 64
)

// Mnemonic derives an English BIP39 phrase with 12, 18, or 24 words.
func (m *Master) Mnemonic(words int, index uint32) (string, error) {
	switch words {
	case 12, 18, 24:
	default:
		return "", fmt.Errorf("%w: %d words, expected 12, 18, or 24", ErrInvalidLength, words)
	}
	entropy, err := m.Entropy(AppBIP39, EnglishLanguage, uint32(words), index)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy[:words*4/3])
}

// Xpriv derives a serialized extended private key.
func (m *Master) Xpriv(index uint32) (string, error) {
	entropy, err := m.Entropy(AppXprv, index)
	if err != nil {
		return "", err
	}
	chainCode, key := entropy[:32], entropy[32:]
	if err := validateKey(key); err != nil {
		return "", err
	}
	xpriv := hdkeychain.NewExtendedKey(network.HDPrivateKeyID[:], key, chainCode, []byte{0, 0, 0, 0}, 0, 0, true)
	return xpriv.String(), nil
}

// WIF derives a private key in wallet import format, along with the P2SH-P2WPKH address of its public key.
func (m *Master) WIF(index uint32) (address string, privateKey string, err error) {
	entropy, err := m.Entropy(AppWIF, index)
	if err != nil {
		return "", "", err
	}
	key := entropy[:32]
	if err := validateKey(key); err != nil {
		return "", "", err
	}
	priv, pub := btcec.PrivKeyFromBytes(key)
	wif, err := btcutil.NewWIF(priv, network, true)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode WIF: %w", err)
	}
	redeemScript := append([]byte{0x00, 0x14}, btcutil.Hash160(pub.SerializeCompressed())...)
	addr, err := btcutil.NewAddressScriptHash(redeemScript, network)
	if err != nil {
		return "", "", fmt.Errorf("failed to create address: %w", err)
	}
	return addr.EncodeAddress(), wif.String(), nil
}

// Password derives a base85 password of the given length.
func (m *Master) Password(length int, index uint32) (string, error) {
	if length < MinPasswordLength || length > MaxPasswordLength {
		return "", fmt.Errorf("%w: password length %d is not within [%d, %d]", ErrInvalidLength, length, MinPasswordLength, MaxPasswordLength)
	}
	entropy, err := m.Entropy(AppPwdBase85, uint32(length), index)
	if err != nil {
		return "", err
	}
	return encodeBase85(entropy)[:length], nil
}

// EmojiPassword derives a password of the given number of emoji.
func (m *Master) EmojiPassword(length int, index uint32) (string, error) {
	if length < MinEmojiLength || length > MaxEmojiLength {
		return "", fmt.Errorf("%w: emoji length %d is not within [%d, %d]", ErrInvalidLength, length, MinEmojiLength, MaxEmojiLength)
	}
	entropy, err := m.Entropy(AppEmoji, uint32(length), index)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, b := range entropy[:length] {
		sb.WriteString(emoji[int(b)%len(emoji)])
	}
	return sb.String(), nil
}
