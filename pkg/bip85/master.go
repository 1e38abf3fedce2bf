package bip85

import (
	"crypto/hmac"
	"crypto/sha512"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"
)

const (
	Purpose uint32 = 83696968

	AppBIP39     uint32 = 39
	AppXprv      uint32 = 32
	AppWIF       uint32 = 2
	AppPwdBase85 uint32 = 707785
	AppEmoji     uint32 = 128512

	// EnglishLanguage is the BIP85 language code of the BIP39 English word list.
	EnglishLanguage uint32 = 0
)

var (
	ErrInvalidMaster   = errors.New("invalid master key")
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	ErrIndexOutOfRange = errors.New("index must be less than 2^31")
	ErrInvalidKey      = errors.New("derived entropy is not a valid private key")
	ErrInvalidLength   = errors.New("invalid length")
)

var (
	network        = &chaincfg.MainNetParams
	entropyHMACKey = []byte("bip-entropy-from-k")
)

// Master is a BIP32 extended private key used as the root of BIP85 derivation.
// It's safe for concurrent use.
type Master struct {
	key *hdkeychain.ExtendedKey
}

// NewMaster creates a master key from a seed of 16 to 64 bytes.
func NewMaster(seed []byte) (*Master, error) {
	key, err := hdkeychain.NewMaster(seed, network)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaster, err)
	}
	return newMaster(key)
}

// FromMnemonic creates a master key from a BIP39 phrase and optional passphrase.
func FromMnemonic(mnemonic, passphrase string) (*Master, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return NewMaster(seed)
}

// ParseMaster parses a serialized extended private key.
func ParseMaster(serialized string) (*Master, error) {
	key, err := hdkeychain.NewKeyFromString(serialized)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaster, err)
	}
	if !key.IsPrivate() {
		return nil, fmt.Errorf("%w: extended key is public", ErrInvalidMaster)
	}
	return newMaster(key)
}

// newMaster fills the public key cache of key up front.
// Derive populates it lazily without locking, so it must not be left empty on a shared key.
func newMaster(key *hdkeychain.ExtendedKey) (*Master, error) {
	if _, err := key.ECPubKey(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaster, err)
	}
	return &Master{key: key}, nil
}

// Serialize returns the master key in its base58 "xprv" form.
func (m *Master) Serialize() string {
	return m.key.String()
}

func (m *Master) String() string {
	return "bip85.Master(REDACTED)"
}

func (m *Master) GoString() string {
	return m.String()
}

// Entropy returns the 64 bytes of BIP85 entropy at m/83696968'/{path...}, where every element is hardened.
func (m *Master) Entropy(path ...uint32) ([]byte, error) {
	key := m.key
	for _, index := range append([]uint32{Purpose}, path...) {
		if index >= hdkeychain.HardenedKeyStart {
			return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
		}
		var err error
		key, err = key.Derive(hdkeychain.HardenedKeyStart + index)
		if err != nil {
			return nil, fmt.Errorf("failed to derive child %d': %w", index, err)
		}
	}
	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get derived private key: %w", err)
	}
	mac := hmac.New(sha512.New, entropyHMACKey)
	mac.Write(priv.Serialize())
	return mac.Sum(nil), nil
}

func validateKey(key []byte) error {
	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(key); overflow || scalar.IsZero() {
		return ErrInvalidKey
	}
	return nil
}
