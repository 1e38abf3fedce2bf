package seal

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
)

const (
	KeySize   = 256 / 8
	NonceSize = 12
	TagSize   = 16
)

var defaultKeyring = sync.OnceValues(NewKeyring)

// Keyring owns a protection key.
// The key can't be read or printed from outside this package.
type Keyring struct {
	key []byte
}

// NewKeyring creates a Keyring with a freshly generated protection key.
func NewKeyring() (*Keyring, error) {
	key, err := genKey(KeySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate protection key: %w", err)
	}
	return &Keyring{key: key}, nil
}

// Default returns the process-wide Keyring, creating it on first use.
// Concurrent first calls observe the same Keyring.
func Default() (*Keyring, error) {
	return defaultKeyring()
}

func (k *Keyring) String() string {
	return "seal.Keyring(REDACTED)"
}

func (k *Keyring) GoString() string {
	return k.String()
}

func genKey(length int) ([]byte, error) {
	buf := make([]byte, length)
	n, err := io.ReadFull(rand.Reader, buf)
	if n < length {
		return nil, fmt.Errorf("failed to read requested bytes: %v", err)
	}
	return buf, nil
}
