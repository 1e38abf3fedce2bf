package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

var (
	ErrAuthentication = errors.New("failed to authenticate sealed data")
	ErrNilKeyring     = errors.New("nil keyring")
)

// Encryptor seals and opens payloads with the protection key of a Keyring.
// It's safe for concurrent use.
type Encryptor struct {
	gcm cipher.AEAD
}

func NewEncryptor(keyring *Keyring) (*Encryptor, error) {
	if keyring == nil {
		return nil, ErrNilKeyring
	}
	block, err := aes.NewCipher(keyring.key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Encryptor{gcm: gcm}, nil
}

// Seal will encrypt and authenticate the payload, prepending the random nonce used.
func (e *Encryptor) Seal(data []byte) ([]byte, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return e.gcm.Seal(nonce, nonce, data, nil), nil
}

// Open will verify and decrypt a payload produced by Seal.
// No plaintext is returned unless the whole payload is authentic.
func (e *Encryptor) Open(data []byte) ([]byte, error) {
	nonceSize := e.gcm.NonceSize()
	if len(data) < nonceSize {
		return nil, fmt.Errorf("%w: payload of %d bytes is shorter than the nonce", ErrAuthentication, len(data))
	}
	nonce, cipherText := data[:nonceSize], data[nonceSize:]
	plainText, err := e.gcm.Open(nil, nonce, cipherText, nil)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plainText, nil
}
