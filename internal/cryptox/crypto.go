// Package cryptox seals attachment payloads on the client before they leave
// the device. Each payload gets its own random AES-256-GCM key which travels
// inside the message body and never reaches object storage.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"os"
)

const (
	KeySize   = 32
	NonceSize = 12
)

var ErrInvalidKey = errors.New("invalid key or nonce")

// Sealed is an encrypted payload together with the material needed to open it.
type Sealed struct {
	Ciphertext []byte
	Key        []byte
	Nonce      []byte
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext under a fresh key and nonce.
func Seal(plaintext []byte) (*Sealed, error) {
	key, err := randomBytes(KeySize)
	if err != nil {
		return nil, err
	}
	nonce, err := randomBytes(NonceSize)
	if err != nil {
		return nil, err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	return &Sealed{
		Ciphertext: gcm.Seal(nil, nonce, plaintext, nil),
		Key:        key,
		Nonce:      nonce,
	}, nil
}

// SealFile reads path and seals its contents.
func SealFile(path string) (*Sealed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Seal(data)
}

// Open decrypts ciphertext produced by Seal.
func Open(ciphertext, key, nonce []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, ErrInvalidKey
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return gcm.Open(nil, nonce, ciphertext, nil)
}
