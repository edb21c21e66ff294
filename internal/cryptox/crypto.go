// Package cryptox seals short secrets (TOTP shared secrets) for storage.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"

	"github.com/dmitrijs2005/adminauth/internal/common"
	"golang.org/x/crypto/argon2"
)

// keySalt separates this key derivation from any other use of the passphrase.
var keySalt = []byte("adminauth/totp-secret/v1")

var ErrOpen = errors.New("cannot open sealed secret")

// DeriveKey stretches a passphrase into a 32-byte AES-256 key with argon2id.
func DeriveKey(passphrase []byte, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, 32)
}

// Box seals and opens strings with AES-256-GCM. The nonce is prepended to
// the ciphertext and the result is base64 (std, unpadded) so it fits a text column.
type Box struct {
	aead cipher.AEAD
}

// NewBox derives the key from passphrase and prepares the AEAD.
func NewBox(passphrase string) (*Box, error) {
	if passphrase == "" {
		return nil, errors.New("empty passphrase")
	}
	key := DeriveKey([]byte(passphrase), keySalt)
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Box{aead: aead}, nil
}

// Seal encrypts plaintext with a fresh random nonce.
func (b *Box) Seal(plaintext string) (string, error) {
	nonce, err := common.RandBytes(b.aead.NonceSize())
	if err != nil {
		return "", err
	}
	out := b.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawStdEncoding.EncodeToString(out), nil
}

// Open reverses Seal. Any tampering or a wrong key yields ErrOpen.
func (b *Box) Open(sealed string) (string, error) {
	raw, err := base64.RawStdEncoding.DecodeString(sealed)
	if err != nil {
		return "", ErrOpen
	}
	ns := b.aead.NonceSize()
	if len(raw) < ns {
		return "", ErrOpen
	}
	plaintext, err := b.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", ErrOpen
	}
	return string(plaintext), nil
}
