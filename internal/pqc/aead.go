package pqc

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Both bundled AEADs use a 256-bit key and a 96-bit nonce, so they are
// interchangeable behind the AEAD interface.
const (
	aeadKeySize   = 32
	aeadNonceSize = 12
	aeadTagSize   = 16
)

// aesGCM is AES-256-GCM from the standard library.
type aesGCM struct{}

// AESGCM returns the AES-256-GCM provider.
func AESGCM() AEAD { return aesGCM{} }

func (aesGCM) Name() string   { return "AES-256-GCM" }
func (aesGCM) KeySize() int   { return aeadKeySize }
func (aesGCM) NonceSize() int { return aeadNonceSize }

func (aesGCM) Seal(key, nonce, plaintext []byte) ([]byte, error) {
	aead, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, plaintext, nil), nil
}

func (aesGCM) Open(key, nonce, ciphertext []byte) ([]byte, error) {
	aead, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < aeadTagSize {
		return nil, fmt.Errorf("%w: ciphertext is %d bytes, shorter than the %d-byte tag",
			ErrInvalidInput, len(ciphertext), aeadTagSize)
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: authentication failed", ErrDecryption)
	}
	return plaintext, nil
}

func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != aeadKeySize {
		return nil, fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidInput, len(key), aeadKeySize)
	}
	if len(nonce) != aeadNonceSize {
		return nil, fmt.Errorf("%w: nonce is %d bytes, want %d", ErrInvalidInput, len(nonce), aeadNonceSize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return aead, nil
}

// chaChaPoly is ChaCha20-Poly1305 (RFC 8439) from x/crypto.
type chaChaPoly struct{}

// ChaCha20Poly1305 returns the ChaCha20-Poly1305 provider.
func ChaCha20Poly1305() AEAD { return chaChaPoly{} }

func (chaChaPoly) Name() string   { return "ChaCha20-Poly1305" }
func (chaChaPoly) KeySize() int   { return chacha20poly1305.KeySize }
func (chaChaPoly) NonceSize() int { return chacha20poly1305.NonceSize }

func (chaChaPoly) Seal(key, nonce, plaintext []byte) ([]byte, error) {
	aead, err := newChaChaPoly(key, nonce)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, plaintext, nil), nil
}

func (chaChaPoly) Open(key, nonce, ciphertext []byte) ([]byte, error) {
	aead, err := newChaChaPoly(key, nonce)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < chacha20poly1305.Overhead {
		return nil, fmt.Errorf("%w: ciphertext is %d bytes, shorter than the %d-byte tag",
			ErrInvalidInput, len(ciphertext), chacha20poly1305.Overhead)
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: authentication failed", ErrDecryption)
	}
	return plaintext, nil
}

func newChaChaPoly(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: key is %d bytes, want %d",
			ErrInvalidInput, len(key), chacha20poly1305.KeySize)
	}
	if len(nonce) != chacha20poly1305.NonceSize {
		return nil, fmt.Errorf("%w: nonce is %d bytes, want %d",
			ErrInvalidInput, len(nonce), chacha20poly1305.NonceSize)
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return aead, nil
}
