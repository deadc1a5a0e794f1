package pqc

import (
	"fmt"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"
)

// circlKEM adapts any CIRCL KEM scheme to the KEM interface,
// translating between raw byte slices and CIRCL's typed keys.
type circlKEM struct {
	scheme kem.Scheme
}

// NewKEM wraps a CIRCL KEM scheme. The scheme's key, ciphertext and
// shared-secret sizes become the fixed lengths enforced by the wrapper.
func NewKEM(scheme kem.Scheme) KEM {
	return &circlKEM{scheme: scheme}
}

// MLKEM1024 returns the default KEM provider (ML-KEM-1024, NIST
// security level 5).
func MLKEM1024() KEM {
	return NewKEM(mlkem1024.Scheme())
}

func (k *circlKEM) Name() string { return k.scheme.Name() }

func (k *circlKEM) GenerateKeyPair() ([]byte, []byte, error) {
	pk, sk, err := k.scheme.GenerateKeyPair()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s keypair: %v", ErrKeyGeneration, k.scheme.Name(), err)
	}
	pkBytes, err := pk.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: marshal public key: %v", ErrKeyGeneration, err)
	}
	skBytes, err := sk.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: marshal secret key: %v", ErrKeyGeneration, err)
	}
	return pkBytes, skBytes, nil
}

func (k *circlKEM) Encapsulate(publicKey []byte) ([]byte, []byte, error) {
	pk, err := k.scheme.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: public key (%d bytes, want %d): %v",
			ErrInvalidInput, len(publicKey), k.scheme.PublicKeySize(), err)
	}
	ciphertext, sharedSecret, err := k.scheme.Encapsulate(pk)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: encapsulate: %v", ErrEncryption, err)
	}
	return ciphertext, sharedSecret, nil
}

func (k *circlKEM) Decapsulate(secretKey, ciphertext []byte) ([]byte, error) {
	sk, err := k.scheme.UnmarshalBinaryPrivateKey(secretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: secret key (%d bytes, want %d): %v",
			ErrInvalidInput, len(secretKey), k.scheme.PrivateKeySize(), err)
	}
	if len(ciphertext) != k.scheme.CiphertextSize() {
		return nil, fmt.Errorf("%w: ciphertext is %d bytes, want %d",
			ErrInvalidInput, len(ciphertext), k.scheme.CiphertextSize())
	}
	sharedSecret, err := k.scheme.Decapsulate(sk, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: decapsulate: %v", ErrDecryption, err)
	}
	return sharedSecret, nil
}

func (k *circlKEM) PublicKeySize() int    { return k.scheme.PublicKeySize() }
func (k *circlKEM) SecretKeySize() int    { return k.scheme.PrivateKeySize() }
func (k *circlKEM) CiphertextSize() int   { return k.scheme.CiphertextSize() }
func (k *circlKEM) SharedSecretSize() int { return k.scheme.SharedKeySize() }
