package pqc

import (
	"fmt"

	"github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
)

// circlSigner adapts any CIRCL signature scheme to the Signer interface.
type circlSigner struct {
	scheme sign.Scheme
}

// NewSigner wraps a CIRCL signature scheme.
func NewSigner(scheme sign.Scheme) Signer {
	return &circlSigner{scheme: scheme}
}

// MLDSA65 returns the default signature provider (ML-DSA-65, NIST
// security level 3).
func MLDSA65() Signer {
	return NewSigner(mldsa65.Scheme())
}

func (s *circlSigner) Name() string { return s.scheme.Name() }

func (s *circlSigner) GenerateKeyPair() ([]byte, []byte, error) {
	pk, sk, err := s.scheme.GenerateKey()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s keypair: %v", ErrKeyGeneration, s.scheme.Name(), err)
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

func (s *circlSigner) Sign(message, secretKey []byte) ([]byte, error) {
	sk, err := s.scheme.UnmarshalBinaryPrivateKey(secretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: secret key (%d bytes, want %d): %v",
			ErrSigning, len(secretKey), s.scheme.PrivateKeySize(), err)
	}
	return s.scheme.Sign(sk, message, nil), nil
}

func (s *circlSigner) Verify(message, signature, publicKey []byte) (bool, error) {
	pk, err := s.scheme.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return false, fmt.Errorf("%w: public key (%d bytes, want %d): %v",
			ErrVerification, len(publicKey), s.scheme.PublicKeySize(), err)
	}
	// A wrong-length signature is cryptographically invalid, not a
	// malformed-input error.
	if len(signature) != s.scheme.SignatureSize() {
		return false, nil
	}
	return s.scheme.Verify(pk, message, signature, nil), nil
}

func (s *circlSigner) PublicKeySize() int { return s.scheme.PublicKeySize() }
func (s *circlSigner) SecretKeySize() int { return s.scheme.PrivateKeySize() }
func (s *circlSigner) SignatureSize() int { return s.scheme.SignatureSize() }
