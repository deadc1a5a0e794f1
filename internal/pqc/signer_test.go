package pqc

import (
	"errors"
	"testing"
)

func TestSignerRoundTrip(t *testing.T) {
	s := MLDSA65()

	pk, sk, err := s.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if len(pk) != s.PublicKeySize() {
		t.Errorf("public key is %d bytes, want %d", len(pk), s.PublicKeySize())
	}
	if len(sk) != s.SecretKeySize() {
		t.Errorf("secret key is %d bytes, want %d", len(sk), s.SecretKeySize())
	}

	msg := []byte("device_id:123|nonce:abc")
	sig, err := s.Sign(msg, sk)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if len(sig) != s.SignatureSize() {
		t.Errorf("signature is %d bytes, want %d", len(sig), s.SignatureSize())
	}

	ok, err := s.Verify(msg, sig, pk)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Error("valid signature did not verify")
	}
}

func TestSignerRejectsTamperedMessage(t *testing.T) {
	s := MLDSA65()

	pk, sk, err := s.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	sig, err := s.Sign([]byte("original message"), sk)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	ok, err := s.Verify([]byte("tampered message"), sig, pk)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Error("signature verified over a different message")
	}
}

func TestSignerInvalidMaterial(t *testing.T) {
	s := MLDSA65()

	pk, sk, err := s.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	msg := []byte("message")
	sig, err := s.Sign(msg, sk)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	// Malformed public key is an error, not a false verdict.
	if _, err := s.Verify(msg, sig, pk[:len(pk)-1]); !errors.Is(err, ErrVerification) {
		t.Errorf("Verify with truncated public key: got %v, want ErrVerification", err)
	}

	// A truncated signature is merely invalid.
	ok, err := s.Verify(msg, sig[:len(sig)-1], pk)
	if err != nil {
		t.Fatalf("Verify with truncated signature: %v", err)
	}
	if ok {
		t.Error("truncated signature verified")
	}

	if _, err := s.Sign(msg, sk[:len(sk)-1]); !errors.Is(err, ErrSigning) {
		t.Errorf("Sign with truncated secret key: got %v, want ErrSigning", err)
	}
}
