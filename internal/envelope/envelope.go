// Package envelope delivers entropy to a device under hybrid
// encryption: a KEM encapsulation transports a fresh shared secret,
// and an AEAD seals the payload under a key cut from that secret.
// Confidentiality and authenticity reduce entirely to the KEM and
// AEAD guarantees; the symmetric key is fresh per call, so nonce
// reuse under one key cannot occur across calls.
package envelope

import (
	"crypto/rand"
	"fmt"

	"github.com/avaropoint/qrng/internal/pqc"
)

const (
	nonceSize = 12
	keySize   = 32
)

// EncryptedEntropy is one entropy delivery. Ciphertext is the KEM
// encapsulation output; EncryptedData is the 12-byte nonce followed by
// the AEAD ciphertext and tag, so it is always at least 12 bytes.
type EncryptedEntropy struct {
	Ciphertext    []byte `json:"ciphertext"`
	EncryptedData []byte `json:"encrypted_data"`
}

// Envelope hybrid-encrypts entropy blobs with the configured providers.
type Envelope struct {
	kem  pqc.KEM
	aead pqc.AEAD
}

// New creates an envelope over the given KEM and AEAD providers.
func New(kem pqc.KEM, aead pqc.AEAD) *Envelope {
	return &Envelope{kem: kem, aead: aead}
}

// EncryptFor encrypts entropy so that only the holder of the matching
// KEM secret key can recover it.
func (e *Envelope) EncryptFor(recipientKEMPublicKey, entropy []byte) (*EncryptedEntropy, error) {
	ciphertext, sharedSecret, err := e.kem.Encapsulate(recipientKEMPublicKey)
	if err != nil {
		// Matches both ErrEncryption and the provider's own category.
		return nil, fmt.Errorf("%w: encapsulate: %w", pqc.ErrEncryption, err)
	}
	if len(sharedSecret) < keySize {
		return nil, fmt.Errorf("%w: shared secret is %d bytes, need %d",
			pqc.ErrEncryption, len(sharedSecret), keySize)
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("%w: nonce: %v", pqc.ErrEncryption, err)
	}

	sealed, err := e.aead.Seal(sharedSecret[:keySize], nonce, entropy)
	if err != nil {
		return nil, fmt.Errorf("seal entropy: %w", err)
	}

	return &EncryptedEntropy{
		Ciphertext:    ciphertext,
		EncryptedData: append(nonce, sealed...),
	}, nil
}

// Decrypt recovers the entropy from a delivery. Any authentication
// failure surfaces as an error; altered plaintext is never returned,
// not even partially.
func (e *Envelope) Decrypt(encrypted *EncryptedEntropy, recipientKEMSecretKey []byte) ([]byte, error) {
	if len(encrypted.EncryptedData) < nonceSize {
		return nil, fmt.Errorf("%w: encrypted data is %d bytes, shorter than the %d-byte nonce",
			pqc.ErrDecryption, len(encrypted.EncryptedData), nonceSize)
	}

	sharedSecret, err := e.kem.Decapsulate(recipientKEMSecretKey, encrypted.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: decapsulate: %w", pqc.ErrDecryption, err)
	}
	if len(sharedSecret) < keySize {
		return nil, fmt.Errorf("%w: shared secret is %d bytes, need %d",
			pqc.ErrDecryption, len(sharedSecret), keySize)
	}

	nonce := encrypted.EncryptedData[:nonceSize]
	sealed := encrypted.EncryptedData[nonceSize:]

	entropy, err := e.aead.Open(sharedSecret[:keySize], nonce, sealed)
	if err != nil {
		return nil, fmt.Errorf("open entropy: %w", err)
	}
	return entropy, nil
}
