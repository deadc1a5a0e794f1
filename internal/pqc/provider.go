package pqc

// KEM is a key-encapsulation mechanism. All byte-slice lengths are
// fixed constants of the configured algorithm.
type KEM interface {
	// Name identifies the algorithm (e.g. "ML-KEM-1024").
	Name() string

	// GenerateKeyPair produces a fresh keypair from the provider's
	// internal randomness.
	GenerateKeyPair() (publicKey, secretKey []byte, err error)

	// Encapsulate derives a fresh shared secret for the holder of
	// publicKey and returns the ciphertext that transports it.
	// A wrong-length public key fails with ErrInvalidInput.
	Encapsulate(publicKey []byte) (ciphertext, sharedSecret []byte, err error)

	// Decapsulate recovers the shared secret from a ciphertext.
	// Wrong-length keys or ciphertexts fail with an error.
	Decapsulate(secretKey, ciphertext []byte) (sharedSecret []byte, err error)

	PublicKeySize() int
	SecretKeySize() int
	CiphertextSize() int
	SharedSecretSize() int
}

// Signer is a digital signature scheme.
type Signer interface {
	// Name identifies the algorithm (e.g. "ML-DSA-65").
	Name() string

	GenerateKeyPair() (publicKey, secretKey []byte, err error)

	// Sign produces a signature over message. Fails with ErrSigning
	// on an unusable secret key or provider failure.
	Sign(message, secretKey []byte) ([]byte, error)

	// Verify reports whether signature is valid for message under
	// publicKey. A cryptographically invalid signature is a normal
	// outcome (false, nil); only malformed public-key material is an
	// error. Callers must not conflate the two.
	Verify(message, signature, publicKey []byte) (bool, error)

	PublicKeySize() int
	SecretKeySize() int
	SignatureSize() int
}

// AEAD is an authenticated symmetric cipher. Seal and Open fail with
// ErrInvalidInput on malformed key/nonce material; Open fails with
// ErrDecryption on an authentication (tag) mismatch and never returns
// plaintext in that case.
type AEAD interface {
	// Name identifies the cipher (e.g. "AES-256-GCM").
	Name() string

	KeySize() int
	NonceSize() int

	Seal(key, nonce, plaintext []byte) ([]byte, error)
	Open(key, nonce, ciphertext []byte) ([]byte, error)
}
