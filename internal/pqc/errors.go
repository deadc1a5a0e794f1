package pqc

import "errors"

// Error categories shared by all providers and the protocol layers
// built on them. Providers wrap these with contextual detail via
// fmt.Errorf("...: %w", ...); callers match with errors.Is.
var (
	ErrKeyGeneration = errors.New("pqc: key generation failed")
	ErrEncryption    = errors.New("pqc: encryption failed")
	ErrDecryption    = errors.New("pqc: decryption failed")
	ErrSigning       = errors.New("pqc: signing failed")
	ErrVerification  = errors.New("pqc: verification failed")
	ErrInvalidInput  = errors.New("pqc: invalid input")
)
