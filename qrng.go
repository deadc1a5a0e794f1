// Package qrng provisions quantum-resistant cryptographic identities
// for edge devices and delivers device-bound entropy over an
// authenticated, confidential channel.
//
// The package composes three protocols over pluggable post-quantum
// providers (ML-KEM-1024 and ML-DSA-65 by default, via CIRCL):
//
//   - credential generation (NewFactory)
//   - hybrid-encrypted entropy delivery (NewEnvelope)
//   - challenge-response authentication (NewAuthProtocol)
//
// plus the quantum entropy engine (NewEngine) that combines two
// externally captured seed buffers into a deterministic stream and
// derives per-device entropy from it.
//
// This file re-exports the library surface; the implementations live
// in the internal packages.
package qrng

import (
	"github.com/avaropoint/qrng/internal/auth"
	"github.com/avaropoint/qrng/internal/entropy"
	"github.com/avaropoint/qrng/internal/envelope"
	"github.com/avaropoint/qrng/internal/identity"
	"github.com/avaropoint/qrng/internal/pqc"
	"github.com/avaropoint/qrng/internal/provision"
	"github.com/avaropoint/qrng/internal/seed"
	"github.com/avaropoint/qrng/internal/version"
)

// Version reports the library build version (set via ldflags).
func Version() string { return version.Version }

// Provider capabilities. Any standards-compliant implementation may be
// substituted for the bundled ones.
type (
	KEM    = pqc.KEM
	Signer = pqc.Signer
	AEAD   = pqc.AEAD

	// SeedSource resolves seed identifiers to raw seed bytes.
	SeedSource = seed.Source
)

// Protocol data types.
type (
	DeviceCredentials = identity.DeviceCredentials
	EncryptedEntropy  = envelope.EncryptedEntropy
	AuthRequest       = auth.Request
	Delivery          = provision.Delivery

	Engine       = entropy.Engine
	Factory      = identity.Factory
	Envelope     = envelope.Envelope
	AuthProtocol = auth.Protocol
	Service      = provision.Service

	SeedVault  = seed.Vault
	SeedRecord = seed.Record
)

// Error categories; match with errors.Is.
var (
	ErrKeyGeneration = pqc.ErrKeyGeneration
	ErrEncryption    = pqc.ErrEncryption
	ErrDecryption    = pqc.ErrDecryption
	ErrSigning       = pqc.ErrSigning
	ErrVerification  = pqc.ErrVerification
	ErrInvalidInput  = pqc.ErrInvalidInput

	ErrSeedNotFound = seed.ErrNotFound
	ErrInvalidSeed  = seed.ErrInvalidSeed
)

// Bundled providers.
func MLKEM1024() KEM         { return pqc.MLKEM1024() }
func MLDSA65() Signer        { return pqc.MLDSA65() }
func AESGCM() AEAD           { return pqc.AESGCM() }
func ChaCha20Poly1305() AEAD { return pqc.ChaCha20Poly1305() }

// Seed sources.
func HexFileSeeds() SeedSource { return seed.FileSource{} }
func RawFileSeeds() SeedSource { return seed.RawFileSource{} }

// OpenSeedVault opens (or creates) a SQLite-backed seed vault at path.
func OpenSeedVault(path string) (*SeedVault, error) { return seed.OpenVault(path) }

// CombineSeeds hashes two seed buffers into the engine's 256-bit
// combined digest. Deterministic for identical inputs.
func CombineSeeds(seedA, seedB []byte) []byte { return entropy.Combine(seedA, seedB) }

// NewEngine loads both seeds from src and constructs the entropy engine.
func NewEngine(src SeedSource, seedAID, seedBID string) (*Engine, error) {
	return entropy.New(src, seedAID, seedBID)
}

// NewFactory creates a credential factory over the given providers.
func NewFactory(kem KEM, signer Signer) *Factory {
	return identity.NewFactory(kem, signer)
}

// NewEnvelope creates a hybrid entropy envelope over the given providers.
func NewEnvelope(kem KEM, aead AEAD) *Envelope {
	return envelope.New(kem, aead)
}

// NewAuthProtocol creates a challenge-response protocol over the given
// signature provider.
func NewAuthProtocol(signer Signer) *AuthProtocol {
	return auth.New(signer)
}

// NewService composes the full provisioning flow.
func NewService(engine *Engine, factory *Factory, env *Envelope) *Service {
	return provision.NewService(engine, factory, env)
}
