// Package identity produces post-quantum credential bundles for edge
// devices: a KEM keypair for receiving encrypted entropy and a
// signature keypair for challenge-response authentication.
package identity

import (
	"fmt"

	"github.com/avaropoint/qrng/internal/entropy"
	"github.com/avaropoint/qrng/internal/pqc"
)

// DeviceCredentials is the complete identity bundle for one device.
// All four fields are produced together; no partial bundle is ever
// returned. The secret fields belong exclusively to the device; the
// public fields are shared with peers that encrypt to or verify
// against it. Persistence and erasure are the caller's concern.
type DeviceCredentials struct {
	KEMPublicKey []byte `json:"kem_public_key"`
	KEMSecretKey []byte `json:"kem_secret_key"`
	SigPublicKey []byte `json:"sig_public_key"`
	SigSecretKey []byte `json:"sig_secret_key"`
}

// Factory generates credential bundles from the configured providers.
type Factory struct {
	kem    pqc.KEM
	signer pqc.Signer
}

// NewFactory creates a factory over the given KEM and signature providers.
func NewFactory(kem pqc.KEM, signer pqc.Signer) *Factory {
	return &Factory{kem: kem, signer: signer}
}

// Generate produces a fresh credential bundle. KEM key generation runs
// first; if it fails, signature key generation is never attempted. If
// signature key generation fails, the KEM material is discarded and
// the call fails as a whole.
func (f *Factory) Generate() (*DeviceCredentials, error) {
	kemPK, kemSK, err := f.kem.GenerateKeyPair()
	if err != nil {
		return nil, fmt.Errorf("kem keypair: %w", err)
	}
	sigPK, sigSK, err := f.signer.GenerateKeyPair()
	if err != nil {
		return nil, fmt.Errorf("signature keypair: %w", err)
	}
	return &DeviceCredentials{
		KEMPublicKey: kemPK,
		KEMSecretKey: kemSK,
		SigPublicKey: sigPK,
		SigSecretKey: sigSK,
	}, nil
}

// GenerateQuantumSeeded draws refreshed entropy from the engine before
// generating a bundle. The drawn entropy does not reach the providers:
// they generate keys from their own internal randomness, so the draw
// is incidental. This matches the historical provisioning flow; a
// provider capability for seeded key generation would be needed to
// actually bind the engine's output to the keys.
func (f *Factory) GenerateQuantumSeeded(engine *entropy.Engine) (*DeviceCredentials, error) {
	if _, err := engine.GenerateRefreshed(64); err != nil {
		return nil, fmt.Errorf("draw quantum entropy: %w", err)
	}
	return f.Generate()
}
