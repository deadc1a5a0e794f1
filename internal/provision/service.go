// Package provision composes the entropy engine, credential factory
// and entropy envelope into the high-level device provisioning flow.
package provision

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/avaropoint/qrng/internal/entropy"
	"github.com/avaropoint/qrng/internal/envelope"
	"github.com/avaropoint/qrng/internal/identity"
)

// deviceEntropySize is the per-device entropy request made during
// provisioning. The engine caps derived output at 32 bytes.
const deviceEntropySize = 64

// Delivery records one entropy delivery to a device. The record
// itself is not persisted here; callers ship it to the device and to
// whatever audit trail they keep.
type Delivery struct {
	ID        string                     `json:"id"`
	DeviceID  string                     `json:"device_id"`
	CreatedAt time.Time                  `json:"created_at"`
	Encrypted *envelope.EncryptedEntropy `json:"encrypted"`
}

// Service runs the provisioning flow for a fleet.
type Service struct {
	engine   *entropy.Engine
	factory  *identity.Factory
	envelope *envelope.Envelope
}

// NewService composes a provisioning service from its collaborators.
func NewService(engine *entropy.Engine, factory *identity.Factory, env *envelope.Envelope) *Service {
	return &Service{engine: engine, factory: factory, envelope: env}
}

// ProvisionDevice derives device-bound entropy and generates a
// quantum-seeded credential bundle for deviceID.
func (s *Service) ProvisionDevice(deviceID string) (*identity.DeviceCredentials, error) {
	log.Printf("Provisioning device %q with quantum entropy", deviceID)

	deviceEntropy, err := s.engine.Derive(deviceID, deviceEntropySize)
	if err != nil {
		return nil, fmt.Errorf("derive entropy for %q: %w", deviceID, err)
	}
	log.Printf("Derived %d bytes of device entropy for %q", len(deviceEntropy), deviceID)

	creds, err := s.factory.GenerateQuantumSeeded(s.engine)
	if err != nil {
		return nil, fmt.Errorf("generate credentials for %q: %w", deviceID, err)
	}
	log.Printf("Generated credential bundle for %q", deviceID)

	return creds, nil
}

// DeliverEntropy derives size bytes of device-bound entropy (capped at
// 32 by the engine) and hybrid-encrypts it to the device's KEM public
// key.
func (s *Service) DeliverEntropy(deviceID string, size int, recipientKEMPublicKey []byte) (*Delivery, error) {
	deviceEntropy, err := s.engine.Derive(deviceID, size)
	if err != nil {
		return nil, fmt.Errorf("derive entropy for %q: %w", deviceID, err)
	}

	encrypted, err := s.envelope.EncryptFor(recipientKEMPublicKey, deviceEntropy)
	if err != nil {
		return nil, fmt.Errorf("encrypt entropy for %q: %w", deviceID, err)
	}

	return &Delivery{
		ID:        uuid.NewString(),
		DeviceID:  deviceID,
		CreatedAt: time.Now().UTC(),
		Encrypted: encrypted,
	}, nil
}
