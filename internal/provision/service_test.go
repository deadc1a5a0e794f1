package provision

import (
	"bytes"
	"testing"

	"github.com/avaropoint/qrng/internal/entropy"
	"github.com/avaropoint/qrng/internal/envelope"
	"github.com/avaropoint/qrng/internal/identity"
	"github.com/avaropoint/qrng/internal/pqc"
	"github.com/avaropoint/qrng/internal/seed"
)

func testService(t *testing.T) (*Service, *envelope.Envelope) {
	t.Helper()

	src := seed.Static{
		"a": bytes.Repeat([]byte{0x00}, 256),
		"b": bytes.Repeat([]byte{0xff}, 256),
	}
	engine, err := entropy.New(src, "a", "b")
	if err != nil {
		t.Fatalf("entropy.New: %v", err)
	}

	kem := pqc.MLKEM1024()
	env := envelope.New(kem, pqc.AESGCM())
	factory := identity.NewFactory(kem, pqc.MLDSA65())
	return NewService(engine, factory, env), env
}

func TestProvisionDevice(t *testing.T) {
	s, _ := testService(t)

	creds, err := s.ProvisionDevice("edge-gw-01")
	if err != nil {
		t.Fatalf("ProvisionDevice: %v", err)
	}
	if len(creds.KEMPublicKey) == 0 || len(creds.KEMSecretKey) == 0 ||
		len(creds.SigPublicKey) == 0 || len(creds.SigSecretKey) == 0 {
		t.Error("ProvisionDevice returned an incomplete bundle")
	}
}

func TestDeliverEntropy(t *testing.T) {
	s, env := testService(t)

	creds, err := s.ProvisionDevice("edge-gw-01")
	if err != nil {
		t.Fatalf("ProvisionDevice: %v", err)
	}

	delivery, err := s.DeliverEntropy("edge-gw-01", 32, creds.KEMPublicKey)
	if err != nil {
		t.Fatalf("DeliverEntropy: %v", err)
	}
	if delivery.ID == "" || delivery.DeviceID != "edge-gw-01" || delivery.CreatedAt.IsZero() {
		t.Errorf("delivery record incomplete: %+v", delivery)
	}

	got, err := env.Decrypt(delivery.Encrypted, creds.KEMSecretKey)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if len(got) != 32 {
		t.Errorf("delivered entropy is %d bytes, want 32", len(got))
	}

	// Same device, same static seeds: the derived entropy repeats, so
	// a second delivery decrypts to the same value under fresh keys.
	second, err := s.DeliverEntropy("edge-gw-01", 32, creds.KEMPublicKey)
	if err != nil {
		t.Fatalf("DeliverEntropy: %v", err)
	}
	if second.ID == delivery.ID {
		t.Error("delivery IDs repeat")
	}
	got2, err := env.Decrypt(second.Encrypted, creds.KEMSecretKey)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(got, got2) {
		t.Error("derived entropy changed between deliveries for the same device")
	}
}
