// Package auth builds and verifies signed challenge-response requests
// for device authentication. Nonce freshness and replay tracking are
// deliberately out of scope: a session manager in front of this
// package must record issued nonces and their validity window.
package auth

import (
	"encoding/hex"
	"fmt"

	"github.com/avaropoint/qrng/internal/pqc"
)

// Request is a signed authentication attempt. The signature covers the
// canonical encoding of (DeviceID, Nonce); any deviation between
// builder and verifier encodings makes verification return false.
type Request struct {
	DeviceID  string `json:"device_id"`
	Nonce     []byte `json:"nonce"`
	Signature []byte `json:"signature"`
}

// Protocol signs and verifies requests with the configured provider.
type Protocol struct {
	signer pqc.Signer
}

// New creates a protocol over the given signature provider.
func New(signer pqc.Signer) *Protocol {
	return &Protocol{signer: signer}
}

// canonicalMessage is the exact byte encoding the signature covers:
//
//	<device_id> "|" lowercase_hex(nonce)
func canonicalMessage(deviceID string, nonce []byte) []byte {
	return []byte(deviceID + "|" + hex.EncodeToString(nonce))
}

// BuildRequest signs the canonical message for (deviceID, nonce) with
// the device's signing secret key. The nonce is caller-supplied; its
// freshness is the caller's responsibility.
func (p *Protocol) BuildRequest(deviceID string, nonce, signingSecretKey []byte) (*Request, error) {
	signature, err := p.signer.Sign(canonicalMessage(deviceID, nonce), signingSecretKey)
	if err != nil {
		return nil, fmt.Errorf("sign auth request: %w", err)
	}
	return &Request{
		DeviceID:  deviceID,
		Nonce:     nonce,
		Signature: signature,
	}, nil
}

// VerifyRequest rebuilds the canonical message from the request and
// checks the signature. A cryptographically invalid signature returns
// (false, nil); an error is returned only for malformed public-key
// material.
func (p *Protocol) VerifyRequest(request *Request, signingPublicKey []byte) (bool, error) {
	return p.signer.Verify(canonicalMessage(request.DeviceID, request.Nonce),
		request.Signature, signingPublicKey)
}
