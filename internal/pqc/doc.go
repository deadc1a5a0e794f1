// Package pqc defines the cryptographic provider capabilities the
// provisioning protocols are built on:
//
//   - KEM: post-quantum key encapsulation (default ML-KEM-1024, FIPS 203)
//   - Signer: post-quantum signatures (default ML-DSA-65, FIPS 204)
//   - AEAD: authenticated symmetric encryption (AES-256-GCM or
//     ChaCha20-Poly1305)
//
// The protocol packages (envelope, auth, identity) depend only on
// these interfaces, so any standards-compliant implementation can be
// substituted without touching protocol code. The bundled KEM and
// Signer wrap Cloudflare's CIRCL library, whose schemes are
// constant-time and cover the full ML-KEM/ML-DSA parameter matrix.
//
// All keys, ciphertexts and signatures cross these interfaces as raw
// byte slices with algorithm-fixed lengths. Wrong-length material is
// rejected with an error; it never succeeds silently.
package pqc
