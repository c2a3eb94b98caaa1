package crypto

import "github.com/vaultlocker/vaultlocker/models"

// Cipher seals and opens vault secrets. It knows nothing about storage,
// users, or the network: JSON-serializable value in, envelope out, and back.
//
// Implementations must draw a fresh IV for every Encrypt call, so the same
// plaintext encrypted twice yields different envelopes.
type Cipher interface {
	// Encrypt marshals v to JSON and seals it with authenticated
	// encryption, returning the {iv, ciphertext} envelope.
	Encrypt(v any) (models.Envelope, error)

	// Decrypt opens env and unmarshals the recovered JSON into target,
	// which must be a non-nil pointer. Any failure (tampered ciphertext,
	// malformed IV, undecodable plaintext) is reported as a
	// *DecryptionError: the record is unreadable, nothing more.
	Decrypt(env models.Envelope, target any) error
}
