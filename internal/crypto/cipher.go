// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/vaultlocker/vaultlocker/models"
)

const (
	// defaultSecret and defaultSalt are the fixed key-derivation inputs.
	// TODO: derive the secret from the user's master password once the
	// account service exposes the KDF salt per user.
	defaultSecret = "vaultlocker-key"
	defaultSalt   = "vaultlocker"

	// kdfIterations is the PBKDF2 iteration count (SHA-256).
	kdfIterations = 100_000

	// keyLen is the AES-256 key size in bytes.
	keyLen = 32

	// ivLen is the AES-GCM nonce size in bytes.
	ivLen = 12
)

// vaultCipher is the private implementation of [Cipher]. The AES key is
// derived once in the constructor: the derivation inputs are fixed, so the
// result never changes at runtime.
type vaultCipher struct {
	key []byte
}

// NewCipher constructs a [Cipher] keyed from the fixed vault secret and salt
// via PBKDF2 (100,000 iterations, SHA-256, 256-bit output).
func NewCipher() Cipher {
	return NewCipherWithSecret(defaultSecret, defaultSalt)
}

// NewCipherWithSecret is NewCipher with explicit derivation inputs. Used by
// tests that need two vaults with distinct keys.
func NewCipherWithSecret(secret, salt string) Cipher {
	return &vaultCipher{
		key: pbkdf2.Key([]byte(secret), []byte(salt), kdfIterations, keyLen, sha256.New),
	}
}

// Encrypt implements [Cipher]. Every call draws a fresh random 12-byte IV,
// so identical plaintexts produce different envelopes.
func (c *vaultCipher) Encrypt(v any) (models.Envelope, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("marshal payload: %w", err)
	}

	gcm, err := c.aead()
	if err != nil {
		return models.Envelope{}, err
	}

	iv := make([]byte, ivLen)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return models.Envelope{}, fmt.Errorf("generate iv: %w", err)
	}

	return models.Envelope{
		IV:         iv,
		Ciphertext: gcm.Seal(nil, iv, plaintext, nil),
	}, nil
}

// Decrypt implements [Cipher]. A failed authentication tag, a wrong-length
// IV, and undecodable plaintext all surface as *DecryptionError.
func (c *vaultCipher) Decrypt(env models.Envelope, target any) error {
	gcm, err := c.aead()
	if err != nil {
		return err
	}

	if len(env.IV) != gcm.NonceSize() {
		return &DecryptionError{Reason: "malformed iv"}
	}

	plaintext, err := gcm.Open(nil, env.IV, env.Ciphertext, nil)
	if err != nil {
		return &DecryptionError{Reason: "open ciphertext", Err: err}
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return &DecryptionError{Reason: "decode plaintext", Err: err}
	}

	return nil
}

func (c *vaultCipher) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
