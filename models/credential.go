package models

// Envelope is the authenticated-encryption container stored alongside every
// credential: a fresh 12-byte IV plus the AES-GCM ciphertext (auth tag
// included). Without the vault key it is opaque noise.
type Envelope struct {
	IV         []byte `json:"iv"`
	Ciphertext []byte `json:"ciphertext"`
}

// IsZero reports whether the envelope carries no ciphertext at all.
// Records without an envelope are legacy plaintext entries.
func (e Envelope) IsZero() bool {
	return len(e.IV) == 0 && len(e.Ciphertext) == 0
}

// Credential is a vault record as persisted: plaintext metadata plus the
// encrypted secret. ID is generated once at save time and is the merge and
// delete key everywhere; it never changes for the record's lifetime.
type Credential struct {
	ID        string    `json:"id"`
	Site      string    `json:"site,omitempty"`
	Username  string    `json:"username,omitempty"`
	Encrypted *Envelope `json:"encrypted,omitempty"`
}

// CredentialInput is the caller-supplied payload of a save operation.
type CredentialInput struct {
	Site     string `json:"site"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// DecryptedCredential is a fully readable record: the shape returned by the
// secrets listing and the shape the remote account service speaks (remote
// records travel plaintext over the secured transport).
type DecryptedCredential struct {
	ID       string `json:"id"`
	Site     string `json:"site"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

// SecretPayload is what actually goes inside the envelope. Current-generation
// records encrypt only the password; the oldest generation also covered site
// and username, so both fields stay decodable for the legacy read path.
type SecretPayload struct {
	Password string `json:"password"`
	Site     string `json:"site,omitempty"`
	Username string `json:"username,omitempty"`
}
