package crypto

import "fmt"

// DecryptionError reports that an envelope could not be opened. Callers must
// treat it as "this record is unreadable" and skip the record; a single
// corrupt entry never fails a whole listing.
type DecryptionError struct {
	// Reason names the failing step: "malformed iv", "open ciphertext",
	// "decode plaintext".
	Reason string

	// Err is the underlying cause, possibly nil.
	Err error
}

func (e *DecryptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decryption failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decryption failed: %s", e.Reason)
}

func (e *DecryptionError) Unwrap() error {
	return e.Err
}
