// Package crypto seals the session token persisted by the console so that
// the local database never holds a usable bearer token in plain text.
package crypto

// Sealer encrypts and decrypts short secrets with a key derived from the
// configured seal key.
type Sealer interface {
	// Seal encrypts plaintext and returns a printable blob.
	Seal(plaintext string) (string, error)

	// Open decrypts a blob produced by Seal. It returns [ErrCorruptSealedData]
	// if the blob was tampered with, truncated, or sealed with another key.
	Open(sealed string) (string, error)
}
