// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// ErrCorruptSealedData is returned by Open when a blob cannot be decrypted.
var ErrCorruptSealedData = errors.New("corrupt sealed data")

const saltSize = 16

// argonParams are the Argon2id tuning parameters used to derive the sealing
// key from the configured secret.
type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

// sealer is the private implementation of [Sealer].
//
// Blob layout (base64, standard encoding): salt (16) ‖ nonce (12) ‖ ciphertext.
type sealer struct {
	secret []byte
	params argonParams
}

// NewSealer constructs a [Sealer] keyed by secret, using the OWASP (2024)
// Argon2id alternative profile:
//   - time cost:   2 iterations
//   - memory cost: 19 MiB
//   - parallelism: 1 thread
//   - key length:  32 bytes (AES-256)
func NewSealer(secret string) Sealer {
	return newSealer(secret, argonParams{time: 2, memory: 19 * 1024, threads: 1, keyLen: 32})
}

func newSealer(secret string, params argonParams) *sealer {
	return &sealer{secret: []byte(secret), params: params}
}

func (s *sealer) deriveKey(salt []byte) []byte {
	return argon2.IDKey(s.secret, salt, s.params.time, s.params.memory, s.params.threads, s.params.keyLen)
}

func (s *sealer) gcm(salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Seal implements [Sealer]. A fresh random salt and nonce are drawn for every
// call, so sealing the same plaintext twice yields different blobs.
func (s *sealer) Seal(plaintext string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.gcm(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(plaintext), salt)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [Sealer]. The salt doubles as additional authenticated
// data, so swapping it between blobs fails authentication.
func (s *sealer) Open(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrCorruptSealedData, err)
	}
	if len(blob) < saltSize {
		return "", fmt.Errorf("%w: blob too short", ErrCorruptSealedData)
	}

	salt, rest := blob[:saltSize], blob[saltSize:]
	gcm, err := s.gcm(salt)
	if err != nil {
		return "", err
	}

	if len(rest) < gcm.NonceSize() {
		return "", fmt.Errorf("%w: blob too short", ErrCorruptSealedData)
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, salt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptSealedData, err)
	}

	return string(plaintext), nil
}
