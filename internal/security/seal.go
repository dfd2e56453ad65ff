package security

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrSealedPayload is returned when a sealed blob cannot be opened, either
// because it was tampered with or was written under a different key.
var ErrSealedPayload = errors.New("sealed payload cannot be opened")

// Keeper seals and opens small payloads with an XChaCha20-Poly1305 key
// stored next to the application state.
type Keeper struct {
	aead cipher.AEAD
}

// NewKeeper loads the key at keyPath, generating one on first use. The key
// file is created with owner-only permissions.
func NewKeeper(keyPath string) (*Keeper, error) {
	key, err := os.ReadFile(keyPath)
	if errors.Is(err, os.ErrNotExist) {
		key = make([]byte, chacha20poly1305.KeySize)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generating sealing key: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(keyPath), 0o700); err != nil {
			return nil, fmt.Errorf("creating key directory: %w", err)
		}
		if err := os.WriteFile(keyPath, key, 0o600); err != nil {
			return nil, fmt.Errorf("writing sealing key: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("reading sealing key: %w", err)
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("sealing key at %s has %d bytes, want %d", keyPath, len(key), chacha20poly1305.KeySize)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("initializing cipher: %w", err)
	}
	return &Keeper{aead: aead}, nil
}

// Seal encrypts plaintext and prefixes the random nonce to the result.
func (k *Keeper) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, k.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}
	return k.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a blob produced by Seal.
func (k *Keeper) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < k.aead.NonceSize() {
		return nil, ErrSealedPayload
	}
	nonce, ciphertext := sealed[:k.aead.NonceSize()], sealed[k.aead.NonceSize():]
	plaintext, err := k.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrSealedPayload
	}
	return plaintext, nil
}
