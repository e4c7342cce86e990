package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// Encryptor encrypts secret values with AES-256-GCM before they reach the
// database. This is server-held-key encryption at rest, not zero-knowledge:
// the server can always decrypt what it stores.
type Encryptor struct {
	key []byte
}

// NewEncryptor builds an Encryptor from a 32-byte hex key. If keyHex is
// empty, the key is derived from passphrase with SHA-256 instead.
func NewEncryptor(keyHex, passphrase string) (*Encryptor, error) {
	if keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			return nil, errors.New("master key must be 32 bytes of hex")
		}
		return &Encryptor{key: key}, nil
	}

	if passphrase == "" {
		return nil, errors.New("either a master key or a passphrase is required")
	}
	sum := sha256.Sum256([]byte(passphrase))
	return &Encryptor{key: sum[:]}, nil
}

// Encrypt seals plaintext with a random nonce and returns hex(nonce||ciphertext).
func (e *Encryptor) Encrypt(plaintext string) (string, error) {
	gcm, err := e.aead()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Tampered or truncated input yields an error.
func (e *Encryptor) Decrypt(ciphertextHex string) (string, error) {
	sealed, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return "", fmt.Errorf("decoding ciphertext: %w", err)
	}

	gcm, err := e.aead()
	if err != nil {
		return "", err
	}

	if len(sealed) < gcm.NonceSize() {
		return "", ErrCiphertextTooShort
	}

	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decrypting: %w", err)
	}

	return string(plaintext), nil
}

func (e *Encryptor) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(e.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
