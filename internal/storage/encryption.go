package storage

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/scrypt"
)

const (
	keyLength    = 32
	nonceLength  = 12
	saltLength   = 32
	secretLength = 32
	scryptN      = 32768
	scryptR      = 8
	scryptP      = 1

	deviceKeyFile = "device.key"
)

type EncryptedData struct {
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// deviceKey loads the per-install secret used to encrypt the session at
// rest, generating it on first run. The secret file is 0600 inside the
// 0700 data dir; the point is that the token never sits on disk in the
// clear, not protection against an attacker who owns the home directory.
func (s *Storage) deviceKey() ([]byte, error) {
	path := filepath.Join(s.dataDir, deviceKeyFile)

	secret, err := os.ReadFile(path)
	if err == nil && len(secret) == secretLength {
		return secret, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read device key: %w", err)
	}

	secret = make([]byte, secretLength)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return nil, fmt.Errorf("failed to generate device key: %w", err)
	}
	if err := os.WriteFile(path, secret, 0600); err != nil {
		return nil, fmt.Errorf("failed to write device key: %w", err)
	}
	return secret, nil
}

// Encrypt seals data under a key derived from the secret with scrypt
// and a fresh salt, AES-256-GCM for the cipher
func Encrypt(data, secret []byte) (*EncryptedData, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}

	key, err := scrypt.Key(secret, salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceLength)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return &EncryptedData{
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: aesGCM.Seal(nil, nonce, data, nil),
	}, nil
}

// Decrypt reverses Encrypt; any tampering surfaces as a single opaque
// error so callers treat the stored blob as gone
func Decrypt(encData *EncryptedData, secret []byte) ([]byte, error) {
	if encData == nil {
		return nil, errors.New("encrypted data is nil")
	}

	key, err := scrypt.Key(secret, encData.Salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, encData.Nonce, encData.Ciphertext, nil)
	if err != nil {
		return nil, errors.New("corrupted or foreign session data")
	}

	return plaintext, nil
}
