// Package storage owns the app's durable client-side state under
// ~/.vendaterm: the login session (encrypted at rest), app preferences
// and the activity log directory.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	appDir      = ".vendaterm"
	sessionFile = "session.json"
	configFile  = "config.json"
	auditDir    = "activity"
)

// ErrNoSession reports that no persisted session exists
var ErrNoSession = errors.New("no stored session")

type Storage struct {
	dataDir string
}

// Session is what survives a restart: the bearer token plus enough
// vendor identity to open the dashboard without refetching, and the
// login timestamp that decides whether the session is still usable.
type Session struct {
	Token        string    `json:"token"`
	VendorID     string    `json:"vendor_id"`
	BusinessName string    `json:"business_name"`
	Email        string    `json:"email"`
	LoggedInAt   time.Time `json:"logged_in_at"`
}

// Config holds non-sensitive app preferences, stored in the clear
type Config struct {
	Theme     string `json:"theme"`
	LastEmail string `json:"last_email,omitempty"`
}

func NewStorage() (*Storage, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return newStorageAt(filepath.Join(homeDir, appDir))
}

// NewStorageAt creates a storage rooted at an explicit directory; tests
// point it at t.TempDir()
func NewStorageAt(dataDir string) (*Storage, error) {
	return newStorageAt(dataDir)
}

func newStorageAt(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Storage{dataDir: dataDir}, nil
}

// SaveSession encrypts and writes the session under the device key
func (s *Storage) SaveSession(session *Session) error {
	plaintext, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key, err := s.deviceKey()
	if err != nil {
		return err
	}

	encrypted, err := Encrypt(plaintext, key)
	if err != nil {
		return fmt.Errorf("failed to encrypt session: %w", err)
	}

	data, err := json.MarshalIndent(encrypted, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal encrypted session: %w", err)
	}

	return os.WriteFile(filepath.Join(s.dataDir, sessionFile), data, 0600)
}

// LoadSession reads and decrypts the persisted session. ErrNoSession
// when none exists; an unreadable or tampered file also comes back as
// ErrNoSession so startup falls through to the login screen.
func (s *Storage) LoadSession() (*Session, error) {
	data, err := os.ReadFile(filepath.Join(s.dataDir, sessionFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var encrypted EncryptedData
	if err := json.Unmarshal(data, &encrypted); err != nil {
		return nil, ErrNoSession
	}

	key, err := s.deviceKey()
	if err != nil {
		return nil, err
	}

	plaintext, err := Decrypt(&encrypted, key)
	if err != nil {
		return nil, ErrNoSession
	}

	var session Session
	if err := json.Unmarshal(plaintext, &session); err != nil {
		return nil, ErrNoSession
	}

	return &session, nil
}

// ClearSession removes the persisted session; clearing when none exists
// is fine
func (s *Storage) ClearSession() error {
	err := os.Remove(filepath.Join(s.dataDir, sessionFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *Storage) SaveConfig(config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(filepath.Join(s.dataDir, configFile), data, 0600)
}

func (s *Storage) LoadConfig() (*Config, error) {
	data, err := os.ReadFile(filepath.Join(s.dataDir, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Theme: "mocha"}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &config, nil
}

// AuditDir returns the directory for activity log files, creating it on
// first use
func (s *Storage) AuditDir() (string, error) {
	dir := filepath.Join(s.dataDir, auditDir)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create activity directory: %w", err)
	}
	return dir, nil
}
