package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func readSessionFile(t *testing.T, s *Storage) []byte {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join(s.dataDir, sessionFile))
	if err != nil {
		t.Fatalf("read session file: %v", err)
	}
	return raw
}

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := NewStorageAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorageAt: %v", err)
	}
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	loggedIn := time.Now().Truncate(time.Second)
	session := &Session{
		Token:        "tok-abc123",
		VendorID:     "v1",
		BusinessName: "Ada Store",
		Email:        "ada@example.com",
		LoggedInAt:   loggedIn,
	}

	if err := s.SaveSession(session); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	loaded, err := s.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}

	if loaded.Token != session.Token {
		t.Errorf("Token = %q", loaded.Token)
	}
	if loaded.BusinessName != session.BusinessName {
		t.Errorf("BusinessName = %q", loaded.BusinessName)
	}
	if !loaded.LoggedInAt.Equal(loggedIn) {
		t.Errorf("LoggedInAt = %v, want %v", loaded.LoggedInAt, loggedIn)
	}
}

func TestLoadSessionMissing(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.LoadSession()
	if !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestClearSession(t *testing.T) {
	s := newTestStorage(t)

	if err := s.ClearSession(); err != nil {
		t.Errorf("clearing a missing session must be a no-op, got %v", err)
	}

	s.SaveSession(&Session{Token: "tok"})
	if err := s.ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}

	if _, err := s.LoadSession(); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession after clear, got %v", err)
	}
}

func TestSessionNotStoredInPlaintext(t *testing.T) {
	s := newTestStorage(t)

	token := "super-secret-token-value"
	s.SaveSession(&Session{Token: token})

	raw := readSessionFile(t, s)
	if bytes.Contains(raw, []byte(token)) {
		t.Error("token must not appear in the session file in the clear")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	// Missing config yields defaults
	config, err := s.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Theme != "mocha" {
		t.Errorf("default theme = %q", config.Theme)
	}

	config.LastEmail = "ada@example.com"
	if err := s.SaveConfig(config); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := s.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.LastEmail != "ada@example.com" {
		t.Errorf("LastEmail = %q", loaded.LastEmail)
	}
}

func TestEncryptDecrypt(t *testing.T) {
	secret := bytes.Repeat([]byte{7}, secretLength)
	plaintext := []byte("hello vendaterm")

	encrypted, err := Encrypt(plaintext, secret)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if bytes.Contains(encrypted.Ciphertext, plaintext) {
		t.Error("ciphertext contains plaintext")
	}

	decrypted, err := Decrypt(encrypted, secret)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("round trip = %q", decrypted)
	}

	wrong := bytes.Repeat([]byte{8}, secretLength)
	if _, err := Decrypt(encrypted, wrong); err == nil {
		t.Error("decrypt with wrong secret must fail")
	}
}

func TestDecryptTampered(t *testing.T) {
	secret := bytes.Repeat([]byte{7}, secretLength)
	encrypted, err := Encrypt([]byte("payload"), secret)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	encrypted.Ciphertext[0] ^= 0xff
	if _, err := Decrypt(encrypted, secret); err == nil {
		t.Error("tampered ciphertext must fail to decrypt")
	}
}
