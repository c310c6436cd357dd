package session

import (
	"testing"
	"time"

	"tundeajayi/vendaterm/internal/models"
	"tundeajayi/vendaterm/internal/storage"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	store, err := storage.NewStorageAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorageAt: %v", err)
	}

	m := NewManager(store)
	t.Cleanup(m.Shutdown)
	return m
}

func testVendor() *models.Vendor {
	return &models.Vendor{ID: "v1", BusinessName: "Ada Store", Email: "ada@example.com"}
}

func TestCreateAndCurrent(t *testing.T) {
	m := newTestManager(t)

	created, err := m.Create("tok-123", testVendor())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Token.Reveal() != "tok-123" {
		t.Errorf("token = %q", created.Token.Reveal())
	}

	current, ok := m.Current()
	if !ok {
		t.Fatal("expected an active session")
	}
	if current.BusinessName != "Ada Store" {
		t.Errorf("BusinessName = %q", current.BusinessName)
	}
	if m.Status() != StatusActive {
		t.Errorf("Status = %q", m.Status())
	}
}

func TestRestorePersistedSession(t *testing.T) {
	dir := t.TempDir()

	store, err := storage.NewStorageAt(dir)
	if err != nil {
		t.Fatalf("NewStorageAt: %v", err)
	}

	first := NewManager(store)
	if _, err := first.Create("tok-123", testVendor()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	first.Shutdown()

	// A fresh manager over the same storage simulates an app restart
	store2, err := storage.NewStorageAt(dir)
	if err != nil {
		t.Fatalf("NewStorageAt: %v", err)
	}
	second := NewManager(store2)
	defer second.Shutdown()

	restored, ok := second.Restore()
	if !ok {
		t.Fatal("expected session to restore")
	}
	if restored.Token.Reveal() != "tok-123" {
		t.Errorf("token = %q", restored.Token.Reveal())
	}
	if restored.VendorID != "v1" {
		t.Errorf("VendorID = %q", restored.VendorID)
	}
}

func TestRestoreRejectsStaleSession(t *testing.T) {
	m := newTestManager(t)
	m.UpdateConfig(&Config{
		InactivityTimeout: time.Minute,
		MaxAge:            10 * time.Millisecond,
		CleanupInterval:   time.Minute,
		ExpiryWarning:     time.Second,
	})

	if _, err := m.Create("tok-123", testVendor()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	if _, ok := m.Restore(); ok {
		t.Error("a session past MaxAge must not restore")
	}
}

func TestTouchExtendsDeadline(t *testing.T) {
	m := newTestManager(t)
	m.Create("tok", testVendor())

	before := m.TimeRemaining()
	time.Sleep(20 * time.Millisecond)
	m.Touch()
	after := m.TimeRemaining()

	if after < before {
		t.Errorf("Touch must push the deadline forward: before %v, after %v", before, after)
	}
}

func TestExpiredSessionNotCurrent(t *testing.T) {
	m := newTestManager(t)
	m.UpdateConfig(&Config{
		InactivityTimeout: 20 * time.Millisecond,
		MaxAge:            time.Hour,
		CleanupInterval:   time.Minute,
		ExpiryWarning:     time.Millisecond,
	})

	m.Create("tok", testVendor())
	time.Sleep(50 * time.Millisecond)

	if _, ok := m.Current(); ok {
		t.Error("expired session must not be current")
	}
	if m.Status() != StatusExpired {
		t.Errorf("Status = %q, want expired", m.Status())
	}
}

func TestClose(t *testing.T) {
	m := newTestManager(t)
	m.Create("tok", testVendor())

	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, ok := m.Current(); ok {
		t.Error("closed session must not be current")
	}
	if _, ok := m.Restore(); ok {
		t.Error("closed session must not restore")
	}

	if err := m.Close(); err == nil {
		t.Error("closing with no session should report an error")
	}
}
