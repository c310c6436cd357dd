// Package session tracks the vendor's login session: in memory while the
// app runs, persisted through storage so a restart lands straight on the
// dashboard while the session is still fresh.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"tundeajayi/vendaterm/internal/models"
	"tundeajayi/vendaterm/internal/storage"
	"tundeajayi/vendaterm/internal/types"
)

type Manager struct {
	mu      sync.RWMutex
	storage *storage.Storage
	config  *Config
	current *VendorSession

	cleanupTicker *time.Ticker
	stopCleanup   chan struct{}
}

// VendorSession is the live login state for the one signed-in vendor
type VendorSession struct {
	Token        types.Sensitive
	VendorID     string
	BusinessName string
	Email        string
	LoggedInAt   time.Time
	LastActivity time.Time
	ExpiresAt    time.Time
}

type Config struct {
	// InactivityTimeout bounds how long the app may sit idle before the
	// session locks; activity pushes ExpiresAt forward
	InactivityTimeout time.Duration
	// MaxAge bounds how old a persisted login may be before a restart
	// demands fresh credentials
	MaxAge          time.Duration
	CleanupInterval time.Duration
	ExpiryWarning   time.Duration
}

type Status string

const (
	StatusActive   Status = "active"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"
	StatusInactive Status = "inactive"
)

func DefaultConfig() *Config {
	return &Config{
		InactivityTimeout: 30 * time.Minute,
		MaxAge:            7 * 24 * time.Hour,
		CleanupInterval:   30 * time.Second,
		ExpiryWarning:     2 * time.Minute,
	}
}

func NewManager(store *storage.Storage) *Manager {
	m := &Manager{
		storage:     store,
		config:      DefaultConfig(),
		stopCleanup: make(chan struct{}),
	}

	m.startCleanupRoutine()
	return m
}

// Create opens a session for a fresh login and persists it
func (m *Manager) Create(token string, vendor *models.Vendor) (*VendorSession, error) {
	now := time.Now()
	session := &VendorSession{
		Token:        types.Sensitive(token),
		VendorID:     vendor.ID,
		BusinessName: vendor.BusinessName,
		Email:        vendor.Email,
		LoggedInAt:   now,
		LastActivity: now,
		ExpiresAt:    now.Add(m.config.InactivityTimeout),
	}

	m.mu.Lock()
	m.current = session
	m.mu.Unlock()

	if m.storage != nil {
		err := m.storage.SaveSession(&storage.Session{
			Token:        token,
			VendorID:     vendor.ID,
			BusinessName: vendor.BusinessName,
			Email:        vendor.Email,
			LoggedInAt:   now,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to persist session: %w", err)
		}
	}

	return session, nil
}

// Restore reads the persisted session at startup. A session older than
// MaxAge is discarded so a stale token never auto-opens the dashboard.
func (m *Manager) Restore() (*VendorSession, bool) {
	if m.storage == nil {
		return nil, false
	}

	stored, err := m.storage.LoadSession()
	if err != nil {
		return nil, false
	}

	if time.Since(stored.LoggedInAt) > m.config.MaxAge {
		_ = m.storage.ClearSession()
		return nil, false
	}

	now := time.Now()
	session := &VendorSession{
		Token:        types.Sensitive(stored.Token),
		VendorID:     stored.VendorID,
		BusinessName: stored.BusinessName,
		Email:        stored.Email,
		LoggedInAt:   stored.LoggedInAt,
		LastActivity: now,
		ExpiresAt:    now.Add(m.config.InactivityTimeout),
	}

	m.mu.Lock()
	m.current = session
	m.mu.Unlock()

	return session, true
}

// Current returns the live session, false when none or expired
func (m *Manager) Current() (*VendorSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil || time.Now().After(m.current.ExpiresAt) {
		return nil, false
	}
	return m.current, true
}

// Touch records user activity, pushing the inactivity deadline forward
func (m *Manager) Touch() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return
	}

	now := time.Now()
	m.current.LastActivity = now
	m.current.ExpiresAt = now.Add(m.config.InactivityTimeout)
}

// Status reports the session lifecycle phase for the footer indicator
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return StatusInactive
	}

	now := time.Now()
	if now.After(m.current.ExpiresAt) {
		return StatusExpired
	}
	if m.current.ExpiresAt.Sub(now) < m.config.ExpiryWarning {
		return StatusExpiring
	}
	return StatusActive
}

// TimeRemaining reports how long until the inactivity deadline
func (m *Manager) TimeRemaining() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return 0
	}

	remaining := time.Until(m.current.ExpiresAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Close ends the session and removes the persisted copy
func (m *Manager) Close() error {
	m.mu.Lock()
	had := m.current != nil
	m.current = nil
	m.mu.Unlock()

	if !had {
		return errors.New("no active session")
	}

	if m.storage != nil {
		return m.storage.ClearSession()
	}
	return nil
}

func (m *Manager) UpdateConfig(config *Config) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.config = config
}

func (m *Manager) Shutdown() {
	close(m.stopCleanup)
	if m.cleanupTicker != nil {
		m.cleanupTicker.Stop()
	}
}

func (m *Manager) startCleanupRoutine() {
	m.cleanupTicker = time.NewTicker(m.config.CleanupInterval)

	go func() {
		for {
			select {
			case <-m.cleanupTicker.C:
				m.dropIfExpired()
			case <-m.stopCleanup:
				return
			}
		}
	}()
}

func (m *Manager) dropIfExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && time.Now().After(m.current.ExpiresAt) {
		m.current = nil
	}
}
