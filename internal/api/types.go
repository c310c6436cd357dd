package api

import (
	"sync"
	"time"

	"tundeajayi/vendaterm/internal/models"
)

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
	CacheTTL   time.Duration
}

// ConnStatus is the last known state of the backend connection, shown in
// the dashboard footer
type ConnStatus struct {
	BaseURL     string
	Connected   bool
	Version     string
	LastChecked time.Time
}

// CatalogCache holds the vendor's product list for a short TTL so screen
// switches don't refetch on every navigation
type CatalogCache struct {
	mu      sync.RWMutex
	catalog *models.Catalog
	fetched time.Time
	ttl     time.Duration
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
}

// LoginResult is the payload both login and register resolve to
type LoginResult struct {
	Token  string        `json:"token"`
	Vendor models.Vendor `json:"vendor"`
}

type ProfileUpdate struct {
	BusinessName   string `json:"business_name"`
	WhatsAppNumber string `json:"whatsapp_number"`
	Description    string `json:"description,omitempty"`
	Location       string `json:"location,omitempty"`
	Currency       string `json:"currency"`
	LogoURL        string `json:"logo_url,omitempty"`
}

type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type ProductInput struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	Price             int64  `json:"price"`
	Currency          string `json:"currency"`
	Stock             int    `json:"stock"`
	LowStockThreshold int    `json:"low_stock_threshold,omitempty"`
	Category          string `json:"category,omitempty"`
	ImageURL          string `json:"image_url,omitempty"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// errorResponse is the backend's error envelope; Message is always a
// human-readable string
type errorResponse struct {
	Message string `json:"message"`
}
