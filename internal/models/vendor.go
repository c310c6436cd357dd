package models

import (
	"strings"
	"time"
)

// Vendor is the storefront profile buyers see. WhatsAppNumber is the
// number deep-links point at; it may differ from the login phone.
type Vendor struct {
	ID             string    `json:"id"`
	BusinessName   string    `json:"business_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	WhatsAppNumber string    `json:"whatsapp_number"`
	Description    string    `json:"description,omitempty"`
	Location       string    `json:"location,omitempty"`
	Currency       string    `json:"currency"`
	LogoURL        string    `json:"logo_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ContactNumber returns the number buyers should message, falling back
// to the login phone when no dedicated WhatsApp number is set
func (v *Vendor) ContactNumber() string {
	if v.WhatsAppNumber != "" {
		return v.WhatsAppNumber
	}
	return v.Phone
}

// StoreSlug derives the URL-safe storefront handle from the business
// name: lowercase, spaces collapsed to single dashes, everything else
// except letters and digits dropped.
func (v *Vendor) StoreSlug() string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(v.BusinessName)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-' || r == '_':
			if !lastDash {
				b.WriteString("-")
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
