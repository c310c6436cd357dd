// Package whatsapp builds wa.me deep-links that open a chat with the
// vendor, optionally with a prefilled message.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"tundeajayi/vendaterm/internal/models"
)

const baseURL = "https://wa.me/"

// NormalizePhone strips formatting from a phone number, leaving the bare
// digits wa.me expects. A leading plus sign is dropped, separators and
// parentheses are removed.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(phone) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ChatLink returns a wa.me link for the number, with message prefilled
// when non-empty. An empty or digit-less phone yields "".
func ChatLink(phone, message string) string {
	digits := NormalizePhone(phone)
	if digits == "" {
		return ""
	}

	link := baseURL + digits
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}

// ProductEnquiry builds the buyer-side link for asking about a product
func ProductEnquiry(vendor *models.Vendor, product *models.Product) string {
	message := fmt.Sprintf("Hi %s! I'm interested in %s (%s). Is it available?",
		vendor.BusinessName, product.Name, product.DisplayPrice())
	return ChatLink(vendor.ContactNumber(), message)
}

// OrderFollowUp builds the vendor-side link for messaging a customer
// about their order
func OrderFollowUp(order *models.Order) string {
	message := fmt.Sprintf("Hello %s, this is about your order %s (%s).",
		order.CustomerName, order.ID, order.DisplayTotal())
	return ChatLink(order.CustomerPhone, message)
}

// Storefront builds the plain chat link shown on the dashboard
func Storefront(vendor *models.Vendor) string {
	message := fmt.Sprintf("Hi %s! I found your store and would like to know more.",
		vendor.BusinessName)
	return ChatLink(vendor.ContactNumber(), message)
}
