package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Product is one catalog entry. Price is stored in minor units (kobo,
// cents) to avoid float drift; the forms keep prices as strings until
// ParsePrice at submit time.
type Product struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	Price             int64     `json:"price"`
	Currency          string    `json:"currency"`
	Stock             int       `json:"stock"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	Category          string    `json:"category,omitempty"`
	ImageURL          string    `json:"image_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DefaultLowStockThreshold applies when a product doesn't set its own
const DefaultLowStockThreshold = 5

func (p *Product) IsOutOfStock() bool {
	return p.Stock <= 0
}

func (p *Product) IsLowStock() bool {
	threshold := p.LowStockThreshold
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return p.Stock > 0 && p.Stock <= threshold
}

// StockLabel returns the badge text shown next to a product
func (p *Product) StockLabel() string {
	switch {
	case p.IsOutOfStock():
		return "Out of stock"
	case p.IsLowStock():
		return fmt.Sprintf("Low stock (%d left)", p.Stock)
	default:
		return fmt.Sprintf("%d in stock", p.Stock)
	}
}

// DisplayPrice formats the minor-unit price with its currency code
func (p *Product) DisplayPrice() string {
	return fmt.Sprintf("%s %s", p.Currency, FormatPrice(p.Price))
}

// Catalog is the in-memory product list a vendor works against. Search
// and filtering happen client-side over this slice; the backend only
// pages the raw list.
type Catalog struct {
	Products []Product `json:"products"`
}

// Search returns products whose name, description or category contains
// the query, case-insensitively. An empty query returns everything.
func (c *Catalog) Search(query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.Products
	}

	var matches []Product
	for _, p := range c.Products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(p.Category), query) {
			matches = append(matches, p)
		}
	}
	return matches
}

// FilterByCategory returns products in the given category, all for ""
func (c *Catalog) FilterByCategory(category string) []Product {
	if category == "" {
		return c.Products
	}

	var matches []Product
	for _, p := range c.Products {
		if strings.EqualFold(p.Category, category) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Categories returns the distinct category names in first-seen order
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range c.Products {
		if p.Category == "" || seen[strings.ToLower(p.Category)] {
			continue
		}
		seen[strings.ToLower(p.Category)] = true
		categories = append(categories, p.Category)
	}
	return categories
}

// LowStockCount reports how many products are low or out of stock
func (c *Catalog) LowStockCount() int {
	count := 0
	for _, p := range c.Products {
		if p.IsLowStock() || p.IsOutOfStock() {
			count++
		}
	}
	return count
}

// FindByID returns the product with the given id, or nil
func (c *Catalog) FindByID(id string) *Product {
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i]
		}
	}
	return nil
}

// ParsePrice converts a decimal amount string ("19.99") to minor units.
// This is the explicit string-to-number boundary: the validation layer
// only ever sees the raw string.
func ParsePrice(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("price cannot be empty")
	}

	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price format")
	}
	if amount <= 0 {
		return 0, fmt.Errorf("price must be greater than 0")
	}

	parts := strings.Split(value, ".")
	if len(parts) == 2 && len(parts[1]) > 2 {
		return 0, fmt.Errorf("price cannot have more than 2 decimal places")
	}

	return int64(math.Round(amount * 100)), nil
}

// FormatPrice renders minor units as a decimal string with thousands
// separators ("1,500.00")
func FormatPrice(minor int64) string {
	negative := minor < 0
	if negative {
		minor = -minor
	}

	whole := minor / 100
	frac := minor % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(",")
		}
		b.WriteRune(d)
	}

	out := fmt.Sprintf("%s.%02d", b.String(), frac)
	if negative {
		return "-" + out
	}
	return out
}
