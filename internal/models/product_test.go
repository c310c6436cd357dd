package models

import (
	"testing"
)

func TestProductStockChecks(t *testing.T) {
	tests := []struct {
		name       string
		stock      int
		threshold  int
		outOfStock bool
		lowStock   bool
	}{
		{"plenty", 50, 5, false, false},
		{"at threshold", 5, 5, false, true},
		{"below threshold", 2, 5, false, true},
		{"zero", 0, 5, true, false},
		{"negative", -1, 5, true, false},
		{"default threshold", 4, 0, false, true},
		{"above default threshold", 6, 0, false, false},
	}

	for _, tt := range tests {
		p := &Product{Stock: tt.stock, LowStockThreshold: tt.threshold}
		if got := p.IsOutOfStock(); got != tt.outOfStock {
			t.Errorf("%s: IsOutOfStock = %v, want %v", tt.name, got, tt.outOfStock)
		}
		if got := p.IsLowStock(); got != tt.lowStock {
			t.Errorf("%s: IsLowStock = %v, want %v", tt.name, got, tt.lowStock)
		}
	}
}

func TestCatalogSearch(t *testing.T) {
	catalog := &Catalog{Products: []Product{
		{ID: "1", Name: "Ankara Dress", Description: "Handmade print dress", Category: "Clothing"},
		{ID: "2", Name: "Leather Sandals", Description: "Brown leather", Category: "Shoes"},
		{ID: "3", Name: "Beaded Necklace", Description: "Coral beads", Category: "Accessories"},
	}}

	if got := catalog.Search(""); len(got) != 3 {
		t.Errorf("empty query should return all products, got %d", len(got))
	}

	if got := catalog.Search("LEATHER"); len(got) != 1 || got[0].ID != "2" {
		t.Errorf("case-insensitive name/description search failed: %v", got)
	}

	if got := catalog.Search("clothing"); len(got) != 1 || got[0].ID != "1" {
		t.Errorf("category search failed: %v", got)
	}

	if got := catalog.Search("nonexistent"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestCatalogFilterByCategory(t *testing.T) {
	catalog := &Catalog{Products: []Product{
		{ID: "1", Category: "Clothing"},
		{ID: "2", Category: "clothing"},
		{ID: "3", Category: "Shoes"},
	}}

	if got := catalog.FilterByCategory("Clothing"); len(got) != 2 {
		t.Errorf("expected 2 clothing products, got %d", len(got))
	}
	if got := catalog.FilterByCategory(""); len(got) != 3 {
		t.Errorf("empty category should return all, got %d", len(got))
	}
}

func TestCatalogLowStockCount(t *testing.T) {
	catalog := &Catalog{Products: []Product{
		{Stock: 50, LowStockThreshold: 5},
		{Stock: 3, LowStockThreshold: 5},
		{Stock: 0, LowStockThreshold: 5},
	}}

	if got := catalog.LowStockCount(); got != 2 {
		t.Errorf("LowStockCount = %d, want 2", got)
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"19.99", 1999, false},
		{"1500", 150000, false},
		{"0.5", 50, false},
		{" 10 ", 1000, false},
		{"", 0, true},
		{"0", 0, true},
		{"-5", 0, true},
		{"1.999", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePrice(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePrice(%q) expected error, got %d", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePrice(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePrice(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{1999, "19.99"},
		{150000, "1,500.00"},
		{50, "0.50"},
		{123456789, "1,234,567.89"},
		{-1999, "-19.99"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.minor); got != tt.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", tt.minor, got, tt.want)
		}
	}
}

func TestVendorStoreSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ada Store", "ada-store"},
		{"  Mama's Kitchen 24/7  ", "mamas-kitchen-247"},
		{"UPPER_case shop", "upper-case-shop"},
	}

	for _, tt := range tests {
		v := &Vendor{BusinessName: tt.name}
		if got := v.StoreSlug(); got != tt.want {
			t.Errorf("StoreSlug(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestVendorContactNumber(t *testing.T) {
	v := &Vendor{Phone: "+2348011111111"}
	if got := v.ContactNumber(); got != "+2348011111111" {
		t.Errorf("fallback to phone failed: %q", got)
	}

	v.WhatsAppNumber = "+2348022222222"
	if got := v.ContactNumber(); got != "+2348022222222" {
		t.Errorf("WhatsApp number should win: %q", got)
	}
}
