package utils

import (
	"testing"
	"time"
)

func TestTruncateText(t *testing.T) {
	tests := []struct {
		text     string
		max      int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a longer description", 10, "this is..."},
		{"abc", 3, "abc"},
		{"", 5, ""},
	}

	for _, tt := range tests {
		if got := TruncateText(tt.text, tt.max); got != tt.expected {
			t.Errorf("TruncateText(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.expected)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		phone    string
		expected string
	}{
		{"+2348012345678", "+234 801 234 5678"},
		{"08012345678", "0 801 234 5678"},
		{"8012345678", "801 234 5678"},
		{"12345", "12345"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatPhone(tt.phone); got != tt.expected {
			t.Errorf("FormatPhone(%q) = %q, want %q", tt.phone, got, tt.expected)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{30 * time.Second, "30s"},
		{5 * time.Minute, "5m"},
		{3 * time.Hour, "3h"},
		{48 * time.Hour, "2d"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.expected {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.expected)
		}
	}
}

func TestFormatRelativeTime(t *testing.T) {
	if got := FormatRelativeTime(time.Time{}); got != "never" {
		t.Errorf("zero time = %q, want \"never\"", got)
	}
	if got := FormatRelativeTime(time.Now().Add(-10 * time.Second)); got != "just now" {
		t.Errorf("10s ago = %q, want \"just now\"", got)
	}
	if got := FormatRelativeTime(time.Now().Add(-2 * time.Hour)); got != "2h ago" {
		t.Errorf("2h ago = %q, want \"2h ago\"", got)
	}
}

func TestFormatStepIndicator(t *testing.T) {
	names := []string{"Details", "Pricing", "Review"}

	got := FormatStepIndicator(1, 3, names)
	expected := "✓ Details → [Pricing] → Review"
	if got != expected {
		t.Errorf("FormatStepIndicator = %q, want %q", got, expected)
	}

	got = FormatStepIndicator(0, 2, nil)
	if got != "[1] → 2" {
		t.Errorf("FormatStepIndicator without names = %q, want %q", got, "[1] → 2")
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(1, "order", "orders"); got != "1 order" {
		t.Errorf("FormatCount(1) = %q", got)
	}
	if got := FormatCount(3, "order", "orders"); got != "3 orders" {
		t.Errorf("FormatCount(3) = %q", got)
	}
	if got := FormatCount(0, "order", "orders"); got != "0 orders" {
		t.Errorf("FormatCount(0) = %q", got)
	}
}
