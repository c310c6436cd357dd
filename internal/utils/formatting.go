package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TruncateText shortens a string to max characters with an ellipsis
func TruncateText(text string, max int) string {
	if max <= 3 || len(text) <= max {
		return text
	}
	return text[:max-3] + "..."
}

// FormatPhone renders a phone number for display, grouping the digits
// after the country code ("+234 801 234 5678" style)
func FormatPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	hasPlus := strings.HasPrefix(phone, "+")
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := digits.String()
	if len(s) < 7 {
		return phone
	}

	// Leading digits beyond the last 10 are the country code
	var parts []string
	if len(s) > 10 {
		parts = append(parts, s[:len(s)-10])
		s = s[len(s)-10:]
	}
	parts = append(parts, s[:3], s[3:6], s[6:])

	out := strings.Join(parts, " ")
	if hasPlus {
		return "+" + out
	}
	return out
}

// FormatDuration formats a duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	} else if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	return fmt.Sprintf("%dd", int(d.Hours()/24))
}

// FormatRelativeTime renders how long ago a timestamp was ("3h ago")
func FormatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	elapsed := time.Since(t)
	if elapsed < time.Minute {
		return "just now"
	}
	return FormatDuration(elapsed) + " ago"
}

// FormatStepIndicator creates a step indicator string
func FormatStepIndicator(currentStep, totalSteps int, stepNames []string) string {
	var result strings.Builder

	for i := 0; i < totalSteps; i++ {
		if i > 0 {
			result.WriteString(" → ")
		}

		stepName := strconv.Itoa(i + 1)
		if i < len(stepNames) {
			stepName = stepNames[i]
		}

		if i == currentStep {
			result.WriteString("[" + stepName + "]")
		} else if i < currentStep {
			result.WriteString("✓ " + stepName)
		} else {
			result.WriteString(stepName)
		}
	}

	return result.String()
}

// FormatCount pluralizes a simple "<n> <noun>" phrase
func FormatCount(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
