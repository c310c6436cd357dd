package validation

import (
	"strconv"
	"strings"
	"sync"
)

// Predicate reports whether a raw field value is acceptable
type Predicate func(value string) bool

var (
	predicateMu sync.RWMutex
	predicates  = map[string]Predicate{}
)

// RegisterPredicate makes a named predicate available to Custom rules.
// Registering the same name again replaces the previous predicate.
func RegisterPredicate(name string, fn Predicate) {
	predicateMu.Lock()
	defer predicateMu.Unlock()

	predicates[name] = fn
}

func lookupPredicate(name string) (Predicate, bool) {
	predicateMu.RLock()
	defer predicateMu.RUnlock()

	fn, ok := predicates[name]
	return fn, ok
}

// Built-in predicates used by the storefront forms
const (
	PredicatePhone    = "phone"
	PredicatePrice    = "price"
	PredicateQuantity = "quantity"
)

func init() {
	RegisterPredicate(PredicatePhone, IsPhoneNumber)
	RegisterPredicate(PredicatePrice, IsPrice)
	RegisterPredicate(PredicateQuantity, IsQuantity)
}

// IsPhoneNumber accepts international phone numbers: an optional leading
// plus sign followed by 7 to 15 digits, with spaces and dashes tolerated
func IsPhoneNumber(value string) bool {
	value = strings.TrimSpace(value)
	value = strings.NewReplacer(" ", "", "-", "").Replace(value)
	value = strings.TrimPrefix(value, "+")

	if len(value) < 7 || len(value) > 15 {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsPrice accepts a positive decimal amount with at most two decimal places
func IsPrice(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	amount, err := strconv.ParseFloat(value, 64)
	if err != nil || amount <= 0 {
		return false
	}

	parts := strings.Split(value, ".")
	if len(parts) == 2 && len(parts[1]) > 2 {
		return false
	}
	return len(parts) <= 2
}

// IsQuantity accepts a non-negative integer
func IsQuantity(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	n, err := strconv.Atoi(value)
	return err == nil && n >= 0
}
