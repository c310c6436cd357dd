package validation

import (
	"regexp"
)

// RuleKind identifies the constraint a Rule applies
type RuleKind int

const (
	RuleRequired RuleKind = iota
	RuleMinLength
	RuleMaxLength
	RulePattern
	RuleCustom
)

// Rule is a single declarative constraint on a field value.
// Rules for a field are evaluated in declaration order and evaluation
// stops at the first failure, so message precedence follows rule order.
type Rule struct {
	Kind      RuleKind
	Length    int
	Pattern   *regexp.Regexp
	Predicate string
	Message   string
}

// Required fails on empty or whitespace-only values
func Required(message string) Rule {
	return Rule{Kind: RuleRequired, Message: message}
}

// MinLength fails when a non-empty value is shorter than n characters.
// Empty values are governed solely by Required.
func MinLength(n int, message string) Rule {
	return Rule{Kind: RuleMinLength, Length: n, Message: message}
}

// MaxLength fails when the value is longer than n characters
func MaxLength(n int, message string) Rule {
	return Rule{Kind: RuleMaxLength, Length: n, Message: message}
}

// Pattern fails when the value does not fully match the expression. The
// expression is re-anchored so a partial match never passes, even for
// alternations whose leftmost branch matches a prefix.
func Pattern(expr *regexp.Regexp, message string) Rule {
	anchored := regexp.MustCompile(`\A(?:` + expr.String() + `)\z`)
	return Rule{Kind: RulePattern, Pattern: anchored, Message: message}
}

// Custom fails when the named registered predicate rejects the value.
// Predicates are registered by name so rule sets stay declarative and
// testable in isolation.
func Custom(predicate, message string) Rule {
	return Rule{Kind: RuleCustom, Predicate: predicate, Message: message}
}

// FieldSpec ties a field name to its current raw value and rule sequence.
// Values are always strings at the validation boundary; numeric coercion
// happens at point of use, never inside the engine.
type FieldSpec struct {
	Name  string
	Value string
	Rules []Rule
}
