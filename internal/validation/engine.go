package validation

import (
	"strings"
)

// Errors maps failing field names to their first failing rule's message.
// Fields that pass are omitted entirely.
type Errors map[string]string

// HasErrors reports whether any field failed
func (e Errors) HasErrors() bool {
	return len(e) > 0
}

// ValidateField evaluates rules in declaration order against a raw string
// value and returns the message of the first failing rule, or "" when every
// rule passes. It is a pure function: no state, deterministic for identical
// inputs.
func ValidateField(value string, rules []Rule) string {
	for _, rule := range rules {
		if msg := checkRule(value, rule); msg != "" {
			return msg
		}
	}
	return ""
}

func checkRule(value string, rule Rule) string {
	switch rule.Kind {
	case RuleRequired:
		if strings.TrimSpace(value) == "" {
			return rule.Message
		}

	case RuleMinLength:
		// Empty values are Required's concern, not a length failure
		if value != "" && len(value) < rule.Length {
			return rule.Message
		}

	case RuleMaxLength:
		if len(value) > rule.Length {
			return rule.Message
		}

	case RulePattern:
		if rule.Pattern == nil {
			return ""
		}
		if !rule.Pattern.MatchString(value) {
			return rule.Message
		}

	case RuleCustom:
		predicate, ok := lookupPredicate(rule.Predicate)
		if !ok || !predicate(value) {
			return rule.Message
		}
	}

	return ""
}

// ValidateForm runs ValidateField for every field named in ruleSets and
// returns a fresh Errors map containing only the failing fields. Fields
// missing from values are validated against the empty string. Evaluation
// order across fields is unspecified; rules never see other fields' values.
func ValidateForm(values map[string]string, ruleSets map[string][]Rule) Errors {
	errs := make(Errors)

	for name, rules := range ruleSets {
		if msg := ValidateField(values[name], rules); msg != "" {
			errs[name] = msg
		}
	}

	return errs
}

// ValidateFields is the FieldSpec-shaped convenience over ValidateForm
func ValidateFields(fields []FieldSpec) Errors {
	errs := make(Errors)

	for _, field := range fields {
		if msg := ValidateField(field.Value, field.Rules); msg != "" {
			errs[field.Name] = msg
		}
	}

	return errs
}
