package validation

import (
	"regexp"
	"testing"
)

var emailPattern = regexp.MustCompile(`[^@\s]+@[^@\s]+\.[^@\s]+`)

func TestValidateFieldRequired(t *testing.T) {
	rules := []Rule{Required("Name is required")}

	tests := []struct {
		value string
		want  string
	}{
		{"", "Name is required"},
		{"   ", "Name is required"},
		{"\t\n", "Name is required"},
		{"Ada Store", ""},
	}

	for _, tt := range tests {
		got := ValidateField(tt.value, rules)
		if got != tt.want {
			t.Errorf("ValidateField(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestValidateFieldShortCircuit(t *testing.T) {
	rules := []Rule{
		Required("Password is required"),
		MinLength(6, "Password must be at least 6 characters"),
	}

	// Empty value must report the required message only, never minLength
	got := ValidateField("", rules)
	if got != "Password is required" {
		t.Errorf("expected required message for empty value, got %q", got)
	}
}

func TestValidateFieldMinLength(t *testing.T) {
	rules := []Rule{MinLength(6, "Too short")}

	if got := ValidateField("abc", rules); got != "Too short" {
		t.Errorf("expected minLength failure for 'abc', got %q", got)
	}
	if got := ValidateField("abcdef", rules); got != "" {
		t.Errorf("expected pass for 'abcdef', got %q", got)
	}

	// Empty is governed solely by Required
	if got := ValidateField("", rules); got != "" {
		t.Errorf("minLength must not fire on empty value, got %q", got)
	}
}

func TestValidateFieldMaxLength(t *testing.T) {
	rules := []Rule{MaxLength(5, "Too long")}

	if got := ValidateField("abcdef", rules); got != "Too long" {
		t.Errorf("expected maxLength failure, got %q", got)
	}
	if got := ValidateField("abcde", rules); got != "" {
		t.Errorf("expected pass at exact limit, got %q", got)
	}
}

func TestValidateFieldPattern(t *testing.T) {
	rules := []Rule{Pattern(emailPattern, "Invalid email")}

	if got := ValidateField("bad", rules); got != "Invalid email" {
		t.Errorf("expected pattern failure for 'bad', got %q", got)
	}
	if got := ValidateField("vendor@example.com", rules); got != "" {
		t.Errorf("expected pass for valid email, got %q", got)
	}

	// The pattern must cover the whole value, not just a substring
	if got := ValidateField("x vendor@example.com y", rules); got != "Invalid email" {
		t.Errorf("expected full-match semantics, got %q", got)
	}
}

func TestValidateFieldPatternAlternation(t *testing.T) {
	// The leftmost branch matching only a prefix must not reject a value
	// another branch matches in full
	rules := []Rule{Pattern(regexp.MustCompile(`a|ab`), "no match")}

	if got := ValidateField("ab", rules); got != "" {
		t.Errorf(`ValidateField("ab") = %q, want pass`, got)
	}
	if got := ValidateField("a", rules); got != "" {
		t.Errorf(`ValidateField("a") = %q, want pass`, got)
	}
	if got := ValidateField("abc", rules); got != "no match" {
		t.Errorf(`ValidateField("abc") = %q, want "no match"`, got)
	}
}

func TestValidateFieldCustomPredicate(t *testing.T) {
	RegisterPredicate("even-length", func(value string) bool {
		return len(value)%2 == 0
	})

	rules := []Rule{Custom("even-length", "Must have even length")}

	if got := ValidateField("abc", rules); got != "Must have even length" {
		t.Errorf("expected predicate failure, got %q", got)
	}
	if got := ValidateField("abcd", rules); got != "" {
		t.Errorf("expected predicate pass, got %q", got)
	}
}

func TestValidateFieldUnknownPredicateFails(t *testing.T) {
	rules := []Rule{Custom("no-such-predicate", "Broken rule")}

	if got := ValidateField("anything", rules); got != "Broken rule" {
		t.Errorf("unregistered predicates must fail closed, got %q", got)
	}
}

func TestValidateFieldNoRules(t *testing.T) {
	if got := ValidateField("anything", nil); got != "" {
		t.Errorf("field with no rules must be valid, got %q", got)
	}
}

func TestValidateFieldDeterministic(t *testing.T) {
	rules := []Rule{
		Required("required"),
		MinLength(3, "short"),
		Pattern(emailPattern, "email"),
	}

	for _, value := range []string{"", "ab", "not-an-email", "a@b.co"} {
		first := ValidateField(value, rules)
		second := ValidateField(value, rules)
		if first != second {
			t.Errorf("ValidateField(%q) not deterministic: %q vs %q", value, first, second)
		}
	}
}

func TestValidateForm(t *testing.T) {
	ruleSets := map[string][]Rule{
		"email":    {Pattern(emailPattern, "Invalid email")},
		"password": {MinLength(6, "Password too short")},
	}

	errs := ValidateForm(map[string]string{
		"email":    "bad",
		"password": "123456",
	}, ruleSets)

	if len(errs) != 1 {
		t.Fatalf("expected exactly one failing field, got %d: %v", len(errs), errs)
	}
	if errs["email"] != "Invalid email" {
		t.Errorf("expected email failure, got %v", errs)
	}
	if _, ok := errs["password"]; ok {
		t.Error("passing fields must be omitted from the error map")
	}
}

func TestValidateFormMissingValue(t *testing.T) {
	ruleSets := map[string][]Rule{
		"name": {Required("Name is required")},
	}

	errs := ValidateForm(map[string]string{}, ruleSets)
	if errs["name"] != "Name is required" {
		t.Errorf("missing values must validate as empty, got %v", errs)
	}
}

func TestValidateFormFreshResult(t *testing.T) {
	ruleSets := map[string][]Rule{
		"name": {Required("Name is required")},
	}

	first := ValidateForm(map[string]string{"name": ""}, ruleSets)
	second := ValidateForm(map[string]string{"name": "Ada"}, ruleSets)

	if len(first) != 1 {
		t.Errorf("first pass should fail: %v", first)
	}
	if len(second) != 0 {
		t.Errorf("second pass should produce a fresh empty map: %v", second)
	}
}

func TestValidateFields(t *testing.T) {
	fields := []FieldSpec{
		{Name: "businessName", Value: "A", Rules: []Rule{Required("required"), MinLength(2, "name too short")}},
		{Name: "password", Value: "short", Rules: []Rule{Required("required"), MinLength(8, "password too short")}},
	}

	errs := ValidateFields(fields)
	if errs["businessName"] != "name too short" {
		t.Errorf("expected minLength message for businessName, got %q", errs["businessName"])
	}
	if errs["password"] != "password too short" {
		t.Errorf("expected minLength message for password, got %q", errs["password"])
	}
}

func TestBuiltinPredicates(t *testing.T) {
	phoneTests := []struct {
		value string
		want  bool
	}{
		{"+2348012345678", true},
		{"08012345678", true},
		{"+44 20 7946 0958", true},
		{"123", false},
		{"not-a-phone", false},
		{"+123456789012345678", false},
	}
	for _, tt := range phoneTests {
		if got := IsPhoneNumber(tt.value); got != tt.want {
			t.Errorf("IsPhoneNumber(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}

	priceTests := []struct {
		value string
		want  bool
	}{
		{"1500", true},
		{"19.99", true},
		{"0", false},
		{"-5", false},
		{"1.999", false},
		{"abc", false},
		{"", false},
	}
	for _, tt := range priceTests {
		if got := IsPrice(tt.value); got != tt.want {
			t.Errorf("IsPrice(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}

	quantityTests := []struct {
		value string
		want  bool
	}{
		{"0", true},
		{"42", true},
		{"-1", false},
		{"3.5", false},
		{"", false},
	}
	for _, tt := range quantityTests {
		if got := IsQuantity(tt.value); got != tt.want {
			t.Errorf("IsQuantity(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
