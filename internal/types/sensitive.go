package types

// Sensitive wraps a secret string (the API bearer token) so it never
// leaks through logs or %v formatting. The raw value must be requested
// explicitly via Reveal.
type Sensitive string

// String masks the value; fmt and loggers go through here
func (s Sensitive) String() string {
	if s == "" {
		return ""
	}
	return "[redacted]"
}

// Reveal returns the raw secret
func (s Sensitive) Reveal() string {
	return string(s)
}

// IsZero reports whether no secret is held
func (s Sensitive) IsZero() bool {
	return s == ""
}

// MarshalJSON masks the value in any serialized structure. Persisting
// the real token is storage's job, via an explicit field copy.
func (s Sensitive) MarshalJSON() ([]byte, error) {
	return []byte(`"[redacted]"`), nil
}
