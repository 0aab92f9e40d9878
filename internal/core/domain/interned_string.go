package domain

import "unique"

// InternedString is a value object wrapping a unique.Handle[string].
// Step names, script paths, and glob patterns repeat across the pipeline,
// its reports, and telemetry, so they are interned once.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s and returns the handle wrapper.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// String returns the underlying string value. The zero value renders as "".
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	is.h = unique.Make(string(text))
	return nil
}
