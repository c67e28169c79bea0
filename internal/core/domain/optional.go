package domain

import (
	"bytes"
	"encoding/json"
)

// Number is the set of metric value types a campaign carries: integer
// counts and floating point percentages.
type Number interface {
	~int64 | ~float64
}

// Optional holds a metric that may be unavailable. The zero value is
// "not available", which is distinct from a present zero. It encodes to
// JSON as the number or null.
type Optional[T Number] struct {
	value T
	valid bool
}

// Some returns a present value.
func Some[T Number](v T) Optional[T] {
	return Optional[T]{value: v, valid: true}
}

// None returns an unavailable value.
func None[T Number]() Optional[T] {
	return Optional[T]{}
}

// FromPtr converts a nullable pointer, as produced by database scans, into
// an Optional.
func FromPtr[T Number](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.valid
}

// Valid reports whether the value is present.
func (o Optional[T]) Valid() bool {
	return o.valid
}

// OrElse returns the value when present and def otherwise.
func (o Optional[T]) OrElse(def T) T {
	if o.valid {
		return o.value
	}
	return def
}

// Ptr returns a pointer to a copy of the value, or nil when unavailable.
func (o Optional[T]) Ptr() *T {
	if !o.valid {
		return nil
	}
	v := o.value
	return &v
}

// MarshalJSON implements json.Marshaler.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves the value
// unavailable.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
