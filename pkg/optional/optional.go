// Package optional models PATCH payload fields that distinguish "absent"
// from "present with null".
//
// A Value decoded from JSON is Set whenever its key appears in the object.
// A literal null leaves Set true and Null true. Absent keys keep the zero
// Value, which Apply treats as a no-op.
package optional

import (
	"bytes"
	"encoding/json"
)

type Value[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of returns a present, non-null value.
func Of[T any](v T) Value[T] {
	return Value[T]{Set: true, Value: v}
}

// Null returns a present null value.
func Null[T any]() Value[T] {
	return Value[T]{Set: true, Null: true}
}

func (o *Value[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Present reports whether the field carries a non-null value.
func (o Value[T]) Present() bool {
	return o.Set && !o.Null
}

// Apply overwrites dst when the field was present. Null resets dst to the
// zero value.
func (o Value[T]) Apply(dst *T) bool {
	if !o.Set {
		return false
	}
	if o.Null {
		var zero T
		*dst = zero
		return true
	}
	*dst = o.Value
	return true
}

// ApplyPtr overwrites a nullable destination when the field was present.
// Null clears it.
func (o Value[T]) ApplyPtr(dst **T) bool {
	if !o.Set {
		return false
	}
	if o.Null {
		*dst = nil
		return true
	}
	v := o.Value
	*dst = &v
	return true
}
