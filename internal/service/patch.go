package service

import "encoding/json"

// Nullable is a JSON field that tells an omitted key apart from an explicit null.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// Null returns a Nullable that clears the field.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// Value returns a Nullable that sets the field to v.
func Value[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n Nullable[T]) apply(dst **T) {
	if n.Set {
		*dst = n.Value
	}
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
