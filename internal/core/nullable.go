// AngelaMos | 2026
// nullable.go

package core

import (
	"bytes"
	"encoding/json"
)

// Nullable is a patch field that distinguishes an absent key from an
// explicit null. Set reports the key was present; Valid reports it was not
// null.
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func NewNullable[T any](value T) Nullable[T] {
	return Nullable[T]{Set: true, Valid: true, Value: value}
}

func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		n.Valid = false
		n.Value = zero
		return nil
	}

	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns the value as a pointer, nil when null or unset.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
