package util

import "encoding/json"

// Optional distinguishes the three JSON states of a PATCH field: absent,
// explicit null, and a concrete value. Plain pointers collapse absent and
// null, which would make it impossible to clear a nullable column.
type Optional[T any] struct {
	Set   bool // field appeared in the payload
	Valid bool // field carried a non-null value
	Value T
}

func NewOptional[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// NullOptional is an explicit null: present, clearing the target.
func NullOptional[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns the value as a nullable pointer, nil when the field was null.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
