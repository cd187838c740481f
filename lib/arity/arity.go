// Package arity deals with upstream fields that serialize as a bare
// object when singular and as an array when plural. Every feed
// normalizer coerces through OneOrMany instead of special-casing
// individual fields.
package arity

import "encoding/json"

// OneOrMany decodes either a single JSON value or a JSON array of values
// into a uniform slice.
type OneOrMany[T any] []T

func (o *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	var many []T
	if err := json.Unmarshal(data, &many); err == nil {
		*o = many
		return nil
	}

	var one T
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*o = []T{one}
	return nil
}

// Coerce normalizes an already-decoded generic value ([]any or a single
// value) into a slice. Nil yields an empty slice.
func Coerce(v any) []any {
	switch t := v.(type) {
	case nil:
		return []any{}
	case []any:
		return t
	default:
		return []any{t}
	}
}
