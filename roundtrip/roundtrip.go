// Package roundtrip copies a value by encoding it with msgpack and decoding
// the bytes into a fresh value. Generated deep-copy code uses it for leaf
// types that can marshal themselves but have no DeepCopy or Clone method.
package roundtrip

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Clone returns an independent copy of v. v is encoded through a pointer so
// codecs declared on *T are found.
func Clone[T any](v T) (T, error) {
	var out T
	data, err := msgpack.Marshal(&v)
	if err != nil {
		return out, fmt.Errorf("roundtrip: encode %T: %w", v, err)
	}
	if err := msgpack.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("roundtrip: decode %T: %w", v, err)
	}
	return out, nil
}

// Copy is Clone for generated code: when the round trip fails the original
// value is returned and shared.
func Copy[T any](v T) T {
	out, err := Clone(v)
	if err != nil {
		return v
	}
	return out
}
