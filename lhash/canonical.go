package lhash

import (
	"encoding/json"
	"fmt"
)

// Canonical returns the canonical byte form of v used as digest input.
// A string value is used verbatim;
// any other value is rendered as compact JSON,
// which is deterministic for equal logical values
// (object keys are emitted in sorted order).
//
// It returns an error if v has no JSON representation.
func Canonical(v any) ([]byte, error) {
	if s, ok := v.(string); ok {
		return []byte(s), nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("canonicalize value: %w", err)
	}
	return b, nil
}

// CanonicalPair returns the canonical byte form of the ordered pair
// [left, right]: the compact JSON serialization of a two-element array.
// The serialization is order-sensitive,
// so CanonicalPair(a, b) and CanonicalPair(b, a) differ whenever a != b.
//
// Every node hash in a tree is the digest of a CanonicalPair result.
func CanonicalPair(left, right any) ([]byte, error) {
	b, err := json.Marshal([2]any{left, right})
	if err != nil {
		return nil, fmt.Errorf("canonicalize pair: %w", err)
	}
	return b, nil
}

// Digest canonicalizes v and digests it with the named algorithm,
// returning the lowercase hex digest string.
// It is a convenience for one-off hashing outside a tree;
// names are resolved exactly as in [Named].
func Digest(algo string, v any) (string, error) {
	h, err := Named(algo)
	if err != nil {
		return "", err
	}

	in, err := Canonical(v)
	if err != nil {
		return "", err
	}

	return h.Sum(in), nil
}
