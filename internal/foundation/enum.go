package foundation

import (
	"fmt"
	"sort"
	"strings"
)

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalizer maps loosely spelled user input onto a closed set of values.
type Normalizer[T comparable] struct {
	values       map[string]T
	defaultValue T
}

// NewNormalizer creates a normalizer. Keys are matched case-insensitively
// after trimming; several keys may map to the same value.
func NewNormalizer[T comparable](values map[string]T, defaultValue T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	for k, v := range values {
		normalized[normalizeKey(k)] = v
	}
	return &Normalizer[T]{values: normalized, defaultValue: defaultValue}
}

// Normalize returns the value for raw, or the default when raw is unknown.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.values[normalizeKey(raw)]; ok {
		return v
	}
	return n.defaultValue
}

// NormalizeWithError is Normalize that reports unknown input instead of defaulting.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if v, ok := n.values[normalizeKey(raw)]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q (accepted: %s)", raw, strings.Join(n.Keys(), ", "))
}

// Keys lists the accepted spellings in sorted order.
func (n *Normalizer[T]) Keys() []string {
	keys := make([]string, 0, len(n.values))
	for k := range n.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
