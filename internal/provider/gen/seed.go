// Package gen implements the deterministic record synthesis engine.
// Every output is a pure function of a seed derived from the record's
// identity, so regenerating the same instant or fund-quarter always
// reproduces the same record across process restarts.
package gen

import "hash/fnv"

// Derive maps a key string to a stable 32-bit seed using FNV-1a.
func Derive(key string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32()
}

// Pick deterministically selects an element from items using the seed and a
// salt. Distinct salts yield independent selections from the same seed.
// Returns ok=false for an empty slice, never panics.
func Pick[T any](items []T, seed, salt uint32) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	idx := (uint64(seed) + uint64(salt)) % uint64(len(items))
	return items[idx], true
}
