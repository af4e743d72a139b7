package testutils

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Uint64s returns n pseudo random values. The same seed always yields the
// same values, so failures reproduce.
func Uint64s(n int, seed uint64) []uint64 {
	values := make([]uint64, n)
	for i := range values {
		values[i] = hashIndex(i, seed)
	}
	return values
}

// Float64s returns n values uniformly spread over [0, scale).
func Float64s(n int, scale float64, seed uint64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(hashIndex(i, seed)>>11) / (1 << 53) * scale
	}
	return values
}

// Ints returns n values in [0, bound). Small bounds give duplicate heavy data.
func Ints(n int, bound int, seed uint64) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = int(hashIndex(i, seed) % uint64(bound))
	}
	return values
}

// Intn returns a single value in [0, bound).
func Intn(bound int, seed uint64) int {
	return int(hashIndex(-1, seed) % uint64(bound))
}

func hashIndex(i int, seed uint64) uint64 {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], uint64(i))
	h := xxhash.NewWithSeed(seed)
	_, _ = h.Write(scratch[:])
	return h.Sum64()
}
