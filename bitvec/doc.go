// Package bitvec provides fixed-width bit vectors decoded as big-endian unsigned integers.
//
// A Vector stores one bit per element (0 or 1). Element 0 is the most significant bit:
//
//	bitvec.Vector{1, 0, 1, 1, 0}.Uint64() // 22
//
// Vectors are produced per column by the diagnostic analyzer (gamma/epsilon) and per row by the
// bit matrix (a single reading).
package bitvec
