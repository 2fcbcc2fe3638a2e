// Package gf2 implements bit-packed GF(2) row operations on []uint64 words,
// row-major and right-aligned (bit 0 of word 0 is column 0). These are the
// primitives DenseBinaryMatrix and SparseBinaryMatrix's dense section build
// on: word-wise XOR, ranged popcount, get/set bit, and partial-range XOR used
// by the solver's Phase-1 elimination (Errata 11 fast path).
//
//	go get github.com/katalvlaran/raptorq/gf2
package gf2
