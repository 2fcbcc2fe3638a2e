// Package prng implements the RaptorQ pseudo-random generator: the four
// 256-entry tables V0..V3 of 32-bit values, Rand(y,i,m), and Tuple(K',X) —
// the generator that picks which intermediate symbols an LT/PI-encoded
// symbol combines. Grounded on google-gofountain's ru10TripleGenerator
// (ru10.go), which plays the same role for the RU10 predecessor codec,
// adapted here to fixed V tables (filled at init from a fixed-seed
// splitmix64 stream, see tables.go) instead of a Mersenne Twister seed.
//
//	go get github.com/katalvlaran/raptorq/prng
package prng
