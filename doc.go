// Package raptorq is your forward-error-correction engine for turning one
// byte slice into an unbounded stream of recoverable encoding symbols.
//
// 🚀 What is raptorq?
//
//	A systematic RaptorQ (RFC 6330) codec core built from a handful of
//	composable subpackages:
//
//	  • Field arithmetic: GF(256) exp/log tables, GF(2) bit-packed words
//	  • Matrix layer: dense/sparse binary matrices, a dense octet matrix
//	  • PI solver: five-phase elimination-with-inactivation Gaussian solve
//	  • Encoder/Decoder: source-block orchestration, sub-block slicing,
//	    plan caching
//
// ✨ Why it looks the way it does
//
//   - Systematic   — the first K encoding symbols are exact copies of the
//     source data; only symbols beyond K involve the solver
//   - Replayable   — every row operation the solver performs is recorded,
//     not applied eagerly, so a solved plan is reusable across buffers
//   - Single-threaded core — no suspension points; callers parallelise at
//     the source-block granularity if they want to
//
// Under the hood:
//
//	gf256/, gf2/       — field arithmetic
//	prng/, systab/     — tuple generator and systematic-index parameters
//	oti/               — wire types: PayloadId, OTI, partition helpers
//	matrix/, symbol/   — binary/octet matrices, the intermediate-symbol buffer
//	constraint/        — LDPC+LT+HDPC constraint matrix construction
//	ccgraph/, opvec/   — solver support: union-find, recorded row ops
//	solver/            — the five-phase PI solver and SolverPlan
//
// This package ties them together into Encoder and Decoder.
//
//	go get github.com/katalvlaran/raptorq
package raptorq
