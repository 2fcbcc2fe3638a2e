// Package constraint builds the binary (LDPC+LT) sub-matrix and the HDPC
// octet sub-matrix of the solver's A matrix for a given set of systematic
// parameters (spec.md §4.5). Two entry points share the same LDPC/HDPC
// construction and differ only in which intermediate symbol IDs (ISIs) seed
// the LT rows: BuildEncoding uses the sequential ISIs 0..K'-1, BuildDecoding
// uses the caller's received-symbol ESI-to-ISI mapping.
//
// Matrix selection (dense vs sparse) follows the teacher's pattern of
// picking a storage strategy by a size threshold rather than exposing it as
// caller-visible policy: K' < 2000 gets a DenseBinaryMatrix, otherwise a
// SparseBinaryMatrix with an empty initial dense section.
//
//	go get github.com/katalvlaran/raptorq/constraint
package constraint
