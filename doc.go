// Package sux provides succinct rank, select and Elias-Fano structures
// over bit vectors and monotone integer sequences.
//
// # Overview
//
// A succinct structure adds a small auxiliary index (typically 3-25% of
// the raw data size) on top of a data structure to answer queries in
// constant or near-constant time, without touching the bulk of the
// original data. sux implements three such structures:
//
//   - Rank9: constant-time rank (count of set bits before a position)
//     over a bit vector, ~25% space overhead.
//   - SimpleSelectHalf: constant-time select (position of the k-th set
//     bit), tuned for vectors where roughly half the bits are set.
//   - DoubleEF: a Quasi-Elias-Fano encoding of two simultaneously
//     monotone sequences (e.g. cumulative bucket sizes and byte
//     offsets), letting both be recovered from one jump-accelerated
//     unary scan.
//
// # When to Use sux
//
// These structures suit:
//   - Static or append-then-freeze bit vectors and sorted integer
//     arrays that are queried far more often than rebuilt.
//   - Indexes where the raw data already lives elsewhere (a bloom
//     filter's bit vector, a minimal perfect hash function's bucket
//     boundaries) and only a small amount of auxiliary structure can
//     be spared.
//
// # When NOT to Use sux
//
// sux is not suitable for:
//   - Mutable bit vectors or sequences that change after construction;
//     none of these structures support incremental update.
//   - Small vectors where a linear scan is already fast enough to make
//     the fixed overhead of an index not worth paying.
//
// # Basic Usage
//
//	bits := []uint64{0b01010101, 0} // one extra free word past the data
//	r := sux.NewRank9(bits, 8)
//	r.Rank(4) // => 2
//
//	s := sux.NewSimpleSelectHalf(bits, 8)
//	s.Select(1) // => 2
//
//	cumKeys := []uint64{0, 3, 7, 12}
//	position := []uint64{0, 10, 25, 40}
//	ef, _ := sux.NewDoubleEF(cumKeys, position)
//	c, cNext, p := ef.Get(1) // => 3, 7, 10
//
// # Performance Characteristics
//
// Rank: O(1), a fixed number of word reads and popcounts with no
// branches on bit values.
// Select: O(1) expected on half-dense vectors, an inventory lookup plus
// a short word-by-word scan whose length depends on the bits scanned.
// DoubleEF.Get: O(1) amortized, bounded by a jump-table lookup plus a
// short intra-quantum unary scan (fewer than 256 set bits per stream).
//
// Rank9 and SimpleSelectHalf borrow their bit vector rather than
// copying it; callers own its lifetime. DoubleEF encodes its input
// into arrays of its own and keeps no reference to the input slices.
package sux
