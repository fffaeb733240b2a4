// Package bvrs implements succinct rank/select indices over an immutable
// bitvector, and a sparse array built on top of them.
//
// The index follows G. Jacobson's three-level scheme (superblocks, blocks,
// and a universal popcount table) as described by G. Navarro and
// E. Providel in "Fast, Small, Simple Rank/Select on Bitmaps" (SEA 2012),
// see http://dcc.uchile.cl/~gnavarro/ps/sea12.1.pdf, adapted here to the
// exact byte layout and parameter formulas fixed by this package's design
// document rather than the sampling scheme in that paper's reference
// implementation.
//
// Rank1 answers "how many set bits are at or before position i" in O(1).
// Select1 answers "where is the kth set bit" in O(log n) by binary search
// over Rank1. SparseArray composes both to map a sparse set of positions
// onto a dense payload slice.
//
// Instances are immutable once built and safe for concurrent reads from
// multiple goroutines without synchronization. Mutation (Set, Append, a
// rebuild) requires the caller to provide exclusive access; nothing in
// this package takes a lock.
package bvrs
