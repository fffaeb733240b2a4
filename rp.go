package bvrs

import "github.com/robskie/bit"

// rpTable is the universal popcount lookup table described in spec.md
// §3: rpTable[p][j] is the popcount of the first (highest-order) j bits
// of the b-bit pattern p, under the same big-endian convention Extract
// uses. It depends only on b, never on the bitvector's contents; each
// RankIndex still builds its own copy, nothing caches it across indices.
//
// Building a row amounts to popcounting p right-shifted by (b-j) bits;
// this reuses the teacher's own word-popcount primitive
// (github.com/robskie/bit) rather than a per-bit summation loop, since
// by this point the pattern already fits in a uint64.
type rpTable struct {
	b    int
	rows [][]int
}

// buildRPTable precomputes the popcount table for all 2^b patterns of
// width b. This is the one construction step spec.md §5 calls out as
// worth a synchronous-precomputation note: it is bounded by 2^b * b and
// never grows with n once b is fixed.
func buildRPTable(b int) *rpTable {
	size := 1 << uint(b)
	rows := make([][]int, size)

	for p := 0; p < size; p++ {
		row := make([]int, b+1)
		for j := 0; j <= b; j++ {
			row[j] = bit.PopCount(uint64(p) >> uint(b-j))
		}
		rows[p] = row
	}

	debugf("bvrs: built RP table for b=%d (%d patterns)", b, size)

	return &rpTable{b: b, rows: rows}
}

// prefixRank returns RP[pattern][j], the popcount of the top j bits of
// the b-bit pattern.
func (t *rpTable) prefixRank(pattern, j int) int {
	return t.rows[pattern][j]
}
