package bvrs

// dummyRank1 is the linear-scan rank oracle: the number of set bits in
// positions 0..i inclusive. It is the correctness reference every
// three-level RankIndex is tested against, and also the implementation
// RankIndex falls back to for bitvectors shorter than its configured
// linear threshold, per spec.md §9.
//
// spec.md §9 picks the inclusive convention deliberately (rank1(i)
// counts 0..i, not 0..i-1); this must never silently drift to the
// exclusive variant some rank/select literature uses.
func dummyRank1(bv *BitVector, i int) int {
	if i < 0 {
		panic("bvrs: negative rank index")
	}

	rank := 0
	last := i
	if last >= bv.Len() {
		last = bv.Len() - 1
	}
	for j := 0; j <= last; j++ {
		rank += bv.Get(j)
	}
	return rank
}

// dummySelect1 is the linear-scan select oracle: the least i with
// dummyRank1(bv, i) == k, or ok=false if k exceeds the vector's total
// popcount.
func dummySelect1(bv *BitVector, k int) (i int, ok bool) {
	if k <= 0 {
		panic("bvrs: select index must be positive")
	}

	rank := 0
	for j := 0; j < bv.Len(); j++ {
		rank += bv.Get(j)
		if rank == k {
			return j, true
		}
	}
	return 0, false
}
