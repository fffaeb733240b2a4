package bvrs

// SelectSupport answers select1 queries over a RankIndex via binary
// search, trading O(log n) query time (each step pays a Rank1
// lookup) for carrying no extra index of its own, per spec.md §4.3's
// deliberate space/time trade-off. SelectSupport holds a read-only
// reference to the RankIndex it was built from; per the flat-ownership
// redesign in spec.md §9, it does not sit behind a second layer of
// borrowing.
type SelectSupport struct {
	r *RankIndex
}

// NewSelectSupport wraps r for select queries.
func NewSelectSupport(r *RankIndex) *SelectSupport {
	return &SelectSupport{r: r}
}

// Select1 returns the least i such that Rank1(i) == k, the position of
// the kth set bit (1-indexed). ok is false if k is non-positive or
// exceeds the bitvector's total popcount.
func (s *SelectSupport) Select1(k int) (i int, ok bool) {
	n := s.r.bv.Len()
	if k <= 0 || n == 0 {
		return 0, false
	}

	max := s.r.Rank1(n - 1)
	if k > max {
		return 0, false
	}

	return s.binarySearch(0, n, k), true
}

// binarySearch implements spec.md §4.3's recursion as a loop: the
// target index lies in [l, r] (in (l, r] once l has moved off its
// starting 0); each step narrows that interval using Rank1 at its
// midpoint and midpoint+1, and l is returned once l == r.
func (s *SelectSupport) binarySearch(l, r, k int) int {
	for {
		if l == r {
			return l
		}

		m := (l + r) / 2
		rankM := s.r.Rank1(m)
		rankM1 := s.r.Rank1(m + 1)

		switch {
		case rankM == k-1 && rankM1 == k:
			return m + 1
		case rankM1 < k:
			l = m
		default:
			r = m
		}
	}
}

// Overhead forwards to the underlying RankIndex, since SelectSupport
// carries no storage of its own beyond the reference.
func (s *SelectSupport) Overhead() int {
	return s.r.Overhead()
}
