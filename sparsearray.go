package bvrs

import "fmt"

// SparseArray maps a dense logical index space of capacity N onto a
// compact payload slice V, using a presence BitVector plus a RankIndex
// and SelectSupport over it for navigation. Per spec.md §9's flat
// ownership redesign, SparseArray owns its BitVector and RankIndex
// directly rather than nesting borrows through an intermediate type.
//
// Elements must be appended in strictly increasing position order.
// Append rebuilds the rank/select index immediately, so it costs O(N)
// per call; SparseArrayBuilder defers that cost to a single Freeze for
// bulk-build workloads.
type SparseArray[T any] struct {
	bv   *BitVector
	rank *RankIndex
	sel  *SelectSupport
	v    []T

	lastPos int
	hasLast bool
	opts    []IndexOption
}

// NewSparseArray returns an empty sparse array of capacity n. opts are
// forwarded to every RankIndex rebuild triggered by Append.
func NewSparseArray[T any](n int, opts ...IndexOption) *SparseArray[T] {
	sa := &SparseArray[T]{
		bv:   NewBitVector(n),
		opts: opts,
	}
	sa.rebuild()
	return sa
}

func (sa *SparseArray[T]) rebuild() {
	sa.rank = NewRankIndex(sa.bv, sa.opts...)
	sa.sel = NewSelectSupport(sa.rank)
}

// Append records elem at logical position pos. pos must be within
// [0, Size()) and strictly greater than the position of the previous
// append; violations return ErrOutOfRange or ErrNonMonotonic.
func (sa *SparseArray[T]) Append(elem T, pos int) error {
	if pos < 0 || pos >= sa.bv.Len() {
		return fmt.Errorf("%w: Append position %d, capacity %d", ErrOutOfRange, pos, sa.bv.Len())
	}
	if sa.hasLast && pos <= sa.lastPos {
		return fmt.Errorf("%w: Append position %d after previous position %d", ErrNonMonotonic, pos, sa.lastPos)
	}

	if err := sa.bv.Set(pos); err != nil {
		return err
	}
	sa.v = append(sa.v, elem)
	sa.lastPos = pos
	sa.hasLast = true

	sa.rebuild()
	return nil
}

// GetAtRank returns V[k-1] for 1 <= k <= NumElem(), and ok=false
// otherwise. It is a pure payload lookup that never touches the
// presence bitvector.
func (sa *SparseArray[T]) GetAtRank(k int) (elem T, ok bool) {
	if k < 1 || k > len(sa.v) {
		var zero T
		return zero, false
	}
	return sa.v[k-1], true
}

// GetAtIndex returns the element stored at logical position i, if any.
// ok is true iff the presence bit at i is set, in which case the
// element returned is V[Rank1(i)-1].
func (sa *SparseArray[T]) GetAtIndex(i int) (elem T, ok bool) {
	if i < 0 || i >= sa.bv.Len() {
		var zero T
		return zero, false
	}
	if sa.bv.Get(i) == 0 {
		var zero T
		return zero, false
	}
	return sa.GetAtRank(sa.rank.Rank1(i))
}

// NumElemAt returns Rank1(i): the number of elements present at or
// before position i.
func (sa *SparseArray[T]) NumElemAt(i int) int {
	return sa.rank.Rank1(i)
}

// Size returns the array's logical capacity N.
func (sa *SparseArray[T]) Size() int {
	return sa.bv.Len()
}

// NumElem returns the number of elements appended so far.
func (sa *SparseArray[T]) NumElem() int {
	return len(sa.v)
}

// Overhead forwards to the underlying RankIndex via SelectSupport.
func (sa *SparseArray[T]) Overhead() int {
	return sa.sel.Overhead()
}
