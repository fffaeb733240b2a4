package bvrs

// RankIndex is the three-level rank index over an immutable BitVector:
// one counter per superblock (RS), one counter per block within each
// superblock (RB), and a universal popcount table (RP) that depends only
// on the block width (each index builds its own copy). It borrows its BitVector
// rather than copying it, per spec.md §5's shared-resource policy.
//
// For bitvectors shorter than its configured linear threshold (64 bits
// by default, see WithLinearThreshold), RankIndex skips building RS/RB
// entirely and answers Rank1 with the linear-scan oracle instead, per
// spec.md §9.
type RankIndex struct {
	bv     *BitVector
	params rankParams
	linear bool

	rs        []int
	rb        [][]int
	rp        *rpTable
	totalOnes int
}

// NewRankIndex builds a RankIndex over bv. It scans bv twice, once to
// fill RS and once to fill RB; it does not build both in a single pass. bv must
// not be mutated afterward without rebuilding the index; RankIndex keeps
// a reference to bv, it does not copy it.
func NewRankIndex(bv *BitVector, opts ...IndexOption) *RankIndex {
	o := defaultIndexOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &RankIndex{bv: bv}

	if bv.Len() < o.linearThreshold {
		r.linear = true
		r.totalOnes = bv.popcount()
		return r
	}

	r.params = deriveParams(bv.Len())
	r.buildRS()
	r.buildRB()
	r.rp = buildRPTable(r.params.b)

	debugf("bvrs: built rank index n=%d s=%d b=%d superblocks=%d", bv.Len(), r.params.s, r.params.b, len(r.rs))

	return r
}

func (r *RankIndex) buildRS() {
	p := r.params
	numSuper := p.numSuperblocks()
	r.rs = make([]int, numSuper)

	count := 0
	for k := 0; k < numSuper; k++ {
		r.rs[k] = count
		start := k * p.s
		end := start + p.s
		if end > r.bv.Len() {
			end = r.bv.Len()
		}
		for j := start; j < end; j++ {
			count += r.bv.Get(j)
		}
	}
	r.totalOnes = count
}

func (r *RankIndex) buildRB() {
	p := r.params
	numSuper := len(r.rs)
	r.rb = make([][]int, numSuper)

	for k := 0; k < numSuper; k++ {
		row := make([]int, p.blocksPerSuper+1)
		count := 0
		superStart := k * p.s
		for j := 0; j < p.blocksPerSuper; j++ {
			row[j] = count
			start := superStart + j*p.b
			end := start + p.b
			if end > r.bv.Len() {
				end = r.bv.Len()
			}
			if start < end {
				for i := start; i < end; i++ {
					count += r.bv.Get(i)
				}
			}
		}
		row[p.blocksPerSuper] = count
		r.rb[k] = row
	}
}

// Rank1 returns the number of set bits in positions 0..i inclusive, the
// inclusive convention spec.md §9 deliberately fixes. Rank1 panics for
// negative i; for i at or beyond Len it silently returns the total
// popcount rather than erroring, per spec.md §7's one documented
// silent-success path.
func (r *RankIndex) Rank1(i int) int {
	if i < 0 {
		panic("bvrs: negative rank index")
	}

	if r.linear {
		return dummyRank1(r.bv, i)
	}

	if r.bv.Len() == 0 {
		return 0
	}
	if i >= r.bv.Len() {
		i = r.bv.Len() - 1
	}

	p := r.params
	k := i / p.s
	ip := i % p.s
	j := ip / p.b
	rem := ip%p.b + 1

	left := k*p.s + j*p.b
	right := left + p.b
	pattern, _ := r.bv.Extract(left, right)

	return r.rs[k] + r.rb[k][j] + r.rp.prefixRank(int(pattern), rem)
}

// Overhead returns a deterministic byte count for RS+RB+RP, excluding
// the bitvector itself, computed from the w_s/w_b counter-width budget
// spec.md §3 assigns rather than this implementation's actual Go slice
// memory layout. It is zero for an index that fell back to the linear
// oracle, since no auxiliary structure was built.
func (r *RankIndex) Overhead() int {
	if r.linear {
		return 0
	}

	p := r.params
	rsBits := len(r.rs) * p.ws
	rbBits := len(r.rs) * (p.blocksPerSuper + 1) * p.wb

	rpWidth := ceilLog2(p.b + 1)
	if rpWidth < 1 {
		rpWidth = 1
	}
	rpBits := (1 << uint(p.b)) * (p.b + 1) * rpWidth

	return bitsToBytes(rsBits) + bitsToBytes(rbBits) + bitsToBytes(rpBits)
}

func bitsToBytes(bits int) int {
	return (bits + 7) / 8
}
