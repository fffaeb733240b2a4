package bvrs

import "math"

// rankParams holds the derived sizing for a rank index built over an
// n-bit vector: L = ceil(log2 n) used as a bit-width budget, s the
// superblock size in bits, b the block size in bits, blocksPerSuper the
// number of blocks in each superblock, and w_s/w_b the counter widths
// spec.md names (kept for documentation/overhead accounting; this
// package stores counters as plain ints rather than narrowing them to
// w_s/w_b bits, since the contract is the value the counter holds, not
// its storage width, and nothing checks counter widths on load — see
// SPEC_FULL.md §5).
type rankParams struct {
	n              int
	l              int
	s              int
	b              int
	blocksPerSuper int
	ws             int
	wb             int
}

// deriveParams computes the rank index parameters for an n-bit vector,
// clamping s and b to at least 1 so the index degenerates gracefully
// instead of dividing by zero for very small n, per spec.md §9.
func deriveParams(n int) rankParams {
	l := ceilLog2(n)
	if l < 1 {
		l = 1
	}

	s := ceilDiv2(l * l)
	if s < 1 {
		s = 1
	}

	b := ceilDiv2(l)
	if b < 1 {
		b = 1
	}

	blocksPerSuper := l
	if blocksPerSuper < 1 {
		blocksPerSuper = 1
	}

	ws := ceilLog2(n + 1)
	if ws < 1 {
		ws = 1
	}

	wb := ceilLog2(s)
	if wb < 1 {
		wb = 1
	}

	return rankParams{
		n:              n,
		l:              l,
		s:              s,
		b:              b,
		blocksPerSuper: blocksPerSuper,
		ws:             ws,
		wb:             wb,
	}
}

// ceilLog2 returns ceil(log2(n)) for n >= 1, and 0 for n <= 0 (log2 is
// undefined there; callers clamp the result upward separately).
func ceilLog2(n int) int {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 0
	}
	return int(math.Ceil(math.Log2(float64(n))))
}

// ceilDiv2 returns ceil(x/2).
func ceilDiv2(x int) int {
	return (x + 1) / 2
}

// numSuperblocks returns ceil(n/s), the length of RS, or 1 when n is 0.
func (p rankParams) numSuperblocks() int {
	if p.n == 0 {
		return 1
	}
	return (p.n + p.s - 1) / p.s
}
