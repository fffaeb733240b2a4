package bvrs

// debugHook receives construction diagnostics. It defaults to a no-op,
// so release builds pay nothing for the debugf calls sprinkled through
// construction; tests and callers that want to observe RP-table/index
// builds install their own via SetDebugf.
var debugHook = func(string, ...interface{}) {}

// SetDebugf installs f as the sink for this package's debug-only
// diagnostics (currently: RankIndex/RP-table construction). Passing nil
// restores the default no-op. Per spec.md §6, nothing in this package
// prints to stdout on its own; SetDebugf is the only way to observe
// these messages, and no production code path depends on it being set.
func SetDebugf(f func(format string, args ...interface{})) {
	if f == nil {
		f = func(string, ...interface{}) {}
	}
	debugHook = f
}

func debugf(format string, args ...interface{}) {
	debugHook(format, args...)
}

// indexOptions configures RankIndex construction.
type indexOptions struct {
	linearThreshold int
}

func defaultIndexOptions() indexOptions {
	return indexOptions{linearThreshold: 64}
}

// IndexOption configures a RankIndex at construction time.
type IndexOption func(*indexOptions)

// WithLinearThreshold overrides the bitvector length below which
// RankIndex falls back to the linear-scan oracle instead of building
// the three-level index, per spec.md §9's "clamp and fall back below
// n=64" contract. The default is 64; threshold must be non-negative.
func WithLinearThreshold(n int) IndexOption {
	return func(o *indexOptions) {
		if n < 0 {
			n = 0
		}
		o.linearThreshold = n
	}
}
