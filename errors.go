package bvrs

import "errors"

// Sentinel errors returned by this package's constructors and mutators.
// Callers should compare against these with errors.Is, since every
// returned error is wrapped with additional context via fmt.Errorf("%w").
var (
	// ErrOutOfRange is returned when an index falls outside a
	// bitvector's [0, n) range or a sparse array's [0, N) capacity.
	ErrOutOfRange = errors.New("bvrs: index out of range")

	// ErrNonMonotonic is returned by SparseArray.Append when pos does
	// not strictly increase over the last appended position.
	ErrNonMonotonic = errors.New("bvrs: append position is not strictly increasing")

	// ErrOutOfOrderExtract is returned by BitVector.Extract when l > r.
	ErrOutOfOrderExtract = errors.New("bvrs: extract range is out of order")

	// ErrNotFound is returned by Load when the snapshot path does not
	// exist.
	ErrNotFound = errors.New("bvrs: snapshot not found")

	// ErrCorruptSnapshot is returned by Load when a snapshot fails a
	// structural or parameter-consistency check.
	ErrCorruptSnapshot = errors.New("bvrs: corrupt snapshot")

	// ErrIO wraps an underlying byte-stream failure during Save/Load.
	ErrIO = errors.New("bvrs: io failure")
)
