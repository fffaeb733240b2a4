package bvrs

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ugorji/go/codec"
)

// Snapshot framing: a 4-byte magic, a 1-byte format version, then a
// msgpack-encoded payload. Grounded on
// other_examples/01e2fd4a_vsivsi-rsdic's MarshalBinary/UnmarshalBinary
// pair over codec.MsgpackHandle — the same rank/select-dictionary
// domain persisting itself the same way.
var snapshotMagic = [4]byte{'B', 'V', 'R', 'S'}

const snapshotVersion = 1

// paramsSnapshot records the derived parameters an index was built
// with, so a loaded snapshot can be checked against parameters
// recomputed from its own n, per spec.md §6: "a conforming reader must
// reject snapshots whose recomputed derived parameters disagree with
// the stored ones."
type paramsSnapshot struct {
	L              int
	S              int
	B              int
	BlocksPerSuper int
	Ws             int
	Wb             int
}

func snapshotParams(p rankParams) paramsSnapshot {
	return paramsSnapshot{p.l, p.s, p.b, p.blocksPerSuper, p.ws, p.wb}
}

func (ps paramsSnapshot) matches(p rankParams) bool {
	return ps == snapshotParams(p)
}

// rankSnapshot is the on-disk representation of a RankIndex. RP is not
// persisted: it depends only on Params.B, so Load rebuilds it rather
// than spending bytes on a table that's a pure function of a number
// already in the snapshot.
type rankSnapshot struct {
	N         int
	Linear    bool
	TotalOnes int
	Params    paramsSnapshot
	BVBytes   []byte
	RS        []int
	RB        [][]int
}

func (r *RankIndex) toSnapshot() rankSnapshot {
	return rankSnapshot{
		N:         r.bv.Len(),
		Linear:    r.linear,
		TotalOnes: r.totalOnes,
		Params:    snapshotParams(r.params),
		BVBytes:   r.bv.Bytes(),
		RS:        r.rs,
		RB:        r.rb,
	}
}

func rankIndexFromSnapshot(s rankSnapshot) (*RankIndex, error) {
	bv := NewBitVectorFromBytes(s.BVBytes, s.N)

	r := &RankIndex{
		bv:        bv,
		linear:    s.Linear,
		totalOnes: s.TotalOnes,
		rs:        s.RS,
		rb:        s.RB,
	}

	if !s.Linear {
		params := deriveParams(s.N)
		if !s.Params.matches(params) {
			return nil, fmt.Errorf("%w: stored parameters disagree with parameters recomputed from n=%d", ErrCorruptSnapshot, s.N)
		}
		r.params = params
		r.rp = buildRPTable(params.b)
	}

	return r, nil
}

func marshal(v interface{}) ([]byte, error) {
	var payload []byte
	var bh codec.MsgpackHandle
	enc := codec.NewEncoderBytes(&payload, &bh)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	out := make([]byte, 0, len(snapshotMagic)+1+len(payload))
	out = append(out, snapshotMagic[:]...)
	out = append(out, snapshotVersion)
	out = append(out, payload...)
	return out, nil
}

func unmarshal(data []byte, v interface{}) error {
	if len(data) < len(snapshotMagic)+1 {
		return fmt.Errorf("%w: snapshot too short", ErrCorruptSnapshot)
	}
	if !bytes.Equal(data[:len(snapshotMagic)], snapshotMagic[:]) {
		return fmt.Errorf("%w: bad magic header", ErrCorruptSnapshot)
	}
	if data[len(snapshotMagic)] != snapshotVersion {
		return fmt.Errorf("%w: unsupported snapshot version %d", ErrCorruptSnapshot, data[len(snapshotMagic)])
	}

	var bh codec.MsgpackHandle
	dec := codec.NewDecoderBytes(data[len(snapshotMagic)+1:], &bh)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return nil
}

// MarshalBinary encodes the rank index into a self-contained snapshot,
// including the bitvector it was built over.
func (r *RankIndex) MarshalBinary() ([]byte, error) {
	return marshal(r.toSnapshot())
}

// UnmarshalBinary replaces r's contents with the snapshot encoded in
// data.
func (r *RankIndex) UnmarshalBinary(data []byte) error {
	var s rankSnapshot
	if err := unmarshal(data, &s); err != nil {
		return err
	}

	loaded, err := rankIndexFromSnapshot(s)
	if err != nil {
		return err
	}
	*r = *loaded
	return nil
}

// Save writes r's snapshot to path.
func (r *RankIndex) Save(path string) error {
	return saveSnapshot(path, r)
}

// LoadRankIndex reads a RankIndex snapshot from path.
func LoadRankIndex(path string) (*RankIndex, error) {
	r := &RankIndex{}
	if err := loadSnapshot(path, r); err != nil {
		return nil, err
	}
	return r, nil
}

// MarshalBinary encodes the select support's underlying rank index,
// since SelectSupport itself carries no storage of its own.
func (s *SelectSupport) MarshalBinary() ([]byte, error) {
	return s.r.MarshalBinary()
}

// UnmarshalBinary replaces s's underlying rank index with the snapshot
// encoded in data.
func (s *SelectSupport) UnmarshalBinary(data []byte) error {
	if s.r == nil {
		s.r = &RankIndex{}
	}
	return s.r.UnmarshalBinary(data)
}

// Save writes s's snapshot to path.
func (s *SelectSupport) Save(path string) error {
	return s.r.Save(path)
}

// LoadSelectSupport reads a SelectSupport snapshot from path.
func LoadSelectSupport(path string) (*SelectSupport, error) {
	r, err := LoadRankIndex(path)
	if err != nil {
		return nil, err
	}
	return NewSelectSupport(r), nil
}

// sparseSnapshot is the on-disk representation of a SparseArray[T]. It
// nests the whole rankSnapshot under Rank, next to the payload and the
// append-position state.
type sparseSnapshot[T any] struct {
	Rank    rankSnapshot
	V       []T
	LastPos int
	HasLast bool
}

// MarshalBinary encodes the sparse array, its presence bitvector, rank
// index, and payload into a self-contained snapshot.
func (sa *SparseArray[T]) MarshalBinary() ([]byte, error) {
	return marshal(sparseSnapshot[T]{
		Rank:    sa.rank.toSnapshot(),
		V:       sa.v,
		LastPos: sa.lastPos,
		HasLast: sa.hasLast,
	})
}

// UnmarshalBinary replaces sa's contents with the snapshot encoded in
// data.
func (sa *SparseArray[T]) UnmarshalBinary(data []byte) error {
	var s sparseSnapshot[T]
	if err := unmarshal(data, &s); err != nil {
		return err
	}

	rank, err := rankIndexFromSnapshot(s.Rank)
	if err != nil {
		return err
	}

	sa.bv = rank.bv
	sa.rank = rank
	sa.sel = NewSelectSupport(rank)
	sa.v = s.V
	sa.lastPos = s.LastPos
	sa.hasLast = s.HasLast
	return nil
}

// Save writes sa's snapshot to path.
func (sa *SparseArray[T]) Save(path string) error {
	return saveSnapshot(path, sa)
}

// LoadSparseArray reads a SparseArray[T] snapshot from path.
func LoadSparseArray[T any](path string) (*SparseArray[T], error) {
	sa := &SparseArray[T]{}
	if err := loadSnapshot(path, sa); err != nil {
		return nil, err
	}
	return sa, nil
}

type binaryMarshaler interface {
	MarshalBinary() ([]byte, error)
}

type binaryUnmarshaler interface {
	UnmarshalBinary([]byte) error
}

func saveSnapshot(path string, m binaryMarshaler) error {
	data, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

func loadSnapshot(path string, m binaryUnmarshaler) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return m.UnmarshalBinary(data)
}
