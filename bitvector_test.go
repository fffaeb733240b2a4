package bvrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitVectorGetSetRoundTrip(t *testing.T) {
	bv := NewBitVector(16)
	for _, i := range []int{0, 3, 7, 8, 15} {
		require.NoError(t, bv.Set(i))
	}

	for i := 0; i < 16; i++ {
		want := 0
		switch i {
		case 0, 3, 7, 8, 15:
			want = 1
		}
		assert.Equalf(t, want, bv.Get(i), "Get(%d)", i)
	}
}

func TestBitVectorSetOutOfRange(t *testing.T) {
	bv := NewBitVector(8)
	err := bv.Set(8)
	assert.ErrorIs(t, err, ErrOutOfRange)
	err = bv.Set(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestBitVectorGetBeyondLenIsZero(t *testing.T) {
	bv := NewBitVector(4)
	assert.Equal(t, 0, bv.Get(4))
	assert.Equal(t, 0, bv.Get(1000))
}

func TestBitVectorGetNegativePanics(t *testing.T) {
	bv := NewBitVector(4)
	assert.Panics(t, func() { bv.Get(-1) })
}

func TestBitVectorAllZerosAndAllOnes(t *testing.T) {
	zeros := NewBitVector(32)
	assert.Equal(t, 0, zeros.popcount())

	ones := NewBitVector(32)
	for i := 0; i < 32; i++ {
		require.NoError(t, ones.Set(i))
	}
	assert.Equal(t, 32, ones.popcount())
}

func TestBitVectorNonMultipleOf8Padding(t *testing.T) {
	bv := NewBitVector(5)
	require.NoError(t, bv.Set(0))
	require.NoError(t, bv.Set(4))

	assert.Equal(t, 1, bv.Get(0))
	assert.Equal(t, 0, bv.Get(1))
	assert.Equal(t, 1, bv.Get(4))
	assert.Equal(t, 3, bv.padBits())
}

func TestBitVectorExtract(t *testing.T) {
	bv := NewBitVector(16)
	for _, i := range []int{0, 3, 7, 8, 15} {
		require.NoError(t, bv.Set(i))
	}

	v, err := bv.Extract(0, 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b10010001), v)

	v, err = bv.Extract(8, 16)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b10000001), v)
}

func TestBitVectorExtractOutOfOrder(t *testing.T) {
	bv := NewBitVector(16)
	_, err := bv.Extract(5, 2)
	assert.ErrorIs(t, err, ErrOutOfOrderExtract)
}

func TestBitVectorExtractPastEndIsZeroPadded(t *testing.T) {
	bv := NewBitVector(4)
	require.NoError(t, bv.Set(0))

	v, err := bv.Extract(0, 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b10000000), v)
}

func TestBitVectorExtractWidthOver64Panics(t *testing.T) {
	bv := NewBitVector(128)
	assert.Panics(t, func() { bv.Extract(0, 65) })
}

func TestNewBitVectorFromBytesRoundTrips(t *testing.T) {
	orig := NewBitVector(16)
	for _, i := range []int{0, 3, 7, 8, 15} {
		require.NoError(t, orig.Set(i))
	}

	clone := NewBitVectorFromBytes(orig.Bytes(), orig.Len())
	for i := 0; i < 16; i++ {
		assert.Equal(t, orig.Get(i), clone.Get(i))
	}
}

func TestBitVectorString(t *testing.T) {
	bv := NewBitVector(8)
	require.NoError(t, bv.Set(0))
	assert.Contains(t, bv.String(), "BitVector(8)")
}
