package reltable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allemangd-uncc/hpc-toddcox/reltable"
)

func TestAppendScan(t *testing.T) {
	rt := reltable.NewRelTable(0, 1, 4) // (01)^2, L=4
	rt.AppendScan(0)
	assert.Equal(t, 1, rt.NumRows())
	assert.Equal(t, 0, rt.PosOf(0))
	assert.Equal(t, -1, rt.PosOf(1))
	assert.Equal(t, 0, rt.Init[0])
	assert.Equal(t, 0, rt.StartIndex[0])
	assert.Equal(t, 3, rt.EndIndex[0]) // Length-1
}

func TestRemove_SwapWithLast(t *testing.T) {
	rt := reltable.NewRelTable(0, 1, 4)
	rt.AppendScan(0)
	rt.AppendScan(1)
	rt.AppendScan(2)
	assert.Equal(t, 3, rt.NumRows())

	// remove the middle row; the last row (init=2) should swap into slot 1
	assert.NoError(t, rt.Remove(1))
	assert.Equal(t, 2, rt.NumRows())
	assert.Equal(t, -1, rt.PosOf(1))
	assert.Equal(t, 1, rt.PosOf(2))
	assert.Equal(t, 0, rt.PosOf(0))
}

func TestRemove_OutOfRange(t *testing.T) {
	rt := reltable.NewRelTable(0, 1, 4)
	assert.ErrorIs(t, rt.Remove(0), reltable.ErrNoSuchScan)
}
