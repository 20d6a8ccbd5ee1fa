package coset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allemangd-uncc/hpc-toddcox/coset"
)

func TestTable_AppendAndGetSet(t *testing.T) {
	tbl := coset.NewTable(3)
	assert.Equal(t, 0, tbl.Size())

	c0 := tbl.AppendRow()
	assert.Equal(t, 0, c0)
	assert.Equal(t, 1, tbl.Size())
	assert.Equal(t, coset.Undefined, tbl.Get(0, 0))

	c1 := tbl.AppendRow()
	assert.Equal(t, 1, c1)

	assert.NoError(t, tbl.Set(0, 1, 1))
	assert.Equal(t, 1, tbl.Get(0, 1))

	// rewriting the same value is fine (benign duplicate deduction)
	assert.NoError(t, tbl.Set(0, 1, 1))

	// overwriting with a different value is a coincidence
	err := tbl.Set(0, 1, 0)
	assert.ErrorIs(t, err, coset.ErrCoincidence)
}

func TestTable_OutOfRange(t *testing.T) {
	tbl := coset.NewTable(2)
	tbl.AppendRow()

	assert.Equal(t, coset.Undefined, tbl.Get(5, 0))
	assert.Equal(t, coset.Undefined, tbl.Get(0, 5))
	assert.ErrorIs(t, tbl.Set(5, 0, 0), coset.ErrIndexOutOfRange)
}

func TestTable_Row(t *testing.T) {
	tbl := coset.NewTable(2)
	tbl.AppendRow()
	assert.NoError(t, tbl.Set(0, 0, 0))
	assert.Equal(t, []int{0, coset.Undefined}, tbl.Row(0))
	assert.Nil(t, tbl.Row(9))
}
