package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allemangd-uncc/hpc-toddcox/coset"
	"github.com/allemangd-uncc/hpc-toddcox/coxeter"
	"github.com/allemangd-uncc/hpc-toddcox/groups"
	"github.com/allemangd-uncc/hpc-toddcox/toddcox"
	"github.com/allemangd-uncc/hpc-toddcox/verify"
)

func TestAll_PassesOnClosedTable(t *testing.T) {
	spec, err := groups.H4()
	require.NoError(t, err)
	tbl, err := toddcox.Solve(spec, []int{0})
	require.NoError(t, err)

	assert.NoError(t, verify.All(tbl, spec, []int{0}))
}

func TestCheckInvolution_NotClosedOnOpenSlot(t *testing.T) {
	tbl := coset.NewTable(1)
	tbl.AppendRow() // T[0,0] left Undefined

	assert.ErrorIs(t, verify.CheckInvolution(tbl), verify.ErrNotClosed)
}

func TestCheckInvolution_DetectsBrokenInvolution(t *testing.T) {
	tbl := coset.NewTable(1)
	tbl.AppendRow()
	tbl.AppendRow()
	require.NoError(t, tbl.Set(0, 0, 1))
	// T[1,0] should be 0 for gen0 to be an involution; make it 1 instead.
	require.NoError(t, tbl.Set(1, 0, 1))

	assert.ErrorIs(t, verify.CheckInvolution(tbl), verify.ErrInvolutionBroken)
}

func TestCheckClosure_DetectsOpenRelator(t *testing.T) {
	spec, err := coxeter.NewSpec(2, nil) // default commuting pair: (0 1)^2, L=4
	require.NoError(t, err)

	tbl := coset.NewTable(2)
	tbl.AppendRow() // coset 0
	tbl.AppendRow() // coset 1
	tbl.AppendRow() // coset 2

	// gen0 is a genuine involution: 0<->1, 2 a fixed point.
	require.NoError(t, tbl.Set(0, 0, 1))
	require.NoError(t, tbl.Set(1, 0, 0))
	require.NoError(t, tbl.Set(2, 0, 2))
	// gen1 is a genuine involution: 0 a fixed point, 1<->2.
	require.NoError(t, tbl.Set(0, 1, 0))
	require.NoError(t, tbl.Set(1, 1, 2))
	require.NoError(t, tbl.Set(2, 1, 1))

	// Involution holds everywhere, but the word 0,1,0,1 from coset 0
	// walks 0 -> 1 -> 2 -> 2 -> 1, never returning to 0.
	require.NoError(t, verify.CheckInvolution(tbl))
	assert.ErrorIs(t, verify.CheckClosure(tbl, spec), verify.ErrRelatorOpen)
}

func TestCheckConnected_DetectsIsolatedCoset(t *testing.T) {
	tbl := coset.NewTable(1)
	tbl.AppendRow() // coset 0
	tbl.AppendRow() // coset 1, never linked to coset 0
	require.NoError(t, tbl.Set(0, 0, 0))
	require.NoError(t, tbl.Set(1, 0, 1))

	assert.ErrorIs(t, verify.CheckConnected(tbl), verify.ErrDisconnected)
}

func TestCheckFixedPoints_Fails(t *testing.T) {
	spec, err := groups.H4()
	require.NoError(t, err)
	tbl, err := toddcox.Solve(spec, nil) // trivial subgroup: no generator fixes coset 0
	require.NoError(t, err)

	assert.NoError(t, verify.CheckFixedPoints(tbl, nil))
	assert.ErrorIs(t, verify.CheckFixedPoints(tbl, []int{1}), verify.ErrFixedPointBroken)
}
