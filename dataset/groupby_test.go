package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelly-tou/scum-code/errs"
)

func TestGroupBy(t *testing.T) {
	// Rows arrive interleaved and with unsorted keys
	table := &Table{
		Columns: []string{"distance", "rssi"},
		data: [][]float64{
			{2, 1, 2, 1, 5},
			{-60, -50, -64, -52, -80},
		},
	}

	groups, err := table.GroupBy(0)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	// Groups are ordered by ascending key
	assert.Equal(t, 1.0, groups[0].Key)
	assert.Equal(t, 2.0, groups[1].Key)
	assert.Equal(t, 5.0, groups[2].Key)

	assert.Equal(t, 2, groups[0].Count())
	assert.Equal(t, 2, groups[1].Count())
	assert.Equal(t, 1, groups[2].Count())

	values, err := groups[0].Values(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{-50, -52}, values)
}

func TestGroupMeanStd(t *testing.T) {
	table := &Table{
		Columns: []string{"distance", "rssi"},
		data: [][]float64{
			{1, 1, 2},
			{-50, -52, -60},
		},
	}

	groups, err := table.GroupBy(0)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	mean, std, err := groups[0].MeanStd(1)
	require.NoError(t, err)
	assert.InDelta(t, -51.0, mean, 1e-12)
	assert.InDelta(t, math.Sqrt2, std, 1e-12)

	// Single-row groups have a NaN sample standard deviation
	mean, std, err = groups[1].MeanStd(1)
	require.NoError(t, err)
	assert.Equal(t, -60.0, mean)
	assert.True(t, math.IsNaN(std))
}

func TestGroupByErrors(t *testing.T) {
	table := testTable()

	_, err := table.GroupBy(5)
	require.ErrorIs(t, err, errs.ErrColumnOutOfRange)

	groups, err := table.GroupBy(0)
	require.NoError(t, err)

	_, _, err = groups[0].MeanStd(9)
	require.ErrorIs(t, err, errs.ErrColumnOutOfRange)
}
