package dataset

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Group is the set of rows sharing one value of the grouping column.
type Group struct {
	// Key is the shared value of the grouping column.
	Key float64

	rows  []int
	table *Table
}

// Count returns the number of rows in the group.
func (g Group) Count() int {
	return len(g.rows)
}

// Values returns the group's values of the column at the given position.
func (g Group) Values(columnIndex int) ([]float64, error) {
	column, err := g.table.ColumnAt(columnIndex)
	if err != nil {
		return nil, err
	}

	values := make([]float64, len(g.rows))
	for i, row := range g.rows {
		values[i] = column[row]
	}

	return values, nil
}

// MeanStd returns the group's mean and sample standard deviation of the
// column at the given position. Single-row groups report a NaN standard
// deviation.
func (g Group) MeanStd(columnIndex int) (mean, std float64, err error) {
	values, err := g.Values(columnIndex)
	if err != nil {
		return 0, 0, err
	}

	return stat.Mean(values, nil), stat.StdDev(values, nil), nil
}

// GroupBy partitions the table's rows by the values of the column at the
// given position. Groups are ordered by ascending key.
//
// Returns errs.ErrColumnOutOfRange for positions outside the table.
func (t *Table) GroupBy(columnIndex int) ([]Group, error) {
	keyColumn, err := t.ColumnAt(columnIndex)
	if err != nil {
		return nil, err
	}

	rowsByKey := make(map[float64][]int)
	keys := make([]float64, 0)
	for row, key := range keyColumn {
		if _, seen := rowsByKey[key]; !seen {
			keys = append(keys, key)
		}
		rowsByKey[key] = append(rowsByKey[key], row)
	}
	slices.Sort(keys)

	groups := make([]Group, len(keys))
	for i, key := range keys {
		groups[i] = Group{Key: key, rows: rowsByKey[key], table: t}
	}

	return groups, nil
}
