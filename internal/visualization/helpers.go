package visualization

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"

	"github.com/SakshiKapadnis-IU/h501-gutenberg/internal/dataprocessing"
	apperrors "github.com/SakshiKapadnis-IU/h501-gutenberg/internal/errors"
)

// requireColumns verifies that every named column is part of the schema.
func requireColumns(df dataframe.DataFrame, columns ...string) error {
	for _, column := range columns {
		if !dataprocessing.HasColumn(df, column) {
			return apperrors.ColumnNotFound(column)
		}
	}
	return nil
}

// numericValues returns the finite float values of a column, or an error if
// the column is missing or holds nothing plottable.
func numericValues(df dataframe.DataFrame, column string) ([]float64, error) {
	if err := requireColumns(df, column); err != nil {
		return nil, err
	}
	raw := df.Col(column).Float()
	vals := make([]float64, 0, len(raw))
	for _, v := range raw {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("column %q has no numeric values to plot", column), nil)
	}
	return vals, nil
}

// groupValues splits the finite values of valueCol by the categories of
// groupCol and returns the sorted category labels with their values.
func groupValues(df dataframe.DataFrame, groupCol, valueCol string) ([]string, map[string][]float64) {
	labels := df.Col(groupCol).Records()
	vals := df.Col(valueCol).Float()

	groups := make(map[string][]float64)
	for i, label := range labels {
		if i < len(vals) && !math.IsNaN(vals[i]) {
			groups[label] = append(groups[label], vals[i])
		}
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, groups
}
