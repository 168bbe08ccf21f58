package dataprocessing

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	apperrors "github.com/SakshiKapadnis-IU/h501-gutenberg/internal/errors"
)

// aggregates maps the supported aggregate names to gota aggregation types.
var aggregates = map[string]dataframe.AggregationType{
	"mean":  dataframe.Aggregation_MEAN,
	"sum":   dataframe.Aggregation_SUM,
	"count": dataframe.Aggregation_COUNT,
	"min":   dataframe.Aggregation_MIN,
	"max":   dataframe.Aggregation_MAX,
}

// ValidAggregates returns the supported aggregate function names in a
// stable order.
func ValidAggregates() []string {
	return []string{"mean", "sum", "count", "min", "max"}
}

// Filter returns the rows whose value in the named column equals value.
// Every satisfying row of the input appears in the output and no other row
// does.
func Filter(df dataframe.DataFrame, column string, value interface{}) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return dataframe.DataFrame{}, apperrors.NewValidationError("filter input dataframe is invalid", df.Err)
	}
	if !HasColumn(df, column) {
		return dataframe.DataFrame{}, apperrors.ColumnNotFound(column)
	}

	out := df.Filter(dataframe.F{
		Colname:    column,
		Comparator: series.Eq,
		Comparando: value,
	})
	if out.Err != nil {
		return dataframe.DataFrame{}, apperrors.NewValidationError(
			fmt.Sprintf("failed to filter on column %q", column), out.Err)
	}
	return out, nil
}

// Aggregate groups the dataframe by groupCol and reduces aggCol with the
// named aggregate function (one of mean, sum, count, min, max). The result
// has exactly one row per distinct group value, sorted by group, with the
// aggregate in a column named like "value_MEAN".
func Aggregate(df dataframe.DataFrame, groupCol, aggCol, fn string) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return dataframe.DataFrame{}, apperrors.NewValidationError("aggregate input dataframe is invalid", df.Err)
	}
	if !HasColumn(df, groupCol) {
		return dataframe.DataFrame{}, apperrors.ColumnNotFound(groupCol)
	}
	if !HasColumn(df, aggCol) {
		return dataframe.DataFrame{}, apperrors.ColumnNotFound(aggCol)
	}

	typ, ok := aggregates[strings.ToLower(fn)]
	if !ok {
		return dataframe.DataFrame{}, apperrors.UnknownAggregate(fn, ValidAggregates())
	}

	groups := df.GroupBy(groupCol)
	if groups.Err != nil {
		return dataframe.DataFrame{}, apperrors.NewValidationError(
			fmt.Sprintf("failed to group by column %q", groupCol), groups.Err)
	}

	agg := groups.Aggregation([]dataframe.AggregationType{typ}, []string{aggCol})
	if agg.Err != nil {
		return dataframe.DataFrame{}, apperrors.NewValidationError(
			fmt.Sprintf("failed to aggregate column %q", aggCol), agg.Err)
	}

	// Group iteration order is map order; sort for deterministic output.
	sorted := agg.Arrange(dataframe.Sort(groupCol))
	if sorted.Err != nil {
		return dataframe.DataFrame{}, apperrors.NewValidationError(
			fmt.Sprintf("failed to sort aggregation by %q", groupCol), sorted.Err)
	}
	return sorted, nil
}

// AggregateColumn returns the name of the result column Aggregate produces
// for the given aggregated column and function.
func AggregateColumn(aggCol, fn string) string {
	typ, ok := aggregates[strings.ToLower(fn)]
	if !ok {
		return aggCol
	}
	return fmt.Sprintf("%s_%s", aggCol, typ.String())
}
