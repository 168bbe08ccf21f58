package dataprocessing

import (
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/stat"
)

// ColumnStats holds describe-style statistics for one numeric column.
// Quantiles use the empirical definition over the non-missing values.
type ColumnStats struct {
	Count  int     `json:"count" csv:"Count"`
	Mean   float64 `json:"mean" csv:"Mean"`
	Std    float64 `json:"std" csv:"Std"`
	Min    float64 `json:"min" csv:"Min"`
	Q25    float64 `json:"q25" csv:"Q25"`
	Median float64 `json:"median" csv:"Median"`
	Q75    float64 `json:"q75" csv:"Q75"`
	Max    float64 `json:"max" csv:"Max"`
}

// Summary describes the shape and contents of a dataframe.
type Summary struct {
	Rows          int                    `json:"rows"`
	Columns       int                    `json:"columns"`
	MissingValues int                    `json:"missing_values"`
	Types         map[string]string      `json:"types"`
	NumericStats  map[string]ColumnStats `json:"numeric_stats"`
}

// Summarize computes row/column counts, the total number of missing values,
// per-column type names, and describe-style statistics for every numeric
// column. Missing values are excluded from the statistics.
func Summarize(df dataframe.DataFrame) Summary {
	summary := Summary{
		Rows:         df.Nrow(),
		Columns:      df.Ncol(),
		Types:        make(map[string]string, df.Ncol()),
		NumericStats: make(map[string]ColumnStats),
	}
	if df.Err != nil {
		return summary
	}

	names := df.Names()
	types := df.Types()
	for i, name := range names {
		summary.Types[name] = string(types[i])
	}

	if df.Nrow() > 0 {
		for _, row := range df.Records()[1:] {
			for _, field := range row {
				if isMissing(field) {
					summary.MissingValues++
				}
			}
		}
	}

	for _, name := range NumericColumns(df) {
		vals := finiteValues(df, name)
		if len(vals) == 0 {
			continue
		}
		summary.NumericStats[name] = describeColumn(vals)
	}

	return summary
}

// finiteValues extracts the non-NaN float values of a column.
func finiteValues(df dataframe.DataFrame, column string) []float64 {
	raw := df.Col(column).Float()
	vals := make([]float64, 0, len(raw))
	for _, v := range raw {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	return vals
}

// describeColumn computes the statistics for one column's values.
func describeColumn(vals []float64) ColumnStats {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	cs := ColumnStats{
		Count:  len(vals),
		Mean:   stat.Mean(vals, nil),
		Min:    sorted[0],
		Q25:    stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q75:    stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
	if len(vals) > 1 {
		cs.Std = stat.StdDev(vals, nil)
	}
	return cs
}
