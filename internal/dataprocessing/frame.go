package dataprocessing

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// missing value markers recognized in string records, matching what gota's
// CSV reader maps to NaN.
var missingMarkers = map[string]struct{}{
	"":    {},
	"NA":  {},
	"NaN": {},
}

// HasColumn reports whether the dataframe schema contains the named column.
func HasColumn(df dataframe.DataFrame, column string) bool {
	for _, name := range df.Names() {
		if name == column {
			return true
		}
	}
	return false
}

// IsNumeric reports whether the named column holds int or float values.
// Returns false for columns that are not part of the schema.
func IsNumeric(df dataframe.DataFrame, column string) bool {
	names := df.Names()
	types := df.Types()
	for i, name := range names {
		if name == column {
			return types[i] == series.Int || types[i] == series.Float
		}
	}
	return false
}

// NumericColumns returns the names of all int and float columns in schema order.
func NumericColumns(df dataframe.DataFrame) []string {
	var cols []string
	names := df.Names()
	types := df.Types()
	for i, name := range names {
		if types[i] == series.Int || types[i] == series.Float {
			cols = append(cols, name)
		}
	}
	return cols
}

// colTypes captures the schema as a name-to-type map, used to rebuild
// dataframes from records without re-running type detection.
func colTypes(df dataframe.DataFrame) map[string]series.Type {
	names := df.Names()
	types := df.Types()
	m := make(map[string]series.Type, len(names))
	for i, name := range names {
		m[name] = types[i]
	}
	return m
}

// emptyLike builds a zero-row dataframe with the same schema as df.
func emptyLike(df dataframe.DataFrame) dataframe.DataFrame {
	names := df.Names()
	types := df.Types()
	ss := make([]series.Series, len(names))
	for i, name := range names {
		ss[i] = series.New([]string{}, types[i], name)
	}
	return dataframe.New(ss...)
}

// isMissing reports whether a raw record field is a missing-value marker.
func isMissing(field string) bool {
	_, ok := missingMarkers[field]
	return ok
}
