package dataprocessing

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasColumn(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"A"}, series.String, "category"),
		series.New([]float64{1}, series.Float, "value"),
	)
	require.NoError(t, df.Err)

	assert.True(t, HasColumn(df, "category"))
	assert.True(t, HasColumn(df, "value"))
	assert.False(t, HasColumn(df, "Category"))
	assert.False(t, HasColumn(df, "missing"))
}

func TestIsNumeric(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"A"}, series.String, "category"),
		series.New([]float64{1}, series.Float, "value"),
		series.New([]int{1}, series.Int, "count"),
		series.New([]bool{true}, series.Bool, "flag"),
	)
	require.NoError(t, df.Err)

	assert.False(t, IsNumeric(df, "category"))
	assert.True(t, IsNumeric(df, "value"))
	assert.True(t, IsNumeric(df, "count"))
	assert.False(t, IsNumeric(df, "flag"))
	assert.False(t, IsNumeric(df, "missing"))
}

func TestNumericColumns(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"A"}, series.String, "category"),
		series.New([]float64{1}, series.Float, "value"),
		series.New([]int{1}, series.Int, "count"),
	)
	require.NoError(t, df.Err)

	assert.Equal(t, []string{"value", "count"}, NumericColumns(df))
}
