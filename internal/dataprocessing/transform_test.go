package dataprocessing

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/SakshiKapadnis-IU/h501-gutenberg/internal/errors"
)

func transformFixture(t *testing.T) dataframe.DataFrame {
	t.Helper()
	df := dataframe.LoadRecords([][]string{
		{"category", "value", "count"},
		{"B", "30", "3"},
		{"A", "10", "1"},
		{"A", "20", "2"},
		{"C", "40", "4"},
		{"B", "50", "5"},
	})
	require.NoError(t, df.Err)
	return df
}

func TestFilter_ByStringValue(t *testing.T) {
	df := transformFixture(t)

	out, err := Filter(df, "category", "A")
	require.NoError(t, err)

	assert.Equal(t, 2, out.Nrow())
	for _, v := range out.Col("category").Records() {
		assert.Equal(t, "A", v)
	}
	assert.ElementsMatch(t, []float64{10, 20}, out.Col("value").Float())
}

func TestFilter_ByNumericValue(t *testing.T) {
	df := transformFixture(t)

	out, err := Filter(df, "count", 3)
	require.NoError(t, err)

	require.Equal(t, 1, out.Nrow())
	assert.Equal(t, []string{"B"}, out.Col("category").Records())
}

func TestFilter_NoMatches(t *testing.T) {
	df := transformFixture(t)

	out, err := Filter(df, "category", "Z")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Nrow())
}

func TestFilter_UnknownColumn(t *testing.T) {
	df := transformFixture(t)

	_, err := Filter(df, "region", "A")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
	assert.Contains(t, err.Error(), `"region"`)
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name       string
		fn         string
		wantColumn string
		wantValues []float64
	}{
		{
			name:       "mean",
			fn:         "mean",
			wantColumn: "value_MEAN",
			wantValues: []float64{15, 40, 40},
		},
		{
			name:       "sum",
			fn:         "sum",
			wantColumn: "value_SUM",
			wantValues: []float64{30, 80, 40},
		},
		{
			name:       "count",
			fn:         "count",
			wantColumn: "value_COUNT",
			wantValues: []float64{2, 2, 1},
		},
		{
			name:       "min",
			fn:         "min",
			wantColumn: "value_MIN",
			wantValues: []float64{10, 30, 40},
		},
		{
			name:       "max",
			fn:         "max",
			wantColumn: "value_MAX",
			wantValues: []float64{20, 50, 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			df := transformFixture(t)

			agg, err := Aggregate(df, "category", "value", tt.fn)
			require.NoError(t, err)

			// One row per distinct group, sorted by group value.
			require.Equal(t, 3, agg.Nrow())
			assert.Equal(t, []string{"A", "B", "C"}, agg.Col("category").Records())
			assert.Equal(t, tt.wantColumn, AggregateColumn("value", tt.fn))
			assert.Equal(t, tt.wantValues, agg.Col(tt.wantColumn).Float())
		})
	}
}

func TestAggregate_UnknownFunction(t *testing.T) {
	df := transformFixture(t)

	_, err := Aggregate(df, "category", "value", "stddev")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
	assert.Contains(t, err.Error(), `"stddev"`)
}

func TestAggregate_UnknownColumns(t *testing.T) {
	df := transformFixture(t)

	_, err := Aggregate(df, "region", "value", "mean")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"region"`)

	_, err = Aggregate(df, "category", "price", "mean")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"price"`)
}

func TestAggregate_MatchesManualRecomputation(t *testing.T) {
	df := transformFixture(t)

	agg, err := Aggregate(df, "category", "value", "mean")
	require.NoError(t, err)

	// Recompute the group means directly from the input.
	groups := map[string][]float64{}
	cats := df.Col("category").Records()
	vals := df.Col("value").Float()
	for i, c := range cats {
		groups[c] = append(groups[c], vals[i])
	}

	got := agg.Col("value_MEAN").Float()
	for i, c := range agg.Col("category").Records() {
		sum := 0.0
		for _, v := range groups[c] {
			sum += v
		}
		assert.InDelta(t, sum/float64(len(groups[c])), got[i], 1e-9)
	}
}

func TestValidAggregates(t *testing.T) {
	assert.Equal(t, []string{"mean", "sum", "count", "min", "max"}, ValidAggregates())
}
