package dataprocessing

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSampleSeed is the seed used by the demo pipeline so runs are
// reproducible.
const DefaultSampleSeed uint64 = 42

// sampleCategories are the category labels of the synthetic dataset.
var sampleCategories = []string{"A", "B", "C"}

// SampleData generates a synthetic dataset with n rows and three columns:
// "category" drawn uniformly from {A, B, C}, "value" drawn from a normal
// distribution with mean 100 and standard deviation 15, and "count" drawn
// uniformly from the integers 1 through 99. The same seed always produces
// the same dataframe.
func SampleData(n int, seed uint64) dataframe.DataFrame {
	if n < 0 {
		n = 0
	}

	src := rand.NewSource(seed)
	rng := rand.New(src)
	normal := distuv.Normal{Mu: 100, Sigma: 15, Src: src}

	categories := make([]string, n)
	values := make([]float64, n)
	counts := make([]int, n)
	for i := 0; i < n; i++ {
		categories[i] = sampleCategories[rng.Intn(len(sampleCategories))]
		values[i] = normal.Rand()
		counts[i] = 1 + rng.Intn(99)
	}

	return dataframe.New(
		series.New(categories, series.String, "category"),
		series.New(values, series.Float, "value"),
		series.New(counts, series.Int, "count"),
	)
}
