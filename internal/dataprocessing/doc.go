// Package dataprocessing provides the tabular data operations of the toolkit:
// loading delimited files into dataframes, cleaning, filtering, group-by
// aggregation, summary statistics, and synthetic sample-data generation.
//
// # Architecture
//
// The package is a thin convenience layer over gota dataframes:
//
// 1. Loader: reads CSV and Excel files into dataframe.DataFrame values
// 2. Cleaner: removes duplicate rows and rows with missing values
// 3. Transforms: equality filtering and single-column group-by aggregation
// 4. Summarizer: pandas-describe-style statistics computed with gonum/stat
//
// # Usage
//
// Basic loading example:
//
//	df, err := dataprocessing.LoadFile("data/input.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Cleaning and aggregating:
//
//	clean := dataprocessing.Clean(df)
//	agg, err := dataprocessing.Aggregate(clean, "category", "value", "mean")
//
// Generate a synthetic demo dataset:
//
//	sample := dataprocessing.SampleData(100, 42)
//
// # Data Flow
//
// The typical flow through this package:
//
//	File → Loader → DataFrame → Cleaner → DataFrame → Transforms/Summarizer → Results
//
// Every operation returns a new independent dataframe; nothing mutates its
// input.
//
// # Error Handling
//
// All functions return *errors.AppError values that name the offending
// column, file, or aggregate function. Failures inside gota surface through
// the DataFrame.Err field and are wrapped with context.
//
// # Testing
//
// The package includes table-driven tests for all operations.
// Use table-driven tests when adding new functionality.
package dataprocessing
