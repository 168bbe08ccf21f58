// Package visualization provides statistical chart constructors over
// gonum/plot: histograms with kernel density overlays, scatter plots with
// optional category coloring, box plots, correlation heat maps, and
// categorical count plots.
//
// All constructors take a gota dataframe and column names, validate the
// columns against the schema, and return an in-memory *plot.Plot. Saving a
// chart to disk is the caller's concern; see Save.
//
// A package-level Theme controls canvas size, background, and grid styling
// for every chart, mirroring a global plotting style. The default is a
// dark-grid look on a 12x6 inch canvas.
package visualization
