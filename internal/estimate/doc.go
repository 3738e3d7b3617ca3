// Package estimate selects default embedding parameters from a raw series.
//
//   - [Delay]: first local minimum of the autocorrelation function
//   - [Dimension]: length-based embedding dimension heuristic
//   - [ACF]: the (lag, value) autocorrelation table Delay scans
//
// Both estimators are declared heuristics. Delay takes the first
// autocorrelation minimum rather than the mutual-information minimum, and
// Dimension looks only at series length; neither substitutes for a rigorous
// estimator such as False Nearest Neighbors, they just give a usable
// starting point when the caller has none.
package estimate
