// Package fractal estimates the correlation dimension of an embedded point
// cloud using the Grassberger-Procaccia method.
//
//   - [CorrelationSum]: fraction of point pairs closer than a radius
//   - [CorrelationCurve]: the (radius, fraction) table across a radius sweep
//   - [CorrelationDimension]: log-log slope of the curve, the estimate itself
//
// The pairwise count is quadratic in point count and runs once per radius,
// which makes it the dominant cost of the whole library. The outer point
// loop is parallelized; with large point sets callers should still expect
// this to be slow and may want to subsample points or radii first.
package fractal
