// Package series provides the scalar time-series value type and the
// autocorrelation primitive that parameter estimation builds on.
//
//   - [Series]: immutable-by-convention ordered sequence of samples
//   - [Autocorrelation]: normalized lag-k autocorrelation
//
// # Conventions
//
// All functions are pure: a Series passed in is never mutated, and every
// call is a function of its arguments alone. Degenerate inputs (constant
// series, lag beyond the data) produce defined zero results rather than
// errors, so callers can sweep lags without guarding each call.
package series
