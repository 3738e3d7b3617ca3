// Package embed reconstructs phase-space trajectories from scalar series
// using time-delay (Takens) embedding.
//
//   - [Embed]: build m-dimensional delay vectors for explicit (m, tau)
//   - [Auto]: fill missing parameters from heuristics, then embed
//   - [Validate]: advisory feasibility check for (m, tau) against a series
//
// # Error model
//
// Non-positive dimension or delay is a caller contract violation and
// returns a typed error. A series too short for the requested geometry is
// not an error: Embed returns an empty vector set, since "no embeddable
// vectors exist" is a legitimate analytical outcome for short series.
// Validate exists for callers who want that case reported explicitly.
package embed
