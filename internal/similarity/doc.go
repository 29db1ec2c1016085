// Package similarity scores how substitutable two classified parts are.
//
// The engine compares two ResolvedParts attribute-by-attribute under a
// SimilarityProfile, using the TypeMetadata registered for the parts' type
// (with base-type fallback). Scoring is weighted and short-circuiting:
//
//   - Different base types are never similar: hard score 0, no weighting.
//   - A critical attribute that mismatches beyond its tolerance ends scoring
//     immediately at the low-similarity floor. Critical mismatches are
//     categorical (N-channel vs P-channel), not gradual.
//   - Missing data on a critical attribute is "cannot determine": a
//     conservative low score, never a silent success.
//   - Remaining attributes present on both sides accumulate
//     rawScore * baseWeight(importance) * profile.Multiplier(importance),
//     normalized by the maximum possible weight.
//   - Documented equivalent-part groups earn a small bounded bonus, capped at
//     1.0 and never applied over a short-circuit.
//
// Directional tolerance rules (MinimumRequired, MaximumAllowed) are evaluated
// in both directions and the worse direction is kept, so Compare(a, b) always
// equals Compare(b, a).
//
// A result of exactly 0.0 with Unscored false means "known incompatible" and
// is always returned verbatim; "no metadata" is reported through the Unscored
// flag, never through a placeholder nonzero score.
package similarity
