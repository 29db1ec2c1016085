// Package metadata defines how component attributes are compared.
//
// A TypeMetadata bundles, per component type, the ordered set of AttributeSpecs
// the similarity engine scores: each spec names an attribute, assigns it an
// importance level, and picks a ToleranceRule from a fixed vocabulary
// (ExactMatch, PercentageTolerance, MinimumRequired, MaximumAllowed,
// RangeOverlap).
//
// The Registry maps component types to their metadata with base-type fallback:
// a lookup for "resistor.yageo-chip" falls back one level at a time until a
// registered type or the root is reached. Registration happens once at startup;
// the registry is read-only thereafter.
//
// SimilarityProfile carries the per-importance weighting multipliers and the
// acceptance threshold for one substitution scenario. The five canonical
// profiles are strictly ordered by MinimumScore, from DesignPhase (strictest)
// down to EmergencySourcing.
package metadata
