// Package types provides shared type definitions for the PartMatch MCP server.
//
// This package defines the domain model used across all components of PartMatch:
// component types, attribute values, resolved parts, candidates, and similarity results.
//
// # Core Types
//
// ComponentType identifies a position in the component taxonomy. Types come in two
// flavors: generic roots such as "resistor", and manufacturer-specific variants such
// as "resistor.yageo-chip". The base type of a variant is derivable from its name:
//
//	t := types.ComponentType("mosfet.vishay-siliconix")
//	t.BaseType()   // "mosfet"
//	t.IsSpecific() // true
//
// ResolvedPart is the output of classification:
//
//	part := types.ResolvedPart{
//	    MPN:          "CRCW080510K0FKEA",
//	    Type:         types.TypeResistorVishayChip,
//	    Manufacturer: "vishay",
//	}
//
// SimilarityResult carries a bounded score plus the per-attribute breakdown used
// for explainability:
//
//	result.Score          // in [0, 1]
//	result.Acceptable     // true if Score clears the profile threshold
//	result.ShortCircuited // true if a critical attribute ended scoring early
//
// # Result Semantics
//
// An Unknown classification, an Unscored similarity, and a legitimately low nonzero
// score are three distinct outcomes and must never be conflated in a reporting
// surface. A score of exactly 0.0 means "known incompatible", not "no information";
// the Unscored flag means "no metadata was available to score with".
package types
