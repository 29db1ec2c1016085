// Package provider defines the rule-provider contract and the built-in
// manufacturer rule tables.
//
// A RuleProvider contributes one manufacturer's identification rules: regex
// patterns registered into the shared pattern registry, literal-prefix
// shortcuts, extraction of package code / series / electrical attributes from
// the MPN, and an official-replacement predicate over documented
// cross-references.
//
// Build runs the explicit, ordered registration phase over a provider list and
// returns the frozen registry plus a report of per-rule registration failures.
// One bad pattern never aborts the build; it is recorded and skipped.
//
// # Self-Membership
//
// A provider's Matches implementation must consult only its own registered
// rules (Registry.MatchesOwner with its own ID) when deciding whether an MPN
// belongs to it. Using MatchesAny would let another provider's overlapping
// generic-type pattern override this provider's negative judgment.
package provider
