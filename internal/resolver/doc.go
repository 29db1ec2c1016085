// Package resolver classifies MPNs against the frozen pattern registry.
//
// Classification is a two-stage, fully deterministic algorithm:
//
//  1. Literal-prefix shortcuts. A small ordered list of high-confidence prefix
//     rules (a known family prefix implies a known manufacturer) is checked
//     before any pattern walk. Shortcut hits cannot be overridden by generic
//     pattern collisions.
//  2. Owner-ordered scan. Every rule owner is visited in sorted-owner order
//     and asked, through its own namespace only, whether it claims the MPN for
//     each of its registered types. Matches are scored by specificity: a
//     manufacturer-specific variant scores +150, a generic type -50. The
//     highest score wins; ties fall back to the deterministic owner order.
//
// Hash-map iteration order is never allowed to influence the outcome: sorted
// owner iteration is what makes Classify reproducible across processes and
// platforms.
//
// Classify returns an Unknown ResolvedPart when nothing matches; Unknown is a
// normal outcome the caller interprets, never an error.
package resolver
