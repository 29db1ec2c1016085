// Package classifier is the top-level facade over the classification and
// similarity subsystems. It owns the frozen pattern registry, the metadata
// registry, the resolver, and the scoring engine, and memoizes resolved parts
// behind an LRU cache so repeated lookups of the same MPN are free.
//
// A Classifier is immutable after construction and safe for concurrent use.
package classifier
