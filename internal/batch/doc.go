// Package batch classifies whole bills of materials concurrently. Items are
// fanned out over a bounded worker pool and results come back in input order,
// with per-item failures captured in place rather than aborting the run.
package batch
