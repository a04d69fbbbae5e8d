// Package formatter renders the result of a matcher run.
//
// This package is organized into:
// - report.go: presentation model built from matcher.Result
// - diff.go: line-oriented text diff with per-stop tables (go-pretty)
// - json.go: the same report as JSON, written next to the other outputs
//
// Stop tables show stop codes position by position; "-" marks a missing
// stop and "*" a position where the two sides disagree.
package formatter
