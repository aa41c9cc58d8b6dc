// Package harness runs YAML-defined conformance scenarios against the
// analyzer's scans.
//
// A scenario fixes a prime bound and lists checks: expected gap-scan tallies
// (including the paper's concrete twin-prime counts), agreement between the
// gap-pair scanner and the independent mod-6 structural scan, pattern-total
// completeness, and rate bounds. Scenarios are data, not code, so the same
// files drive both `primepair verify` and the package tests.
//
// Check failures are reported as AssertionError values carrying the
// expected and actual outcomes; a scenario run never aborts on the first
// failure, so one run reports every divergence at once.
package harness
