// Package store provides SQLite-backed persistence for analysis runs.
//
// A run records the bound, modulus, and prime count, keyed by a UUIDv7 run
// ID, with the per-gap scan tallies, retained counterexamples, and mod-6
// structural statistics attached. The store exists for machine consumption
// of results (the text report is write-only); nothing in the core
// computation reads it back.
//
// Writers use ON CONFLICT DO NOTHING wherever a natural key exists, so
// re-exporting a run is idempotent. Readers return rows in deterministic
// order (gap ascending, counterexamples in scan order).
//
// Database configuration follows the usual single-writer SQLite setup:
// WAL mode, synchronous=NORMAL, busy_timeout=5000, foreign keys enforced,
// one connection.
package store
