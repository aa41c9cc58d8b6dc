package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/primepair/internal/analysis"
	"github.com/roach88/primepair/internal/report"
)

// Run is the persisted header of one analysis run.
type Run struct {
	ID         string
	MaxPrime   int64
	Modulus    int64
	PrimeCount int64
}

// NewRunID generates a time-ordered UUIDv7 run identifier, so runs sort
// chronologically by ID.
func NewRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// WriteRun inserts a run header. Duplicate IDs are silently ignored so
// re-exporting a run is idempotent.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, max_prime, modulus, prime_count)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, run.ID, run.MaxPrime, run.Modulus, run.PrimeCount)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

// WriteGapScan inserts one gap scan and its retained counterexamples in a
// single transaction. Writing the same (run, gap) twice is a no-op.
//
// The run referenced by runID must exist (foreign key constraint).
func (s *Store) WriteGapScan(ctx context.Context, runID string, scan analysis.GapScan) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write gap scan: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	result, err := tx.ExecContext(ctx, `
		INSERT INTO gap_scans (run_id, gap, total_pairs, successful_pairs)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(run_id, gap) DO NOTHING
	`, runID, scan.Gap, scan.TotalPairs, scan.SuccessfulPairs)
	if err != nil {
		return fmt.Errorf("write gap scan: insert: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("write gap scan: rows affected: %w", err)
	}
	if rows == 0 {
		// Scan already present; counterexamples were written with it.
		return tx.Commit()
	}

	scanID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("write gap scan: last insert id: %w", err)
	}

	for ord, pair := range scan.Counterexamples {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO counterexamples (scan_id, ord, p1, p2)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(scan_id, ord) DO NOTHING
		`, scanID, ord, pair.P1, pair.P2)
		if err != nil {
			return fmt.Errorf("write gap scan: counterexample %d: %w", ord, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write gap scan: commit: %w", err)
	}
	return nil
}

// WriteMod6Result persists the structural breakdown for one gap: residue
// tallies plus per-pattern tallies with their diagnostic examples.
func (s *Store) WriteMod6Result(ctx context.Context, runID string, res report.Mod6Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write mod6 result: begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, r := range res.Residues {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO residue_stats (run_id, gap, residue, total, success)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(run_id, gap, residue) DO NOTHING
		`, runID, res.Gap, r.Residue, r.Total, r.Success)
		if err != nil {
			return fmt.Errorf("write mod6 result: residue %d: %w", r.Residue, err)
		}
	}

	for _, p := range res.Patterns {
		var exP1, exP2 sql.NullInt64
		if p.Example != nil {
			exP1 = sql.NullInt64{Int64: p.Example.P1, Valid: true}
			exP2 = sql.NullInt64{Int64: p.Example.P2, Valid: true}
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO pattern_stats (run_id, gap, pattern, total, success, example_p1, example_p2)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(run_id, gap, pattern) DO NOTHING
		`, runID, res.Gap, p.Pattern, p.Total, p.Success, exP1, exP2)
		if err != nil {
			return fmt.Errorf("write mod6 result: pattern %s: %w", p.Pattern, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write mod6 result: commit: %w", err)
	}
	return nil
}
