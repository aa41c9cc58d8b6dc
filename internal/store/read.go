package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/primepair/internal/analysis"
)

// ReadRun fetches a run header by ID.
// Returns sql.ErrNoRows wrapped if the run does not exist.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	var run Run
	err := s.db.QueryRowContext(ctx, `
		SELECT id, max_prime, modulus, prime_count
		FROM runs WHERE id = ?
	`, id).Scan(&run.ID, &run.MaxPrime, &run.Modulus, &run.PrimeCount)
	if err != nil {
		return Run{}, fmt.Errorf("read run %s: %w", id, err)
	}
	return run, nil
}

// ReadRuns lists all run headers, oldest first. UUIDv7 IDs sort
// chronologically, so ordering by ID is ordering by creation time.
func (s *Store) ReadRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, max_prime, modulus, prime_count
		FROM runs ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("read runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.MaxPrime, &run.Modulus, &run.PrimeCount); err != nil {
			return nil, fmt.Errorf("read runs: scan: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read runs: %w", err)
	}
	return runs, nil
}

// ReadGapScans returns a run's gap scans, gap ascending, each with its
// retained counterexamples in original encounter order.
func (s *Store) ReadGapScans(ctx context.Context, runID string) ([]analysis.GapScan, error) {
	run, err := s.ReadRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, gap, total_pairs, successful_pairs
		FROM gap_scans WHERE run_id = ?
		ORDER BY gap ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("read gap scans: %w", err)
	}
	defer rows.Close()

	type scanRow struct {
		id   int64
		scan analysis.GapScan
	}
	var scanRows []scanRow
	for rows.Next() {
		var r scanRow
		if err := rows.Scan(&r.id, &r.scan.Gap, &r.scan.TotalPairs, &r.scan.SuccessfulPairs); err != nil {
			return nil, fmt.Errorf("read gap scans: scan: %w", err)
		}
		r.scan.Modulus = run.Modulus
		scanRows = append(scanRows, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read gap scans: %w", err)
	}

	scans := make([]analysis.GapScan, 0, len(scanRows))
	for _, r := range scanRows {
		pairs, err := s.readCounterexamples(ctx, r.id)
		if err != nil {
			return nil, err
		}
		r.scan.Counterexamples = pairs
		scans = append(scans, r.scan)
	}
	return scans, nil
}

func (s *Store) readCounterexamples(ctx context.Context, scanID int64) ([]analysis.Pair, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p1, p2 FROM counterexamples
		WHERE scan_id = ? ORDER BY ord ASC
	`, scanID)
	if err != nil {
		return nil, fmt.Errorf("read counterexamples: %w", err)
	}
	defer rows.Close()

	var pairs []analysis.Pair
	for rows.Next() {
		var p analysis.Pair
		if err := rows.Scan(&p.P1, &p.P2); err != nil {
			return nil, fmt.Errorf("read counterexamples: scan: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read counterexamples: %w", err)
	}
	return pairs, nil
}

// ReadResidueStats returns a run's residue tallies for one gap, residue
// ascending. Missing rows simply yield an empty slice.
func (s *Store) ReadResidueStats(ctx context.Context, runID string, gap int64) (map[int64]analysis.GroupStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT residue, total, success FROM residue_stats
		WHERE run_id = ? AND gap = ?
		ORDER BY residue ASC
	`, runID, gap)
	if err != nil {
		return nil, fmt.Errorf("read residue stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int64]analysis.GroupStat)
	for rows.Next() {
		var residue int64
		var stat analysis.GroupStat
		if err := rows.Scan(&residue, &stat.Total, &stat.Success); err != nil {
			return nil, fmt.Errorf("read residue stats: scan: %w", err)
		}
		stats[residue] = stat
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read residue stats: %w", err)
	}
	return stats, nil
}

// ReadPatternStats returns a run's pattern tallies for one gap in
// lexicographic pattern order, with diagnostic examples where present.
func (s *Store) ReadPatternStats(ctx context.Context, runID string, gap int64) (analysis.PatternStats, error) {
	ps := analysis.PatternStats{
		Stats:           make(map[string]analysis.GroupStat),
		FailingExamples: make(map[string]analysis.PairRecord),
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT pattern, total, success, example_p1, example_p2
		FROM pattern_stats
		WHERE run_id = ? AND gap = ?
		ORDER BY pattern ASC
	`, runID, gap)
	if err != nil {
		return ps, fmt.Errorf("read pattern stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pattern string
		var stat analysis.GroupStat
		var exP1, exP2 sql.NullInt64
		if err := rows.Scan(&pattern, &stat.Total, &stat.Success, &exP1, &exP2); err != nil {
			return ps, fmt.Errorf("read pattern stats: scan: %w", err)
		}
		ps.Stats[pattern] = stat
		if exP1.Valid && exP2.Valid {
			ps.FailingExamples[pattern] = analysis.PairRecord{
				P1: exP1.Int64, P2: exP2.Int64,
				Y1: exP1.Int64 % 10, Y2: exP2.Int64 % 10,
				X1Mod3: (exP1.Int64 / 10) % 3, X2Mod3: (exP2.Int64 / 10) % 3,
			}
		}
	}
	if err := rows.Err(); err != nil {
		return ps, fmt.Errorf("read pattern stats: %w", err)
	}
	return ps, nil
}
