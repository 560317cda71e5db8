package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// History stores past tuning runs so knob evolutions stay comparable
// over time.
type History struct {
	conn *sql.DB
}

// RunRecord is one stored tuning run.
type RunRecord struct {
	ID         string
	CreatedAt  time.Time
	Seed       int64
	Iterations int
	Budgets    []float64
	Knobs      Knobs
	AvgFinalSP float64
	AvgEff     float64
	AvgVariety float64
	AvgBalance float64
}

// OpenHistory opens (or creates) the history database.
func OpenHistory(path string) (*History, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS tuner_runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		seed INTEGER NOT NULL,
		iterations INTEGER NOT NULL,
		budgets TEXT NOT NULL,
		knobs TEXT NOT NULL,
		avg_final_sp REAL NOT NULL,
		avg_efficiency REAL NOT NULL,
		avg_variety REAL NOT NULL,
		avg_balance REAL NOT NULL
	);`
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &History{conn: conn}, nil
}

// Close closes the underlying database.
func (h *History) Close() error {
	return h.conn.Close()
}

// RecordRun stores the recommended result of a search run and returns
// the new record id. The balanced pick wins; the top result stands in
// when the frontier is empty.
func (h *History) RecordRun(cfg SearchConfig, res SearchResults) (string, error) {
	if len(res.Results) == 0 {
		return "", fmt.Errorf("record run: no results")
	}
	idx := res.BalancedIdx
	if idx < 0 {
		idx = 0
	}
	best := res.Results[idx]

	knobsJSON, err := json.Marshal(best.Knobs)
	if err != nil {
		return "", fmt.Errorf("encode knobs: %w", err)
	}

	budgets := make([]string, len(cfg.Budgets))
	for i, b := range cfg.Budgets {
		budgets[i] = fmt.Sprintf("%g", b)
	}

	id := uuid.NewString()
	_, err = h.conn.Exec(`
		INSERT INTO tuner_runs
		(id, created_at, seed, iterations, budgets, knobs,
		 avg_final_sp, avg_efficiency, avg_variety, avg_balance)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339), cfg.Seed, cfg.Iterations,
		strings.Join(budgets, ","), string(knobsJSON),
		best.AvgFinalSP, best.AvgEfficiency, best.AvgVarietyCount, best.AvgBalanceRatio)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// RecentRuns returns up to limit runs, newest first.
func (h *History) RecentRuns(limit int) ([]RunRecord, error) {
	rows, err := h.conn.Query(`
		SELECT id, created_at, seed, iterations, budgets, knobs,
		       avg_final_sp, avg_efficiency, avg_variety, avg_balance
		FROM tuner_runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var createdAt, budgetsCSV, knobsJSON string
		if err := rows.Scan(&rec.ID, &createdAt, &rec.Seed, &rec.Iterations,
			&budgetsCSV, &knobsJSON,
			&rec.AvgFinalSP, &rec.AvgEff, &rec.AvgVariety, &rec.AvgBalance); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if err := json.Unmarshal([]byte(knobsJSON), &rec.Knobs); err != nil {
			return nil, fmt.Errorf("decode knobs for run %s: %w", rec.ID, err)
		}
		for _, b := range strings.Split(budgetsCSV, ",") {
			var v float64
			if _, err := fmt.Sscanf(b, "%g", &v); err == nil {
				rec.Budgets = append(rec.Budgets, v)
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
