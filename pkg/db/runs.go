package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/fpga-survey-extractor/models"
)

// Run statuses
const (
	RunRunning   = "running"
	RunCompleted = "completed"
	RunAborted   = "aborted"
)

// Run represents one extraction run
type Run struct {
	RunID          int64
	CreatedAt      time.Time
	InputPath      string
	InputHash      string
	Policy         string
	ArticleCount   int
	ProcessedCount int
	SkippedCount   int
	RecordCount    int
	Status         string
	OutputPath     sql.NullString
}

// Skip is an article a run could not turn into records
type Skip struct {
	CitationKey string
	Reason      string
	Message     string
}

// CreateRun records the start of a run and returns its ID.
func (db *DB) CreateRun(inputPath, inputHash, policy string, articleCount int) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (input_path, input_hash, policy, article_count)
		VALUES (?, ?, ?, ?)
	`, inputPath, inputHash, policy, articleCount)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// InsertRecords stores a run's records in one transaction, keeping their order.
func (db *DB) InsertRecords(runID int64, records []models.ModelRecord) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after commit

	stmt, err := tx.Prepare(`
		INSERT INTO records (
			run_id, position, citation_key, model, equivalent_model, backbone, modality,
			dataset, task, application, board, implementation, publication_year,
			latency, fps, task_score, footprint, throughput, power_consumption, frequency, complexity,
			design, memory, precision, optimizations, fpga_util, dpu_config, dpu_core, dpu_util, dpu_optimizations
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare record insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		opts, err := encodeList(r.Optimizations)
		if err != nil {
			return err
		}
		dpuOpts, err := encodeList(r.DPUOptimizations)
		if err != nil {
			return err
		}

		_, err = stmt.Exec(
			runID, i, r.CitationKey, r.Model, r.EquivalentModel, r.Backbone, r.Modality,
			r.Dataset, r.Task, r.Application, r.Board, r.Implementation, r.PublicationYear,
			r.Latency, r.FPS, r.TaskScore, r.Footprint, r.Throughput, r.PowerConsumption, r.Frequency, r.Complexity,
			r.Design, r.Memory, r.Precision, opts, r.FPGAUtil, r.DPUConfig, r.DPUCore, r.DPUUtil, dpuOpts,
		)
		if err != nil {
			return fmt.Errorf("failed to insert record %d (%s/%s): %w", i, r.CitationKey, r.Model, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit records: %w", err)
	}
	return nil
}

// InsertSkip records an article the run could not turn into records.
func (db *DB) InsertSkip(runID int64, citationKey, reason, message string) error {
	_, err := db.Exec(`
		INSERT INTO skips (run_id, citation_key, reason, message)
		VALUES (?, ?, ?, ?)
	`, runID, citationKey, reason, message)
	if err != nil {
		return fmt.Errorf("failed to insert skip: %w", err)
	}
	return nil
}

// FinishRun stores the final counts and status of a run.
func (db *DB) FinishRun(runID int64, status string, processed, skipped, records int, outputPath string) error {
	_, err := db.Exec(`
		UPDATE runs
		SET status = ?, processed_count = ?, skipped_count = ?, record_count = ?, output_path = ?
		WHERE run_id = ?
	`, status, processed, skipped, records, NewNullString(outputPath), runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

const runColumns = `run_id, created_at, input_path, input_hash, policy, article_count,
	processed_count, skipped_count, record_count, status, output_path`

func scanRun(scanner interface{ Scan(dest ...any) error }) (Run, error) {
	var r Run
	err := scanner.Scan(&r.RunID, &r.CreatedAt, &r.InputPath, &r.InputHash, &r.Policy, &r.ArticleCount,
		&r.ProcessedCount, &r.SkippedCount, &r.RecordCount, &r.Status, &r.OutputPath)
	return r, err
}

// GetRunByID retrieves a run by its ID
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	run, err := scanRun(db.QueryRow("SELECT "+runColumns+" FROM runs WHERE run_id = ?", runID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// GetLatestRunID returns the most recent run ID.
func (db *DB) GetLatestRunID() (int64, error) {
	var runID int64
	err := db.QueryRow("SELECT run_id FROM runs ORDER BY run_id DESC LIMIT 1").Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("no runs found")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest run: %w", err)
	}
	return runID, nil
}

// ListRuns retrieves runs ordered by most recent first
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := "SELECT " + runColumns + " FROM runs ORDER BY run_id DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRunRecords retrieves a run's records in extraction order.
func (db *DB) GetRunRecords(runID int64) ([]models.ModelRecord, error) {
	rows, err := db.Query(`
		SELECT citation_key, model, equivalent_model, backbone, modality,
		       dataset, task, application, board, implementation, publication_year,
		       latency, fps, task_score, footprint, throughput, power_consumption, frequency, complexity,
		       design, memory, precision, optimizations, fpga_util, dpu_config, dpu_core, dpu_util, dpu_optimizations
		FROM records
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run records: %w", err)
	}
	defer rows.Close()

	var records []models.ModelRecord
	for rows.Next() {
		var r models.ModelRecord
		var opts, dpuOpts string
		if err := rows.Scan(
			&r.CitationKey, &r.Model, &r.EquivalentModel, &r.Backbone, &r.Modality,
			&r.Dataset, &r.Task, &r.Application, &r.Board, &r.Implementation, &r.PublicationYear,
			&r.Latency, &r.FPS, &r.TaskScore, &r.Footprint, &r.Throughput, &r.PowerConsumption, &r.Frequency, &r.Complexity,
			&r.Design, &r.Memory, &r.Precision, &opts, &r.FPGAUtil, &r.DPUConfig, &r.DPUCore, &r.DPUUtil, &dpuOpts,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		if r.Optimizations, err = decodeList(opts); err != nil {
			return nil, err
		}
		if r.DPUOptimizations, err = decodeList(dpuOpts); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetRunSkips retrieves the articles a run skipped.
func (db *DB) GetRunSkips(runID int64) ([]Skip, error) {
	rows, err := db.Query(`
		SELECT citation_key, reason, message
		FROM skips
		WHERE run_id = ?
		ORDER BY skip_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run skips: %w", err)
	}
	defer rows.Close()

	var skips []Skip
	for rows.Next() {
		var s Skip
		if err := rows.Scan(&s.CitationKey, &s.Reason, &s.Message); err != nil {
			return nil, fmt.Errorf("failed to scan skip: %w", err)
		}
		skips = append(skips, s)
	}
	return skips, rows.Err()
}

// NewNullString converts an empty string to NULL
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode list: %w", err)
	}
	return string(data), nil
}

func decodeList(s string) ([]string, error) {
	items := []string{}
	if s == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, fmt.Errorf("failed to decode list %q: %w", s, err)
	}
	return items, nil
}
