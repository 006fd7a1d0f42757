package extract

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/dtnitsch/fpga-survey-extractor/internal/common"
	"github.com/dtnitsch/fpga-survey-extractor/models"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/assembler"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/db"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/screening"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/storage"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// dumpVerbosity prints the record table to stdout as YAML.
const dumpVerbosity = 3

func ExtractAction(c *cli.Context) error {
	settings, err := common.Setup(c)
	if err != nil {
		return err
	}
	cfg, logger := settings.Config, settings.Logger

	runCfg := &models.ExtractConfig{
		InputPath:  c.String("input"),
		OutputPath: c.String("output"),
		DBPath:     cfg.HistoryDBPath(),
		Verbosity:  settings.Verbosity,
		Policy:     settings.Policy,
		Screen:     cfg.Screen,
	}
	if runCfg.OutputPath == "" {
		runCfg.OutputPath = cfg.SnapshotPath(time.Now())
	}
	// An unusable output path must fail before any history is written.
	format, err := storage.FormatFor(runCfg.OutputPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	s := &storage.Storage{}
	stats, err := s.GetFileStats(runCfg.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read articles: %w", err)
	}
	raw, err := s.ReadFile(runCfg.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read articles: %w", err)
	}
	articles, err := s.LoadArticles(runCfg.InputPath)
	if err != nil {
		return err
	}
	logger.Info("articles loaded",
		"path", runCfg.InputPath,
		"count", len(articles),
		"size_bytes", stats.SizeBytes,
		"modified", stats.ModTime.Format(time.RFC3339))

	if runCfg.Screen {
		kept, exclusions := screening.Screen(articles)
		for _, crit := range exclusions {
			logger.Info("articles excluded", "criterion", crit.Reason, "count", len(crit.Keys))
		}
		logger.Info("screening done", "kept", len(kept), "excluded", exclusions.Total())
		articles = kept
	}

	history, err := db.Open(runCfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer history.Close()

	run := runMeta{
		inputPath: runCfg.InputPath,
		inputHash: common.ContentHash(raw),
		policy:    string(runCfg.Policy),
		articles:  len(articles),
	}
	runID, err := history.CreateRun(run.inputPath, run.inputHash, run.policy, run.articles)
	if err != nil {
		return err
	}
	logger.Info("run started", "run_id", runID, "policy", run.policy, "history", history.Path())

	a := assembler.New(logger, cfg.Overrides)
	batch, err := a.Run(ctx, articles, runCfg.Policy)
	if err == nil {
		err = writeOutput(s, logger, history, format, runCfg.OutputPath, run, batch)
	}
	if err != nil {
		if recErr := recordAbort(history, runID, batch, err); recErr != nil {
			return errors.Join(err, fmt.Errorf("failed to record aborted run %d: %w", runID, recErr))
		}
		return err
	}

	if err := saveBatch(history, runID, batch); err != nil {
		return err
	}
	if err := history.FinishRun(runID, db.RunCompleted, batch.Processed, len(batch.Skipped), len(batch.Records), runCfg.OutputPath); err != nil {
		return err
	}

	if runCfg.Verbosity >= dumpVerbosity {
		out, err := yaml.Marshal(batch.Records)
		if err != nil {
			return fmt.Errorf("failed to encode records: %w", err)
		}
		fmt.Print(string(out))
	}

	logger.Info("run completed",
		"run_id", runID,
		"records", len(batch.Records),
		"processed", batch.Processed,
		"skipped", len(batch.Skipped),
		"output", runCfg.OutputPath)
	fmt.Fprintf(os.Stderr, "Run %d: %d records from %d articles (%d skipped) -> %s\n",
		runID, len(batch.Records), batch.Processed, len(batch.Skipped), runCfg.OutputPath)
	return nil
}

type runMeta struct {
	inputPath string
	inputHash string
	policy    string
	articles  int
}

// writeOutput exports the records as a flat file, or as a standalone
// snapshot database when the output path is a SQLite file.
func writeOutput(s *storage.Storage, logger *slog.Logger, history *db.DB, format storage.Format, outputPath string, run runMeta, batch assembler.Batch) error {
	if format != storage.FormatSQLite {
		if err := s.ExportRecords(outputPath, batch.Records); err != nil {
			return err
		}
		logger.Info("records exported", "path", outputPath, "format", string(format))
		return nil
	}
	if filepath.Clean(outputPath) == filepath.Clean(history.Path()) {
		return nil
	}

	snapshot, err := db.Open(outputPath)
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer snapshot.Close()

	runID, err := snapshot.CreateRun(run.inputPath, run.inputHash, run.policy, run.articles)
	if err != nil {
		return err
	}
	if err := saveBatch(snapshot, runID, batch); err != nil {
		return err
	}
	if err := snapshot.FinishRun(runID, db.RunCompleted, batch.Processed, len(batch.Skipped), len(batch.Records), outputPath); err != nil {
		return err
	}
	logger.Info("snapshot written", "path", outputPath)
	return nil
}

func saveBatch(database *db.DB, runID int64, batch assembler.Batch) error {
	if err := database.InsertRecords(runID, batch.Records); err != nil {
		return err
	}
	for _, res := range batch.Skipped {
		if err := database.InsertSkip(runID, res.CitationKey, string(res.Skip.Kind), res.Skip.Err.Error()); err != nil {
			return err
		}
	}
	return nil
}

// recordAbort stores what an aborted run got through, plus the article
// that stopped it when the batch itself aborted.
func recordAbort(database *db.DB, runID int64, batch assembler.Batch, runErr error) error {
	if err := saveBatch(database, runID, batch); err != nil {
		return err
	}
	var abortErr *assembler.AbortError
	if errors.As(runErr, &abortErr) {
		reason := abortErr.Reason
		if err := database.InsertSkip(runID, abortErr.CitationKey, string(reason.Kind), reason.Err.Error()); err != nil {
			return err
		}
	}
	return database.FinishRun(runID, db.RunAborted, batch.Processed, len(batch.Skipped), len(batch.Records), "")
}
