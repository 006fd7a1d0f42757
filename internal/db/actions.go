package db

import (
	"fmt"
	"os"
	"strings"

	"github.com/dtnitsch/fpga-survey-extractor/internal/common"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/storage"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func loadHistoryPath(c *cli.Context) (string, error) {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return "", err
	}
	return cfg.HistoryDBPath(), nil
}

// RunsAction lists past extraction runs
func RunsAction(c *cli.Context) error {
	database, err := openHistory(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-10s %-7s %-9s %-9s %-8s %-30s\n",
		"ID", "Created", "Status", "Policy", "Articles", "Records", "Skipped", "Input")
	fmt.Println(strings.Repeat("-", 110))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-10s %-7s %-9d %-9d %-8d %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Status,
			r.Policy,
			r.ArticleCount,
			r.RecordCount,
			r.SkippedCount,
			r.InputPath,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'fse run <id>' to see details\n")

	return nil
}

// RunAction shows details for a specific run
func RunAction(c *cli.Context) error {
	database, err := openHistory(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return err
	}
	skips, err := database.GetRunSkips(runID)
	if err != nil {
		return err
	}

	output := "(none)"
	if run.OutputPath.Valid {
		output = run.OutputPath.String
	}

	fmt.Printf("Run %d\n", run.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:     %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Status:      %s\n", run.Status)
	fmt.Printf("Input:       %s (sha256 %.12s)\n", run.InputPath, run.InputHash)
	fmt.Printf("Policy:      %s\n", run.Policy)
	fmt.Printf("Articles:    %d total (%d processed, %d skipped)\n",
		run.ArticleCount, run.ProcessedCount, run.SkippedCount)
	fmt.Printf("Records:     %d\n", run.RecordCount)
	fmt.Printf("Output:      %s\n", output)

	if len(skips) > 0 {
		fmt.Printf("\nSkipped (%d):\n", len(skips))
		fmt.Println(strings.Repeat("-", 60))
		for i, s := range skips {
			fmt.Printf("%2d. [%s] %s\n", i+1, s.Reason, s.CitationKey)
			fmt.Printf("    %s\n", s.Message)
		}
	}

	fmt.Printf("\nTip: Use 'fse records %d' to dump its records\n", runID)

	return nil
}

// RecordsAction writes the records of a run to --output, or to stdout as YAML
func RecordsAction(c *cli.Context) error {
	database, err := openHistory(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}
	records, err := database.GetRunRecords(runID)
	if err != nil {
		return err
	}

	if out := c.String("output"); out != "" {
		s := &storage.Storage{}
		if err := s.ExportRecords(out, records); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported %d records of run %d -> %s\n", len(records), runID, out)
		return nil
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	fmt.Printf("# Run: %d\n", runID)
	fmt.Print(string(data))
	return nil
}
