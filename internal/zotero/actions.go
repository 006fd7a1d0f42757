package zotero

import (
	"fmt"
	"os"

	"github.com/dtnitsch/fpga-survey-extractor/internal/common"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/importer"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/storage"
	"github.com/urfave/cli/v2"
)

// ImportAction converts a Zotero HTML report into an articles file.
func ImportAction(c *cli.Context) error {
	settings, err := common.Setup(c)
	if err != nil {
		return err
	}
	logger := settings.Logger

	reportPath := c.String("report")
	f, err := os.Open(reportPath)
	if err != nil {
		return fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	im := &importer.Importer{ItemTypes: c.StringSlice("item-type")}
	articles, err := im.ParseReport(f)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", reportPath, err)
	}
	logger.Info("report parsed", "path", reportPath, "articles", len(articles))

	out := c.String("output")
	s := &storage.Storage{}
	if err := s.SaveArticles(out, articles); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Imported %d articles -> %s\n", len(articles), out)
	return nil
}
