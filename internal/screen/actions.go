package screen

import (
	"fmt"

	"github.com/dtnitsch/fpga-survey-extractor/internal/common"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/screening"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/storage"
	"github.com/urfave/cli/v2"
)

// ScreenAction prints the exclusion report of an articles file and, with
// --output, saves the articles kept for review.
func ScreenAction(c *cli.Context) error {
	settings, err := common.Setup(c)
	if err != nil {
		return err
	}
	logger := settings.Logger

	s := &storage.Storage{}
	articles, err := s.LoadArticles(c.String("input"))
	if err != nil {
		return err
	}

	kept, exclusions := screening.Screen(articles)
	if len(kept)+exclusions.Total() != len(articles) {
		return fmt.Errorf("screening lost articles: %d kept + %d excluded != %d", len(kept), exclusions.Total(), len(articles))
	}

	fmt.Println(Report(exclusions, len(kept), len(articles)))

	if out := c.String("output"); out != "" {
		if err := s.SaveArticles(out, kept); err != nil {
			return err
		}
		logger.Info("screened articles saved", "path", out, "count", len(kept))
	}
	return nil
}

// Report renders the exclusion counts per criterion and the totals line.
func Report(exclusions screening.Exclusions, kept, total int) string {
	rows := make([]common.Counted, 0, len(exclusions))
	for _, crit := range exclusions {
		rows = append(rows, common.Counted{Label: crit.Reason, Count: len(crit.Keys)})
	}

	title := fmt.Sprintf("Total number of items excluded: %d", exclusions.Total())
	totals := fmt.Sprintf("%d excluded items + %d selected for review = %d total items",
		exclusions.Total(), kept, total)
	return common.RenderCounts(title, rows) + "\n" + common.LabelStyle.Render(totals)
}
