package summary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dtnitsch/fpga-survey-extractor/internal/common"
	dbcmd "github.com/dtnitsch/fpga-survey-extractor/internal/db"
	dbpkg "github.com/dtnitsch/fpga-survey-extractor/pkg/db"
	"github.com/urfave/cli/v2"
)

// SummaryAction prints grouped counts for a run (latest when no ID is given).
func SummaryAction(c *cli.Context) error {
	settings, err := common.Setup(c)
	if err != nil {
		return err
	}
	logger := settings.Logger

	database, err := dbpkg.Open(settings.Config.HistoryDBPath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := dbcmd.GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}
	records, err := database.GetRunRecords(runID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Printf("Run %d has no records\n", runID)
		return nil
	}

	fmt.Println(Render(runID, Summarize(logger, records)))
	return nil
}

// Render lays the summary sections out side by side.
func Render(runID int64, s Summary) string {
	header := common.TitleStyle.Render(fmt.Sprintf("Run %d", runID)) + "  " +
		common.LabelStyle.Render(fmt.Sprintf("%d records from %d articles", s.Records, s.Articles))

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		common.RenderCounts("Model core", s.ModelCores),
		common.RenderCounts("FPGA family", s.FPGAFamilies),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		common.RenderCounts("Implementation", s.Implementations),
		common.RenderCounts("Publication year", s.Years),
	)
	if len(s.Utilization) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, top, bottom)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, top, bottom, renderUtilization(s.Utilization))
}

func renderUtilization(stats []UtilizationStat) string {
	var b strings.Builder
	b.WriteString(common.TitleStyle.Render("FPGA utilization"))
	for _, st := range stats {
		b.WriteString("\n")
		b.WriteString(common.LabelStyle.Render(fmt.Sprintf("%-9s", st.Resource)))
		b.WriteString(common.CountStyle.Render(fmt.Sprintf("%d", st.Records)))
		b.WriteString(fmt.Sprintf(" records  mean %.1f%%  max %.1f%%", st.Mean, st.Max))
	}
	return common.SectionStyle.Render(b.String())
}
