package summary

import (
	"cmp"
	"log/slog"
	"slices"
	"strconv"

	"github.com/dtnitsch/fpga-survey-extractor/internal/common"
	"github.com/dtnitsch/fpga-survey-extractor/models"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/catalog"
)

const unknown = "Unknown"

// Summary counts the records of a run along a few groupings.
type Summary struct {
	Records         int
	Articles        int
	ModelCores      []common.Counted
	FPGAFamilies    []common.Counted
	Implementations []common.Counted
	Years           []common.Counted
	Utilization     []UtilizationStat
}

// UtilizationStat aggregates the FPGA Util percentages reported for one
// resource.
type UtilizationStat struct {
	Resource string
	Records  int
	Mean     float64
	Max      float64
}

// MaxDSPBRAM takes the larger of the DSP and BRAM figures of a record.
const MaxDSPBRAM = "DSP/BRAM"

var utilResources = []string{"DSP", "BRAM", MaxDSPBRAM}

func utilizationOf(util, resource string) (float64, bool) {
	if resource != MaxDSPBRAM {
		return catalog.Utilization(util, resource)
	}
	dsp, dspOK := catalog.Utilization(util, "DSP")
	bram, bramOK := catalog.Utilization(util, "BRAM")
	switch {
	case dspOK && bramOK:
		return max(dsp, bram), true
	case dspOK:
		return dsp, true
	default:
		return bram, bramOK
	}
}

// summarizeUtilization skips resources no record reports.
func summarizeUtilization(records []models.ModelRecord) []UtilizationStat {
	var stats []UtilizationStat
	for _, res := range utilResources {
		st := UtilizationStat{Resource: res}
		var sum float64
		for _, r := range records {
			v, ok := utilizationOf(r.FPGAUtil, res)
			if !ok {
				continue
			}
			st.Records++
			sum += v
			st.Max = max(st.Max, v)
		}
		if st.Records == 0 {
			continue
		}
		st.Mean = sum / float64(st.Records)
		stats = append(stats, st)
	}
	return stats
}

// Summarize groups records by model core, FPGA family of the board part,
// implementation and publication year, and aggregates the DSP and BRAM
// utilization they report. FPGA families are counted once per distinct
// board of an article.
func Summarize(logger *slog.Logger, records []models.ModelRecord) Summary {
	cores := map[string]int{}
	families := map[string]int{}
	impls := map[string]int{}
	years := map[string]int{}
	articles := map[string]bool{}
	boards := map[string]bool{}

	for _, r := range records {
		articles[r.CitationKey] = true
		impls[r.Implementation]++
		years[strconv.Itoa(r.PublicationYear)]++

		core, err := catalog.ModelCore(r)
		if err != nil {
			logger.Debug("model core not found", "citation_key", r.CitationKey, "model", r.Model)
			core = unknown
		}
		cores[core]++

		boardKey := r.CitationKey + "\x00" + r.Board
		if boards[boardKey] {
			continue
		}
		boards[boardKey] = true
		family := unknown
		if part, err := catalog.BoardPart(r.Board); err == nil {
			family = part.Family
		} else {
			logger.Debug("FPGA part not found", "citation_key", r.CitationKey, "board", r.Board, "error", err)
		}
		families[family]++
	}

	return Summary{
		Records:         len(records),
		Articles:        len(articles),
		ModelCores:      byCount(cores),
		FPGAFamilies:    byCount(families),
		Implementations: byCount(impls),
		Years:           byLabel(years),
		Utilization:     summarizeUtilization(records),
	}
}

// byCount orders by decreasing count, then label.
func byCount(m map[string]int) []common.Counted {
	out := toCounted(m)
	slices.SortFunc(out, func(a, b common.Counted) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return out
}

func byLabel(m map[string]int) []common.Counted {
	out := toCounted(m)
	slices.SortFunc(out, func(a, b common.Counted) int {
		return cmp.Compare(a.Label, b.Label)
	})
	return out
}

func toCounted(m map[string]int) []common.Counted {
	out := make([]common.Counted, 0, len(m))
	for label, n := range m {
		out = append(out, common.Counted{Label: label, Count: n})
	}
	return out
}
