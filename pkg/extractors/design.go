package extractors

import (
	"log/slog"
	"strings"

	"github.com/dtnitsch/fpga-survey-extractor/pkg/tag"
)

// Design holds the accelerator design details of one model. Vitis AI
// implementations report the DPU fields instead of the FPGA ones, Precision
// is shared by both.
type Design struct {
	Design           string   // "Library", "Various kernels", "Model Specific", ...
	Memory           string   // "On-chip", "Off-chip", ...
	Precision        string   // "Original", "Fixed (16)", "Mixed", ...
	Optimizations    []string // "Multiple PEs", "Advanced Dataflow", ...
	FPGAUtil         string   // "Low", "Average", "High"
	DPUConfig        string   // "B1024", "B4096", ...
	DPUCore          string
	DPUUtil          string
	DPUOptimizations []string
}

// ExtractDesign pulls the accelerator design details of one model out of an
// article's tags, with the same "(model) value" disambiguation as
// ExtractMetrics. Unmarked tags apply to every model. Scalar fields keep the
// last matching tag; list fields are comma-split and accumulated.
func ExtractDesign(logger *slog.Logger, citationKey string, tags []tag.Tag, severalModels bool, fullTagModelName string) (Design, error) {
	scope, err := newScope(citationKey, severalModels, fullTagModelName)
	if err != nil {
		return Design{}, err
	}

	d := Design{
		Optimizations:    []string{},
		DPUOptimizations: []string{},
	}

	for _, t := range tags {
		value := t.Value
		if scope != nil {
			if model, scopedValue, ok := t.Scoped(); ok {
				if !scope.matches(model) {
					continue
				}
				value = scopedValue
			}
		}

		switch t.Kind {
		case tag.KindDesign:
			d.Design = value
		case tag.KindMemory:
			d.Memory = value
		case tag.KindPrecision:
			d.Precision = value
		case tag.KindOptimizations:
			d.Optimizations = append(d.Optimizations, splitList(value)...)
		case tag.KindFPGAUtil:
			d.FPGAUtil = value
		case tag.KindDPUConfig:
			d.DPUConfig = value
		case tag.KindDPUCore:
			d.DPUCore = value
		case tag.KindDPUUtil:
			d.DPUUtil = value
		case tag.KindDPUOptimizations:
			d.DPUOptimizations = append(d.DPUOptimizations, splitList(value)...)
		default:
			continue
		}

		logger.Debug("accelerator detail", "citation_key", citationKey, "model", scope.identifier(), "tag", t.Kind.String(), "value", value)
	}

	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
