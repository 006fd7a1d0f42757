// Package assembler turns annotated articles into model records: one record
// per model an article reports, combining its main information, performance
// metrics and accelerator design.
package assembler

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dtnitsch/fpga-survey-extractor/models"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/classifier"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/extractors"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/tag"
)

// ErrNoRecords is returned for a valid article that reports no model.
var ErrNoRecords = errors.New("article reports no model")

// Assembler builds model records from articles.
type Assembler struct {
	logger    *slog.Logger
	overrides []Override
}

// New creates an Assembler. A nil override table selects DefaultOverrides.
func New(logger *slog.Logger, overrides []Override) *Assembler {
	if overrides == nil {
		overrides = DefaultOverrides
	}
	return &Assembler{logger: logger, overrides: overrides}
}

// Assemble returns the records of one article, in the order its models are
// tagged. Any error means the article as a whole is unusable.
func (a *Assembler) Assemble(article models.Article) ([]models.ModelRecord, error) {
	key := article.CitationKey
	tags := tag.ParseAll(article.Tags)

	info := classifier.Classify(a.logger, key, tags)
	if err := classifier.Validate(key, info); err != nil {
		return nil, err
	}
	a.logger.Debug("main information", "citation_key", key, "info", info)

	nbModels := len(info.Models)
	a.logger.Info("processing article", "citation_key", key, "models", nbModels)
	if nbModels == 0 {
		return nil, nil
	}

	year, err := ExtractYear(key, article.Date)
	if err != nil {
		return nil, err
	}

	several := info.ReportsSeveralModels()
	records := make([]models.ModelRecord, 0, nbModels)

	for i, fullName := range info.Models {
		parts, err := tag.ParseStructure(fullName, false)
		if err != nil {
			return nil, fmt.Errorf("failed to parse model %q of %s: %w", fullName, key, err)
		}

		var dataset, task, application string
		if o, ok := lookupOverride(a.overrides, key, parts.Name); ok {
			dataset, task, application = o.Dataset, o.Task, o.Application
		} else {
			if dataset, err = resolveDataset(key, parts.Name, info, i); err != nil {
				return nil, err
			}
			if task, application, err = resolveTask(key, parts.Name, info, i); err != nil {
				return nil, err
			}
		}

		metrics, err := extractors.ExtractMetrics(a.logger, key, tags, several, fullName)
		if err != nil {
			return nil, err
		}
		design, err := extractors.ExtractDesign(a.logger, key, tags, several, fullName)
		if err != nil {
			return nil, err
		}

		records = append(records, models.ModelRecord{
			CitationKey:     key,
			Model:           parts.Name,
			EquivalentModel: parts.Equivalent,
			Backbone:        parts.Detail,
			Modality:        info.Modalities[0],
			Dataset:         dataset,
			Task:            task,
			Application:     application,
			Board:           info.Boards[0],
			Implementation:  info.Implementations[0],
			PublicationYear: year,

			Latency:          metrics.Latency,
			FPS:              metrics.FPS,
			TaskScore:        metrics.TaskScore,
			Footprint:        metrics.Footprint,
			Throughput:       metrics.Throughput,
			PowerConsumption: metrics.PowerConsumption,
			Frequency:        metrics.Frequency,
			Complexity:       metrics.Complexity,

			Design:           design.Design,
			Memory:           design.Memory,
			Precision:        design.Precision,
			Optimizations:    design.Optimizations,
			FPGAUtil:         design.FPGAUtil,
			DPUConfig:        design.DPUConfig,
			DPUCore:          design.DPUCore,
			DPUUtil:          design.DPUUtil,
			DPUOptimizations: design.DPUOptimizations,
		})

		a.logger.Info("model extracted",
			"citation_key", key,
			"model", parts.Name,
			"backbone", parts.Detail,
			"dataset", dataset,
			"latency", metrics.Latency,
			"task_score", metrics.TaskScore)
	}

	return records, nil
}
