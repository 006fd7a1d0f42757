// Package classifier groups an article's tags into its main information
// (board, implementation, modality, models, datasets, tasks) and checks that
// the article can be turned into records.
package classifier

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/dtnitsch/fpga-survey-extractor/pkg/tag"
)

// Category names one list of MainInfo.
type Category string

const (
	Board          Category = "Board"
	Implementation Category = "Implementation"
	Modality       Category = "Modality"
	Models         Category = "Models"
	Datasets       Category = "Datasets"
	Tasks          Category = "Tasks"
)

// UnspecifiedModel is the placeholder annotators use for a model they could not identify.
const UnspecifiedModel = "???"

// MainInfo holds the main information of one article, in tag order.
type MainInfo struct {
	Boards          []string `yaml:"board"`
	Implementations []string `yaml:"implementation"`
	Modalities      []string `yaml:"modality"`
	Models          []string `yaml:"models"`
	Datasets        []string `yaml:"datasets"`
	Tasks           []string `yaml:"tasks"`
}

// Values returns the list stored under a category name.
func (m MainInfo) Values(c Category) []string {
	switch c {
	case Board:
		return m.Boards
	case Implementation:
		return m.Implementations
	case Modality:
		return m.Modalities
	case Models:
		return m.Models
	case Datasets:
		return m.Datasets
	case Tasks:
		return m.Tasks
	}
	return nil
}

// ReportsSeveralModels is true when metrics must be disambiguated per model.
func (m MainInfo) ReportsSeveralModels() bool {
	return len(m.Models) > 1
}

// Classify builds the MainInfo of an article. "Model: N/A" tags and tags of
// other kinds are ignored. Several boards, implementations or modalities are
// logged since they usually mean the article compares several setups.
func Classify(logger *slog.Logger, citationKey string, tags []tag.Tag) MainInfo {
	var info MainInfo

	for _, t := range tags {
		switch t.Kind {
		case tag.KindDataset:
			info.Datasets = append(info.Datasets, t.Value)
		case tag.KindModel:
			if t.Value == "N/A" {
				continue
			}
			info.Models = append(info.Models, t.Value)
		case tag.KindBoard:
			info.Boards = append(info.Boards, t.Value)
		case tag.KindTask:
			info.Tasks = append(info.Tasks, t.Value)
		case tag.KindImplementation:
			info.Implementations = append(info.Implementations, t.Value)
		case tag.KindModality:
			info.Modalities = append(info.Modalities, t.Value)
		}
	}

	for _, c := range []Category{Board, Implementation, Modality} {
		if values := info.Values(c); len(values) > 1 {
			logger.Debug("multiple values for single-valued category",
				"warning", "multiple_values",
				"citation_key", citationKey,
				"category", string(c),
				"values", values)
		}
	}

	return info
}

// ValidationError reports an article whose main information cannot be
// turned into records.
type ValidationError struct {
	CitationKey string
	Reason      string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.CitationKey, e.Reason)
}

// Validate checks the rules records depend on: exactly one board and one
// modality, at least one implementation, and no unspecified model.
func Validate(citationKey string, info MainInfo) error {
	switch {
	case len(info.Boards) > 1:
		return &ValidationError{CitationKey: citationKey, Reason: fmt.Sprintf("has multiple boards: %v", info.Boards)}
	case len(info.Modalities) > 1:
		return &ValidationError{CitationKey: citationKey, Reason: fmt.Sprintf("has multiple modalities: %v", info.Modalities)}
	case slices.Contains(info.Models, UnspecifiedModel):
		return &ValidationError{CitationKey: citationKey, Reason: "has unspecified models"}
	case len(info.Boards) == 0:
		return &ValidationError{CitationKey: citationKey, Reason: "has no board"}
	case len(info.Modalities) == 0:
		return &ValidationError{CitationKey: citationKey, Reason: "has no modality"}
	case len(info.Implementations) == 0:
		return &ValidationError{CitationKey: citationKey, Reason: "has no implementation"}
	}
	return nil
}
