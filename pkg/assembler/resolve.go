package assembler

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/dtnitsch/fpga-survey-extractor/pkg/classifier"
)

// MissingDataResourceError reports a field that cannot be resolved
// unambiguously for a model, such as its dataset when an article lists
// several datasets but not one per model.
type MissingDataResourceError struct {
	CitationKey string
	Model       string
	Resource    string // "dataset", "task/application", "application", "publication year"
}

func (e *MissingDataResourceError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("%s: missing %s", e.CitationKey, e.Resource)
	}
	return fmt.Sprintf("%s: missing %s for model %s", e.CitationKey, e.Resource, e.Model)
}

// Override pins the dataset, task and application of models in articles
// whose annotations cannot be paired positionally.
type Override struct {
	Keys          []string `yaml:"keys"`
	ModelContains string   `yaml:"model_contains,omitempty"` // empty matches any model
	Dataset       string   `yaml:"dataset"`
	Task          string   `yaml:"task"`
	Application   string   `yaml:"application"`
}

// irregularArticles test YOLO on DOTA, and VGG16 and ResNet-34 on NWPU-RESISC45.
var irregularArticles = []string{
	"yanAutomaticDeploymentConvolutional2022a",
	"niAlgorithmHardwareCoOptimization2023",
}

// DefaultOverrides is used when the configuration does not provide a table.
var DefaultOverrides = []Override{
	{
		Keys:          irregularArticles,
		ModelContains: "YOLO",
		Dataset:       "DOTAv1.0 {Object Detection}",
		Task:          "Object detection",
		Application:   "Diverse",
	},
	{
		Keys:        irregularArticles,
		Dataset:     "NWPU-RESISC45 {Classification}",
		Task:        "Classification",
		Application: "Landcover/Land use",
	},
}

// lookupOverride returns the first override matching the article and the
// name the article uses for the model.
func lookupOverride(overrides []Override, citationKey, modelName string) (Override, bool) {
	for _, o := range overrides {
		if !slices.Contains(o.Keys, citationKey) {
			continue
		}
		if o.ModelContains == "" || strings.Contains(modelName, o.ModelContains) {
			return o, true
		}
	}
	return Override{}, false
}

// pickForModel returns the value shared by every model when there is exactly
// one, or the value paired with model i when there is one per model.
func pickForModel(values []string, nbModels, i int) (string, bool) {
	switch {
	case len(values) == 1:
		return values[0], true
	case len(values) == nbModels && i < len(values):
		return values[i], true
	}
	return "", false
}

func resolveDataset(citationKey, modelName string, info classifier.MainInfo, i int) (string, error) {
	dataset, ok := pickForModel(info.Datasets, len(info.Models), i)
	if !ok {
		return "", &MissingDataResourceError{CitationKey: citationKey, Model: modelName, Resource: "dataset"}
	}
	return dataset, nil
}

func resolveTask(citationKey, modelName string, info classifier.MainInfo, i int) (task, application string, err error) {
	raw, ok := pickForModel(info.Tasks, len(info.Models), i)
	if !ok {
		return "", "", &MissingDataResourceError{CitationKey: citationKey, Model: modelName, Resource: "task/application"}
	}
	task, application, ok = splitTask(raw)
	if !ok {
		return "", "", &MissingDataResourceError{CitationKey: citationKey, Model: modelName, Resource: "application"}
	}
	return task, application, nil
}

// splitTask splits "Task (Application)" on the first parenthesis. It fails
// when the application part is absent or empty.
func splitTask(raw string) (task, application string, ok bool) {
	task, rest, found := strings.Cut(raw, "(")
	if !found {
		return "", "", false
	}
	application = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), ")"))
	if application == "" {
		return "", "", false
	}
	return strings.TrimSpace(task), application, true
}

var yearPattern = regexp.MustCompile(`\d{4}`)

// ExtractYear finds the publication year in a free-form date such as
// "2021-06", "2024 OCT 15" or "2022/08/01": the first 4-digit run.
func ExtractYear(citationKey, date string) (int, error) {
	match := yearPattern.FindString(date)
	if match == "" {
		return 0, &MissingDataResourceError{CitationKey: citationKey, Resource: "publication year"}
	}
	return strconv.Atoi(match)
}
