// Package extractors pulls per-model performance metrics and accelerator
// design details out of classified article tags.
package extractors

import (
	"fmt"

	"github.com/dtnitsch/fpga-survey-extractor/pkg/tag"
)

// InputError reports an extraction that cannot run with the arguments given,
// such as a multi-model article without the model to extract for.
type InputError struct {
	CitationKey string
	Message     string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.CitationKey, e.Message)
}

// modelScope restricts extraction to one model of a multi-model article.
// Tags addressed to a model start with "(<name>)" or "(<backbone>)".
type modelScope struct {
	name     string
	backbone string
}

// newScope returns nil for single-model articles, which need no disambiguation.
func newScope(citationKey string, severalModels bool, fullTagModelName string) (*modelScope, error) {
	if !severalModels {
		return nil, nil
	}
	if fullTagModelName == "" {
		return nil, &InputError{
			CitationKey: citationKey,
			Message:     "the full model tag is required when an article reports several models",
		}
	}

	parts, err := tag.ParseStructure(fullTagModelName, false)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model %q of %s: %w", fullTagModelName, citationKey, err)
	}
	return &modelScope{name: parts.Name, backbone: parts.Detail}, nil
}

func (s *modelScope) matches(model string) bool {
	return model != "" && (model == s.name || model == s.backbone)
}

// identifier names the scoped model in log records.
func (s *modelScope) identifier() string {
	if s == nil {
		return "its unique model"
	}
	return s.name
}
