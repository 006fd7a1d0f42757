// Package screening separates the articles kept for review from those the
// survey authors excluded with an "Excluded: <criterion>" tag.
package screening

import (
	"strings"

	"github.com/dtnitsch/fpga-survey-extractor/models"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/tag"
)

// Criterion groups the articles excluded for one reason.
type Criterion struct {
	Reason string
	Keys   []string
}

// Exclusions lists criteria in the order they were first seen.
type Exclusions []Criterion

// Total returns the number of excluded articles.
func (e Exclusions) Total() int {
	n := 0
	for _, c := range e {
		n += len(c.Keys)
	}
	return n
}

// Screen splits articles into kept and excluded. An article is counted
// under its first Excluded tag only, so every input article is either kept
// or listed under exactly one criterion.
func Screen(articles []models.Article) ([]models.Article, Exclusions) {
	kept := make([]models.Article, 0, len(articles))
	var exclusions Exclusions
	index := map[string]int{}

	for _, a := range articles {
		reason, excluded := exclusionReason(a.Tags)
		if !excluded {
			kept = append(kept, a)
			continue
		}
		i, ok := index[reason]
		if !ok {
			i = len(exclusions)
			index[reason] = i
			exclusions = append(exclusions, Criterion{Reason: reason})
		}
		exclusions[i].Keys = append(exclusions[i].Keys, a.CitationKey)
	}
	return kept, exclusions
}

func exclusionReason(tags []string) (string, bool) {
	prefix := tag.KindExcluded.Prefix()
	for _, t := range tags {
		if strings.HasPrefix(t, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(t, prefix)), true
		}
	}
	return "", false
}
