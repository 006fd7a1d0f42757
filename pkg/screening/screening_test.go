package screening

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/fpga-survey-extractor/models"
)

func TestScreen(t *testing.T) {
	articles := []models.Article{
		{CitationKey: "a", Tags: []string{"Board: Z7020"}},
		{CitationKey: "b", Tags: []string{"Excluded: Not FPGA", "Excluded: Review"}},
		{CitationKey: "c", Tags: []string{"Excluded: Review"}},
		{CitationKey: "d", Tags: nil},
		{CitationKey: "e", Tags: []string{"Model: CNN", "Excluded: Not FPGA"}},
	}

	kept, exclusions := Screen(articles)

	var keptKeys []string
	for _, a := range kept {
		keptKeys = append(keptKeys, a.CitationKey)
	}
	if want := []string{"a", "d"}; !reflect.DeepEqual(keptKeys, want) {
		t.Errorf("kept = %v, want %v", keptKeys, want)
	}

	want := Exclusions{
		{Reason: "Not FPGA", Keys: []string{"b", "e"}},
		{Reason: "Review", Keys: []string{"c"}},
	}
	if !reflect.DeepEqual(exclusions, want) {
		t.Errorf("exclusions = %+v, want %+v", exclusions, want)
	}

	if got := len(kept) + exclusions.Total(); got != len(articles) {
		t.Errorf("kept + excluded = %d, want %d", got, len(articles))
	}
}

func TestScreen_NothingExcluded(t *testing.T) {
	articles := []models.Article{{CitationKey: "a"}, {CitationKey: "b"}}

	kept, exclusions := Screen(articles)
	if len(kept) != 2 {
		t.Errorf("len(kept) = %d, want 2", len(kept))
	}
	if exclusions.Total() != 0 || len(exclusions) != 0 {
		t.Errorf("exclusions = %+v, want none", exclusions)
	}
}

func TestScreen_Empty(t *testing.T) {
	kept, exclusions := Screen(nil)
	if len(kept) != 0 || len(exclusions) != 0 {
		t.Errorf("Screen(nil) = %v, %v", kept, exclusions)
	}
}
