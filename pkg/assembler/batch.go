package assembler

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtnitsch/fpga-survey-extractor/models"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/classifier"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/extractors"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/tag"
)

// SkipKind classifies why an article produced no records.
type SkipKind string

const (
	SkipValidation  SkipKind = "validation"
	SkipFormat      SkipKind = "format"
	SkipInput       SkipKind = "input"
	SkipMissingData SkipKind = "missing_data"
	SkipNoRecords   SkipKind = "no_records"
	SkipOther       SkipKind = "other"
)

// SkipReason explains an article that could not be turned into records.
type SkipReason struct {
	Kind SkipKind
	Err  error
}

// Result is the outcome of processing one article: either records or a
// reason to skip it.
type Result struct {
	CitationKey string
	Records     []models.ModelRecord
	Skip        *SkipReason
}

// OK reports whether the article produced records.
func (r Result) OK() bool {
	return r.Skip == nil
}

// Process assembles one article and reports failures as a SkipReason
// instead of an error, leaving the decision to continue to the caller.
func (a *Assembler) Process(article models.Article) Result {
	res := Result{CitationKey: article.CitationKey}

	records, err := a.Assemble(article)
	switch {
	case err != nil:
		res.Skip = &SkipReason{Kind: SkipKindOf(err), Err: err}
	case len(records) == 0:
		res.Skip = &SkipReason{Kind: SkipNoRecords, Err: fmt.Errorf("%s: %w", article.CitationKey, ErrNoRecords)}
	default:
		res.Records = records
	}
	return res
}

// SkipKindOf maps an assembly error to its SkipKind.
func SkipKindOf(err error) SkipKind {
	var (
		validationErr *classifier.ValidationError
		formatErr     *tag.FormatError
		inputErr      *extractors.InputError
		missingErr    *MissingDataResourceError
	)
	switch {
	case errors.As(err, &validationErr):
		return SkipValidation
	case errors.As(err, &formatErr):
		return SkipFormat
	case errors.As(err, &inputErr):
		return SkipInput
	case errors.As(err, &missingErr):
		return SkipMissingData
	case errors.Is(err, ErrNoRecords):
		return SkipNoRecords
	}
	return SkipOther
}

// AbortError stops a PolicyAbort run at the first article that produced
// no records. It unwraps to the typed assembly error.
type AbortError struct {
	CitationKey string
	Reason      SkipReason
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("failed to process %s: %v", e.CitationKey, e.Reason.Err)
}

func (e *AbortError) Unwrap() error {
	return e.Reason.Err
}

// Batch collects the outcome of a run over many articles.
type Batch struct {
	Records   []models.ModelRecord
	Processed int      // articles that produced records
	Skipped   []Result // articles skipped under PolicySkip, in input order
}

// Run processes articles in order. Under PolicyAbort the first skipped
// article stops the run and its reason is returned as the error; under
// PolicySkip it is recorded in Batch.Skipped and the run continues. The
// records gathered so far are returned in both cases.
func (a *Assembler) Run(ctx context.Context, articles []models.Article, policy models.FailurePolicy) (Batch, error) {
	var batch Batch

	for _, article := range articles {
		if err := ctx.Err(); err != nil {
			return batch, fmt.Errorf("extraction interrupted: %w", err)
		}

		res := a.Process(article)
		if !res.OK() {
			if policy != models.PolicySkip {
				return batch, &AbortError{CitationKey: article.CitationKey, Reason: *res.Skip}
			}
			a.logger.Warn("article skipped",
				"citation_key", article.CitationKey,
				"reason", string(res.Skip.Kind),
				"error", res.Skip.Err)
			batch.Skipped = append(batch.Skipped, res)
			continue
		}

		batch.Records = append(batch.Records, res.Records...)
		batch.Processed++
	}

	return batch, nil
}
