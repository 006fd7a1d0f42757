// Package models defines data structures shared by the extraction commands.
package models

import "fmt"

// ExtractConfig holds runtime configuration for an extraction run.
// Values come from CLI flags layered over the config file.
type ExtractConfig struct {
	InputPath  string
	OutputPath string
	DBPath     string
	Verbosity  int
	Policy     FailurePolicy
	Screen     bool
}

// FailurePolicy decides what a batch does with an article that cannot be
// turned into records.
type FailurePolicy string

const (
	// PolicyAbort stops the batch at the first failing article.
	PolicyAbort FailurePolicy = "abort"
	// PolicySkip records the failure and moves on to the next article.
	PolicySkip FailurePolicy = "skip"
)

// ParseFailurePolicy validates a policy name. An empty name means PolicyAbort.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(s) {
	case "", PolicyAbort:
		return PolicyAbort, nil
	case PolicySkip:
		return PolicySkip, nil
	}
	return "", fmt.Errorf("unknown failure policy %q (want %q or %q)", s, PolicyAbort, PolicySkip)
}
