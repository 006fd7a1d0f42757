package tag

import (
	"fmt"
	"strings"
)

// Parts holds the three components of a "name (equivalent) {detail}" token.
type Parts struct {
	Name       string
	Equivalent string
	Detail     string
}

// String reassembles the token in its canonical "A (B) {C}" form.
func (p Parts) String() string {
	return fmt.Sprintf("%s (%s) {%s}", p.Name, p.Equivalent, p.Detail)
}

// FormatError reports a token whose parentheses or braces are only half present.
type FormatError struct {
	Input   string
	Missing string // "parentheses" or "braces"
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s are missing or unbalanced in %q", e.Missing, e.Input)
}

// ParseStructure splits s = "A (B) {C}" into its trimmed components.
//
// A string with no parentheses yields an empty Equivalent, one with no braces an
// empty Detail. When defaultToName is set, empty Equivalent and Detail fall back
// to Name. Having only one delimiter of a pair is a *FormatError.
func ParseStructure(s string, defaultToName bool) (Parts, error) {
	parStart, parEnd, braceStart, braceEnd, err := delimiterPositions(s)
	if err != nil {
		return Parts{}, err
	}

	var p Parts
	switch {
	case parStart != -1:
		p.Name = s[:parStart]
	case braceStart != -1:
		p.Name = s[:braceStart]
	default:
		p.Name = s
	}
	p.Name = strings.TrimSpace(p.Name)

	if parStart != -1 {
		p.Equivalent = strings.TrimSpace(s[parStart+1 : parEnd])
	}
	if braceStart != -1 {
		p.Detail = strings.TrimSpace(s[braceStart+1 : braceEnd])
	}

	if defaultToName {
		if p.Equivalent == "" {
			p.Equivalent = p.Name
		}
		if p.Detail == "" {
			p.Detail = p.Name
		}
	}

	return p, nil
}

// delimiterPositions returns the first index of each delimiter, or -1 when absent.
func delimiterPositions(s string) (parStart, parEnd, braceStart, braceEnd int, err error) {
	parStart = strings.Index(s, "(")
	parEnd = strings.Index(s, ")")
	braceStart = strings.Index(s, "{")
	braceEnd = strings.Index(s, "}")

	if (parStart == -1) != (parEnd == -1) || parEnd < parStart {
		return 0, 0, 0, 0, &FormatError{Input: s, Missing: "parentheses"}
	}
	if (braceStart == -1) != (braceEnd == -1) || braceEnd < braceStart {
		return 0, 0, 0, 0, &FormatError{Input: s, Missing: "braces"}
	}

	return parStart, parEnd, braceStart, braceEnd, nil
}
