// Package tag classifies survey annotation tags ("Prefix: value") and parses
// the "name (equivalent) {detail}" structure some of their values carry.
package tag

import "strings"

// Kind identifies what a tag annotates, derived from its prefix.
type Kind int

const (
	KindUnknown Kind = iota

	// Main information
	KindDataset
	KindModel
	KindBoard
	KindTask
	KindImplementation
	KindModality

	// Screening
	KindExcluded

	// Performance metrics
	KindLatency
	KindFPS
	KindPerformance
	KindSize
	KindThroughput
	KindPower
	KindFrequency
	KindComplexity

	// Accelerator design
	KindDesign
	KindMemory
	KindPrecision
	KindOptimizations
	KindFPGAUtil
	KindDPUConfig
	KindDPUCore
	KindDPUUtil
	KindDPUOptimizations
)

type prefixEntry struct {
	prefix string
	kind   Kind
}

// prefixes is the static table every tag is matched against. No prefix in it
// is a prefix of another, so the first match is the only match.
var prefixes = []prefixEntry{
	{"Dataset: ", KindDataset},
	{"Model: ", KindModel},
	{"Board: ", KindBoard},
	{"Task: ", KindTask},
	{"Implementation: ", KindImplementation},
	{"Modality: ", KindModality},
	{"Excluded: ", KindExcluded},

	{"Model latency: ", KindLatency},
	{"Model FPS: ", KindFPS},
	{"Model performance: ", KindPerformance},
	{"Model size: ", KindSize},
	{"Model throughput: ", KindThroughput},
	{"Power consumption: ", KindPower},
	{"Frequency: ", KindFrequency},
	{"Model complexity: ", KindComplexity},

	{"FPGA Design: ", KindDesign},
	{"FPGA Mem: ", KindMemory},
	{"FPGA Prec: ", KindPrecision},
	{"FPGA Opt: ", KindOptimizations},
	{"FPGA Util: ", KindFPGAUtil},
	{"DPU Config: ", KindDPUConfig},
	{"DPU Core: ", KindDPUCore},
	{"DPU Util: ", KindDPUUtil},
	{"DPU Opt: ", KindDPUOptimizations},
}

var kindPrefix = func() map[Kind]string {
	m := make(map[Kind]string, len(prefixes))
	for _, e := range prefixes {
		m[e.kind] = e.prefix
	}
	return m
}()

// Prefix returns the tag prefix for k, including the trailing ": ".
func (k Kind) Prefix() string {
	return kindPrefix[k]
}

func (k Kind) String() string {
	if p, ok := kindPrefix[k]; ok {
		return strings.TrimSuffix(p, ": ")
	}
	return "Unknown"
}

// Tag is a raw annotation classified by its prefix.
type Tag struct {
	Raw   string
	Kind  Kind
	Value string // text after the prefix, trimmed
}

// Parse classifies a single raw tag. Unrecognised tags get KindUnknown and
// keep the whole trimmed string as their value.
func Parse(raw string) Tag {
	for _, e := range prefixes {
		if strings.HasPrefix(raw, e.prefix) {
			return Tag{
				Raw:   raw,
				Kind:  e.kind,
				Value: strings.TrimSpace(raw[len(e.prefix):]),
			}
		}
	}
	return Tag{Raw: raw, Kind: KindUnknown, Value: strings.TrimSpace(raw)}
}

// ParseAll classifies tags, preserving their order.
func ParseAll(raw []string) []Tag {
	tags := make([]Tag, len(raw))
	for i, r := range raw {
		tags[i] = Parse(r)
	}
	return tags
}

// Scoped splits a value carrying a leading "(model) value" marker, used by
// articles that report several models. ok is false when the value has no marker.
func (t Tag) Scoped() (model, value string, ok bool) {
	if !strings.HasPrefix(t.Value, "(") {
		return "", t.Value, false
	}
	inner, rest, found := strings.Cut(t.Value[1:], ")")
	if !found {
		return strings.TrimSpace(inner), "", true
	}
	return strings.TrimSpace(inner), strings.TrimSpace(rest), true
}

// IsNotAvailable reports whether a value was annotated as missing ("N/A...").
func IsNotAvailable(value string) bool {
	return strings.HasPrefix(value, "N/A")
}
