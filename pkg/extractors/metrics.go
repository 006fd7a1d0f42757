package extractors

import (
	"log/slog"
	"strings"

	"github.com/dtnitsch/fpga-survey-extractor/pkg/tag"
)

// Metric is the name of a reported performance metric.
type Metric string

const (
	Latency          Metric = "Latency"           // ms, s or us; a trailing '*' means per pixel
	FPS              Metric = "FPS"               // frames per second
	TaskScore        Metric = "Task score"        // % OA, % F1, % mIoU, ...
	Footprint        Metric = "Footprint"         // MB
	Throughput       Metric = "Throughput"        // GOP/s
	PowerConsumption Metric = "Power consumption" // W
	Frequency        Metric = "Frequency"         // MHz
	Complexity       Metric = "Complexity"        // OP, e.g. "45.67M OP"
)

var metricKinds = []struct {
	metric Metric
	kind   tag.Kind
}{
	{Latency, tag.KindLatency},
	{FPS, tag.KindFPS},
	{TaskScore, tag.KindPerformance},
	{Footprint, tag.KindSize},
	{Throughput, tag.KindThroughput},
	{PowerConsumption, tag.KindPower},
	{Frequency, tag.KindFrequency},
	{Complexity, tag.KindComplexity},
}

var latencyUnits = []string{"ms", "s", "us", "ms*", "s*", "us*"}

// Metrics holds the metrics of one model. An empty value means the metric
// was not reported; Missing lists those metrics in extraction order.
type Metrics struct {
	Latency          string
	FPS              string
	TaskScore        string
	Footprint        string
	Throughput       string
	PowerConsumption string
	Frequency        string
	Complexity       string

	Missing []Metric
}

// Value returns the value stored for a metric.
func (m *Metrics) Value(metric Metric) string {
	if p := m.field(metric); p != nil {
		return *p
	}
	return ""
}

func (m *Metrics) field(metric Metric) *string {
	switch metric {
	case Latency:
		return &m.Latency
	case FPS:
		return &m.FPS
	case TaskScore:
		return &m.TaskScore
	case Footprint:
		return &m.Footprint
	case Throughput:
		return &m.Throughput
	case PowerConsumption:
		return &m.PowerConsumption
	case Frequency:
		return &m.Frequency
	case Complexity:
		return &m.Complexity
	}
	return nil
}

// ExtractMetrics pulls the performance metrics of one model out of an
// article's tags.
//
// For single-model articles the first tag of each metric wins. When the
// article reports several models, fullTagModelName ("name (equivalent)
// {backbone}") selects the tags whose value starts with "(name)" or
// "(backbone)"; unmarked tags only count for Frequency, which is board-wide.
func ExtractMetrics(logger *slog.Logger, citationKey string, tags []tag.Tag, severalModels bool, fullTagModelName string) (Metrics, error) {
	scope, err := newScope(citationKey, severalModels, fullTagModelName)
	if err != nil {
		return Metrics{}, err
	}

	var m Metrics
	for _, mk := range metricKinds {
		value, found := findMetric(tags, mk.kind, scope)
		if !found {
			m.Missing = append(m.Missing, mk.metric)
			continue
		}
		*m.field(mk.metric) = normalizeMetric(logger, citationKey, mk.metric, value)
	}

	if len(m.Missing) > 0 {
		missing := make([]string, len(m.Missing))
		for i, metric := range m.Missing {
			missing[i] = string(metric)
		}
		logger.Debug("missing metrics",
			"warning", "missing_metric",
			"citation_key", citationKey,
			"model", scope.identifier(),
			"metrics", strings.Join(missing, ", "))
	}

	return m, nil
}

func findMetric(tags []tag.Tag, kind tag.Kind, scope *modelScope) (string, bool) {
	for _, t := range tags {
		if t.Kind != kind {
			continue
		}
		if scope == nil {
			return valueOrEmpty(t.Value), true
		}

		model, value, scoped := t.Scoped()
		if scoped {
			if scope.matches(model) {
				return valueOrEmpty(value), true
			}
			continue
		}
		// Unmarked tags in multi-model articles are either "N/A" for every
		// model or the board frequency, which all models share.
		if kind == tag.KindFrequency {
			return valueOrEmpty(t.Value), true
		}
	}
	return "", false
}

func valueOrEmpty(value string) string {
	if tag.IsNotAvailable(value) {
		return ""
	}
	return value
}

// normalizeMetric rewrites "Acc" scores as "OA" and logs values whose unit
// does not match the metric. Values are otherwise kept as annotated.
func normalizeMetric(logger *slog.Logger, citationKey string, metric Metric, value string) string {
	if value == "" {
		return value
	}

	unitWarning := func(expected string) {
		logger.Debug("unexpected metric unit",
			"warning", "metric_unit",
			"citation_key", citationKey,
			"metric", string(metric),
			"value", value,
			"expected", expected)
	}

	switch metric {
	case TaskScore:
		if strings.Contains(value, "Acc") {
			logger.Debug("task score reported as Acc, replacing with OA",
				"warning", "acc_metric",
				"citation_key", citationKey,
				"value", value)
			value = strings.ReplaceAll(value, "Acc", "OA")
		}
	case Frequency:
		if !strings.HasSuffix(value, "MHz") {
			unitWarning("MHz")
		}
	case Complexity:
		if !strings.HasSuffix(value, "OP") {
			unitWarning("OP")
		}
	case Latency:
		if !hasAnySuffix(value, latencyUnits) {
			unitWarning(strings.Join(latencyUnits, "|"))
		}
	case FPS:
		if !strings.HasSuffix(value, "FPS") {
			unitWarning("FPS")
		}
	}

	return value
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
