package tag

import (
	"errors"
	"testing"
)

func TestParseStructure(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		defaultToName bool
		want          Parts
	}{
		{
			name:  "full token",
			input: "YOLOv4 (CNN) {Object Detection}",
			want:  Parts{Name: "YOLOv4", Equivalent: "CNN", Detail: "Object Detection"},
		},
		{
			name:  "extra whitespace is trimmed",
			input: "  ResNet-34   (  ResNet )  {  Classification } ",
			want:  Parts{Name: "ResNet-34", Equivalent: "ResNet", Detail: "Classification"},
		},
		{
			name:  "braces only",
			input: "A {C}",
			want:  Parts{Name: "A", Detail: "C"},
		},
		{
			name:  "parentheses only",
			input: "Object detection (Diverse)",
			want:  Parts{Name: "Object detection", Equivalent: "Diverse"},
		},
		{
			name:  "no delimiters",
			input: "SVM",
			want:  Parts{Name: "SVM"},
		},
		{
			name:          "default to name fills empty components",
			input:         "SVM",
			defaultToName: true,
			want:          Parts{Name: "SVM", Equivalent: "SVM", Detail: "SVM"},
		},
		{
			name:          "default to name keeps present components",
			input:         "U-Net () {ResNet}",
			defaultToName: true,
			want:          Parts{Name: "U-Net", Equivalent: "U-Net", Detail: "ResNet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStructure(tt.input, tt.defaultToName)
			if err != nil {
				t.Fatalf("ParseStructure(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStructure(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseStructure_FormatError(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		missing string
	}{
		{"missing closing parenthesis", "Model (Backbone", "parentheses"},
		{"missing opening parenthesis", "Model Backbone) {x}", "parentheses"},
		{"missing closing brace", "Model (Backbone) {Detection", "braces"},
		{"missing opening brace", "Model (Backbone) Detection}", "braces"},
		{"reversed parentheses", "Model )Backbone(", "parentheses"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStructure(tt.input, false)
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("ParseStructure(%q) error = %v, want *FormatError", tt.input, err)
			}
			if formatErr.Missing != tt.missing {
				t.Errorf("Missing = %q, want %q", formatErr.Missing, tt.missing)
			}
		})
	}
}

func TestParseStructure_RoundTrip(t *testing.T) {
	inputs := []string{
		"YOLOv4 (CNN) {Object Detection}",
		"VGG16 (VGG) {VGG16}",
		" CloudSatNet-1 ( CNN ) { Custom } ",
	}

	for _, input := range inputs {
		first, err := ParseStructure(input, false)
		if err != nil {
			t.Fatalf("ParseStructure(%q) error = %v", input, err)
		}
		second, err := ParseStructure(first.String(), false)
		if err != nil {
			t.Fatalf("ParseStructure(%q) error = %v", first.String(), err)
		}
		if first != second {
			t.Errorf("round trip of %q: %+v != %+v", input, first, second)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		raw       string
		wantKind  Kind
		wantValue string
	}{
		{"Board: Z7020", KindBoard, "Z7020"},
		{"Model: YOLOv4 (CNN) {Object Detection}", KindModel, "YOLOv4 (CNN) {Object Detection}"},
		{"Model latency: 15 ms", KindLatency, "15 ms"},
		{"Model FPS: 30 FPS", KindFPS, "30 FPS"},
		{"Frequency:  200 MHz ", KindFrequency, "200 MHz"},
		{"FPGA Opt: Multiple PEs, Pipelining", KindOptimizations, "Multiple PEs, Pipelining"},
		{"DPU Opt: UltraRAM", KindDPUOptimizations, "UltraRAM"},
		{"Excluded: Not FPGA", KindExcluded, "Not FPGA"},
		{"Reviewed", KindUnknown, "Reviewed"},
		{"Board:Z7020", KindUnknown, "Board:Z7020"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Parse(tt.raw)
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", got.Value, tt.wantValue)
			}
			if got.Raw != tt.raw {
				t.Errorf("Raw = %q, want %q", got.Raw, tt.raw)
			}
		})
	}
}

func TestParseAll_PreservesOrder(t *testing.T) {
	raw := []string{"Dataset: A", "Model: X", "Dataset: B"}
	tags := ParseAll(raw)
	if len(tags) != 3 {
		t.Fatalf("len(tags) = %d, want 3", len(tags))
	}
	for i, tg := range tags {
		if tg.Raw != raw[i] {
			t.Errorf("tags[%d].Raw = %q, want %q", i, tg.Raw, raw[i])
		}
	}
}

func TestTagScoped(t *testing.T) {
	tests := []struct {
		raw       string
		wantModel string
		wantValue string
		wantOK    bool
	}{
		{"Model latency: (YOLOv4) 10 ms", "YOLOv4", "10 ms", true},
		{"Model latency: ( ResNet )20 ms", "ResNet", "20 ms", true},
		{"Model latency: 10 ms", "", "10 ms", false},
		{"FPGA Prec: (VGG16) Fixed (16)", "VGG16", "Fixed (16)", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			model, value, ok := Parse(tt.raw).Scoped()
			if model != tt.wantModel || value != tt.wantValue || ok != tt.wantOK {
				t.Errorf("Scoped() = (%q, %q, %v), want (%q, %q, %v)",
					model, value, ok, tt.wantModel, tt.wantValue, tt.wantOK)
			}
		})
	}
}

func TestKindPrefixAndString(t *testing.T) {
	if got := KindLatency.Prefix(); got != "Model latency: " {
		t.Errorf("KindLatency.Prefix() = %q", got)
	}
	if got := KindDPUCore.String(); got != "DPU Core" {
		t.Errorf("KindDPUCore.String() = %q", got)
	}
	if got := KindUnknown.String(); got != "Unknown" {
		t.Errorf("KindUnknown.String() = %q", got)
	}
}
