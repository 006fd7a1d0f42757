package catalog

import (
	"errors"
	"testing"

	"github.com/dtnitsch/fpga-survey-extractor/models"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/tag"
)

func TestModelCore(t *testing.T) {
	tests := []struct {
		name    string
		record  models.ModelRecord
		want    string
		wantErr bool
	}{
		{"yolo", models.ModelRecord{Model: "YOLOv3-tiny", EquivalentModel: "YOLOv3"}, "YOLO", false},
		{"mobilenet is not lenet", models.ModelRecord{Model: "MobileNetV2"}, "Custom CNN", false},
		{"lenet", models.ModelRecord{Model: "LeNet-5"}, "LeNet", false},
		{"backbone decides", models.ModelRecord{Model: "FasterNet", Backbone: "ResNet-50"}, "ResNet", false},
		{"case insensitive", models.ModelRecord{Model: "fuzzy ARTMAP"}, "Trad. ML", false},
		{"generic cnn last", models.ModelRecord{Model: "Custom 4-layer CNN"}, "Custom CNN", false},
		{"unknown", models.ModelRecord{CitationKey: "a", Model: "Random forest"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ModelCore(tt.record)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ModelCore() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ModelCore() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoardPart(t *testing.T) {
	tests := []struct {
		name       string
		board      string
		wantPart   string
		wantFamily string
		wantErr    bool
	}{
		{"zcu102", "AMD Xilinx (XCZU9EG) {ZCU102}", "XCZU9EG", "Zynq", false},
		{"kv260 uses k26", "AMD Xilinx (XCZU5EV) {KV260}", "XCK26", "Kria", false},
		{"lower case part", "Xilinx (xc7z020) {PYNQ-Z1}", "XC7Z020", "Zynq", false},
		{"intel", "Intel (5CSEMA5F31C6) {DE1-SoC}", "5CSEMA5F31C6", "Cyclone", false},
		{"unknown part", "Xilinx (XC9999) {Mystery}", "", "", true},
		{"no part", "Xilinx {ZedBoard}", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BoardPart(tt.board)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BoardPart() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got.Name != tt.wantPart || got.Family != tt.wantFamily {
				t.Errorf("BoardPart() = %+v, want %s/%s", got, tt.wantPart, tt.wantFamily)
			}
		})
	}
}

func TestBoardPart_FormatError(t *testing.T) {
	_, err := BoardPart("Xilinx (XC7Z020) {ZedBoard")
	var fe *tag.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("BoardPart() error = %v, want *tag.FormatError", err)
	}
}

func TestUtilization(t *testing.T) {
	util := "45% LUT, 80% DSP, 60.5% BRAM"

	tests := []struct {
		resource string
		want     float64
		wantOK   bool
	}{
		{"DSP", 80, true},
		{"BRAM", 60.5, true},
		{"LUT", 45, true},
		{"URAM", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.resource, func(t *testing.T) {
			got, ok := Utilization(util, tt.resource)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Utilization(%q) = %v, %v, want %v, %v", tt.resource, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
