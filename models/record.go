package models

import (
	"strconv"
	"strings"
)

// ModelRecord is one output row: a model reported by an article, with its
// main information, performance metrics and accelerator design.
type ModelRecord struct {
	CitationKey     string `json:"citation_key" yaml:"citation_key"`
	Model           string `json:"model" yaml:"model"`
	EquivalentModel string `json:"equivalent_model" yaml:"equivalent_model"`
	Backbone        string `json:"backbone" yaml:"backbone"`
	Modality        string `json:"modality" yaml:"modality"`
	Dataset         string `json:"dataset" yaml:"dataset"`
	Task            string `json:"task" yaml:"task"`
	Application     string `json:"application" yaml:"application"`
	Board           string `json:"board" yaml:"board"`
	Implementation  string `json:"implementation" yaml:"implementation"`
	PublicationYear int    `json:"publication_year" yaml:"publication_year"`

	Latency          string `json:"latency" yaml:"latency"`
	FPS              string `json:"fps" yaml:"fps"`
	TaskScore        string `json:"task_score" yaml:"task_score"`
	Footprint        string `json:"footprint" yaml:"footprint"`
	Throughput       string `json:"throughput" yaml:"throughput"`
	PowerConsumption string `json:"power_consumption" yaml:"power_consumption"`
	Frequency        string `json:"frequency" yaml:"frequency"`
	Complexity       string `json:"complexity" yaml:"complexity"`

	Design           string   `json:"design" yaml:"design"`
	Memory           string   `json:"memory" yaml:"memory"`
	Precision        string   `json:"precision" yaml:"precision"`
	Optimizations    []string `json:"optimizations" yaml:"optimizations"`
	FPGAUtil         string   `json:"fpga_util" yaml:"fpga_util"`
	DPUConfig        string   `json:"dpu_config" yaml:"dpu_config"`
	DPUCore          string   `json:"dpu_core" yaml:"dpu_core"`
	DPUUtil          string   `json:"dpu_util" yaml:"dpu_util"`
	DPUOptimizations []string `json:"dpu_optimizations" yaml:"dpu_optimizations"`
}

// RecordColumns is the fixed column schema of the record table.
var RecordColumns = []string{
	"BBT Citation Key",
	"Model",
	"Equivalent model",
	"Backbone",
	"Modality",
	"Dataset",
	"Task",
	"Application",
	"Board",
	"Implementation",
	"Publication year",
	"Latency",
	"FPS",
	"Task score",
	"Footprint",
	"Throughput",
	"Power consumption",
	"Frequency",
	"Complexity",
	"Design",
	"Memory",
	"Precision",
	"Optimizations",
	"FPGA Util",
	"DPU Config",
	"DPU Core",
	"DPU Util",
	"DPU Optimizations",
}

// ListSeparator joins list-valued fields in flat outputs.
const ListSeparator = ", "

// Row returns the record's values in RecordColumns order.
func (r ModelRecord) Row() []string {
	return []string{
		r.CitationKey,
		r.Model,
		r.EquivalentModel,
		r.Backbone,
		r.Modality,
		r.Dataset,
		r.Task,
		r.Application,
		r.Board,
		r.Implementation,
		strconv.Itoa(r.PublicationYear),
		r.Latency,
		r.FPS,
		r.TaskScore,
		r.Footprint,
		r.Throughput,
		r.PowerConsumption,
		r.Frequency,
		r.Complexity,
		r.Design,
		r.Memory,
		r.Precision,
		strings.Join(r.Optimizations, ListSeparator),
		r.FPGAUtil,
		r.DPUConfig,
		r.DPUCore,
		r.DPUUtil,
		strings.Join(r.DPUOptimizations, ListSeparator),
	}
}
