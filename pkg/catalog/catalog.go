// Package catalog holds reference tables used to group records: the model
// core of a reported model and the family of the FPGA part it runs on.
package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dtnitsch/fpga-survey-extractor/models"
	"github.com/dtnitsch/fpga-survey-extractor/pkg/tag"
)

type coreKeyword struct {
	keyword string
	core    string
}

// modelCores is checked in order; the first keyword found wins, so the
// generic "CNN" entry must stay last.
var modelCores = []coreKeyword{
	{"ALEXNET", "AlexNet"},
	{"YOLO", "YOLO"},
	{"SSD", "SSD"},
	{"VGG", "VGG"},
	{"RESNET", "ResNet"},
	{"GHOSTNET", "GhostNet"},
	{"U-NET", "U-Net"},
	{"MOBILENET", "Custom CNN"}, // must precede LENET
	{"LENET", "LeNet"},
	{"VIT", "ViT"},

	{"MLP", "Shallow NN"},
	{"DEEP BELIEF NETWORK", "Shallow NN"},
	{"WEIGHTLESS NEURAL SYSTEMS", "Shallow NN"},

	{"GNN", "GNN"},

	{"SVM", "Trad. ML"},
	{"DECISION TREE", "Trad. ML"},
	{"FUZZY ARTMAP", "Trad. ML"},
	{"LPDBL", "Trad. ML"},
	{"ROLLER DUNG BETTLE CLUSTERING", "Trad. ML"},
	{"CAL-SC2S", "Trad. ML"},
	{"CAG-SC2S", "Trad. ML"},

	{"CNN", "Custom CNN"},
}

// ModelCore returns the model family of a record, matched on its model,
// equivalent model and backbone.
func ModelCore(r models.ModelRecord) (string, error) {
	combined := strings.ToUpper(r.Model + " " + r.EquivalentModel + " " + r.Backbone)
	for _, mc := range modelCores {
		if strings.Contains(combined, mc.keyword) {
			return mc.core, nil
		}
	}
	return "", fmt.Errorf("model core not found for %s/%s", r.CitationKey, r.Model)
}

// Part describes an FPGA device.
type Part struct {
	Name   string
	Year   int
	DSP    int
	Family string
}

// DSP counts are DSP48E1 slices for the 7-series and DSP48E2 for UltraScale+.
var parts = map[string]Part{
	"XC3SD1800A": {"XC3SD1800A", 2006, 84, "Spartan"},
	"XC6VLX240T": {"XC6VLX240T", 2009, 768, "Virtex"},

	"XC7A35T":   {"XC7A35T", 2010, 90, "Artix"},
	"XC7A200T":  {"XC7A200T", 2010, 740, "Artix"},
	"XC7K325T":  {"XC7K325T", 2010, 840, "Kintex"},
	"XC7VX690T": {"XC7VX690T", 2010, 3600, "Virtex"},
	"XC7Z020":   {"XC7Z020", 2011, 220, "Zynq"},
	"XC7Z035":   {"XC7Z035", 2011, 900, "Zynq"},
	"XC7Z045":   {"XC7Z045", 2011, 900, "Zynq"},
	"XC7Z100":   {"XC7Z100", 2011, 2020, "Zynq"},

	"XCKU040":  {"XCKU040", 2013, 1920, "Kintex"},
	"XQRKU060": {"XQRKU060", 2018, 2760, "Kintex"},

	"XCZU9EG":  {"XCZU9EG", 2015, 2520, "Zynq"},
	"XCZU15EG": {"XCZU15EG", 2015, 3528, "Zynq"},
	"XCZU19EG": {"XCZU19EG", 2015, 1968, "Zynq"},
	"XCZU3EG":  {"XCZU3EG", 2015, 360, "Zynq"},
	"XCZU7EV":  {"XCZU7EV", 2015, 1728, "Zynq"},
	"U280":     {"U280", 2018, 9024, "Alveo"},
	"XCK26":    {"XCK26", 2021, 1248, "Kria"},

	"5CSXC6":       {"5CSXC6", 2012, 112, "Cyclone"},
	"5CSEMA5F31C6": {"5CSEMA5F31C6", 2012, 87, "Cyclone"},
}

// LookupPart returns the device named by part.
func LookupPart(part string) (Part, bool) {
	p, ok := parts[strings.ToUpper(strings.TrimSpace(part))]
	return p, ok
}

// BoardPart returns the FPGA part of a board value written as
// "Vendor (PART) {Board}". Kria KV260 boards carry the K26 SOM whatever part
// the tag names.
func BoardPart(board string) (Part, error) {
	p, err := tag.ParseStructure(board, false)
	if err != nil {
		return Part{}, err
	}
	name := p.Equivalent
	if strings.HasSuffix(p.Detail, "KV260") {
		name = "XCK26"
	}
	if name == "" {
		return Part{}, fmt.Errorf("board %q names no FPGA part", board)
	}
	part, ok := LookupPart(name)
	if !ok {
		return Part{}, fmt.Errorf("unknown FPGA part %q in board %q", name, board)
	}
	return part, nil
}

// Utilization returns the percentage reported for resource (e.g. "DSP",
// "BRAM") in an FPGA Util value such as "45% LUT, 80% DSP".
func Utilization(util, resource string) (float64, bool) {
	re := regexp.MustCompile(`(\d+(?:\.\d+)?)%\s*` + regexp.QuoteMeta(resource))
	m := re.FindStringSubmatch(util)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
