package help

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestColdstartYAML(t *testing.T) {
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(ColdstartYAML), &doc); err != nil {
		t.Fatalf("ColdstartYAML is not valid YAML: %v", err)
	}
	for _, key := range []string{"workflow", "policies", "outputs", "commands", "tags", "config"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing section %q", key)
		}
	}
}
