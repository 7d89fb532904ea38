package harness

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Scenario is one tree to build and report on.
type Scenario struct {
	Name string `yaml:"name"`
	// Values are added in order.
	Values []int `yaml:"values"`
	// Heights lists nodes whose cached height is reported.
	Heights []int `yaml:"heights"`
	// Then are added one at a time after the report, with the AVL check repeated after each.
	Then []int `yaml:"then"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Demo is the classroom walk-through: a balanced tree skewed by one leaf, then by a second one.
func Demo() Scenario {
	return Scenario{
		Name:    "demo",
		Values:  []int{50, 30, 70, 20, 40, 60, 80, 10},
		Heights: []int{50, 30, 80},
		Then:    []int{5},
	}
}

// ParseScenarios decodes a YAML document holding a top-level scenarios list.
// Unnamed scenarios are named after their position.
func ParseScenarios(data []byte) ([]Scenario, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decode scenarios")
	}
	if len(f.Scenarios) == 0 {
		return nil, errors.New("no scenarios defined")
	}
	for i := range f.Scenarios {
		if f.Scenarios[i].Name == "" {
			f.Scenarios[i].Name = fmt.Sprintf("scenario-%d", i+1)
		}
	}
	return f.Scenarios, nil
}

// LoadScenarios reads and parses a scenario file.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scenario file %s", path)
	}
	ss, err := ParseScenarios(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario file %s", path)
	}
	return ss, nil
}
