// Package benchmark runs solver strategies over sampled answers and
// aggregates their statistics. Suites are YAML documents; a default suite
// is embedded.
package benchmark

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed suites/*.yaml
var suiteFS embed.FS

// SolverSpec names one engine configuration to benchmark.
type SolverSpec struct {
	Name      string `yaml:"name"`
	Strategy  string `yaml:"strategy"`
	Cost      string `yaml:"cost,omitempty"`
	Heuristic string `yaml:"heuristic,omitempty"`
	Branching int    `yaml:"branching,omitempty"`
}

// Suite is one benchmark configuration: how many answers to sample, with
// which seed, and which solver configurations to run over them.
type Suite struct {
	Name        string       `yaml:"name"`
	Samples     int          `yaml:"samples"`
	Seed        int64        `yaml:"seed"`
	Opening     int          `yaml:"opening"`
	MaxAttempts int          `yaml:"max_attempts"`
	Parallel    int          `yaml:"parallel"`
	Solvers     []SolverSpec `yaml:"solvers"`
}

// LoadSuite reads a suite by embedded name or from a YAML file path.
// Embedded names win so `bench default` works from any directory.
func LoadSuite(name string) (*Suite, error) {
	data, err := suiteFS.ReadFile("suites/" + name + ".yaml")
	if err != nil {
		data, err = os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("benchmark: suite %q not found (embedded: %s): %w",
				name, strings.Join(ListSuites(), ", "), err)
		}
	}
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("benchmark: parse suite %q: %w", name, err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Suite) validate() error {
	if s.Samples <= 0 {
		return fmt.Errorf("benchmark: suite %q: samples must be positive", s.Name)
	}
	if len(s.Solvers) == 0 {
		return fmt.Errorf("benchmark: suite %q: no solvers configured", s.Name)
	}
	for _, spec := range s.Solvers {
		if spec.Name == "" || spec.Strategy == "" {
			return fmt.Errorf("benchmark: suite %q: solver entries need name and strategy", s.Name)
		}
	}
	return nil
}

// ListSuites returns the embedded suite names, sorted.
func ListSuites() []string {
	entries, _ := suiteFS.ReadDir("suites")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}
