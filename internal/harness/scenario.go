package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario defines one conformance scenario: a prime bound and the checks
// to run against scans over that bound.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// MaxPrime is the inclusive upper bound for prime generation.
	MaxPrime int64 `yaml:"max_prime"`

	// Checks lists the assertions to evaluate, in order.
	Checks []Check `yaml:"checks"`
}

// Check is a single assertion within a scenario.
type Check struct {
	// Type selects the check:
	//   - "gap_scan":       run the gap-pair scanner and compare tallies
	//   - "cross_check":    gap-pair scanner vs mod-6 structural scan
	//   - "pattern_totals": per-pattern totals sum to the pair total
	//   - "rate_bounds":    every defined rate lies in [0,100]
	Type string `yaml:"type"`

	// Gap is the prime gap under test (required for all but rate_bounds).
	Gap int64 `yaml:"gap,omitempty"`

	// Modulus overrides the divisibility modulus; 0 means the default (3).
	Modulus int64 `yaml:"modulus,omitempty"`

	// Expect holds the expected tallies for gap_scan checks.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect specifies expected gap-scan outcomes. Nil fields are not checked.
type Expect struct {
	TotalPairs      *int64   `yaml:"total_pairs,omitempty"`
	SuccessfulPairs *int64   `yaml:"successful_pairs,omitempty"`
	Rate            *float64 `yaml:"rate,omitempty"`

	// Counterexamples is the expected number of retained counterexamples
	// (capped at 10 by the scanner).
	Counterexamples *int `yaml:"counterexamples,omitempty"`
}

// Check type constants.
const (
	CheckGapScan       = "gap_scan"
	CheckCrossCheck    = "cross_check"
	CheckPatternTotals = "pattern_totals"
	CheckRateBounds    = "rate_bounds"
)

// LoadScenario reads and parses a scenario YAML file.
// Unknown fields are rejected so typos fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// LoadScenarioDir loads every .yaml file in dir, sorted by filename for a
// deterministic run order.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := filepath.Ext(e.Name()); ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files found in %s", dir)
	}

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and consistent.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.MaxPrime < 2 {
		return fmt.Errorf("max_prime must be at least 2, got %d", s.MaxPrime)
	}
	if len(s.Checks) == 0 {
		return fmt.Errorf("checks list is required and must be non-empty")
	}

	for i, c := range s.Checks {
		if err := validateCheck(i, &c); err != nil {
			return err
		}
	}
	return nil
}

// validateCheck validates a single check based on its type.
func validateCheck(index int, c *Check) error {
	switch c.Type {
	case CheckGapScan:
		if err := requireGap(index, c, 2); err != nil {
			return err
		}
		if c.Expect == nil {
			return fmt.Errorf("checks[%d]: expect is required for gap_scan", index)
		}
	case CheckCrossCheck, CheckPatternTotals:
		if err := requireGap(index, c, 6); err != nil {
			return err
		}
		if c.Gap%6 != 0 {
			return fmt.Errorf("checks[%d]: gap %d must be divisible by 6 for %s", index, c.Gap, c.Type)
		}
	case CheckRateBounds:
		// No further fields.
	case "":
		return fmt.Errorf("checks[%d]: type is required", index)
	default:
		return fmt.Errorf("checks[%d]: unknown check type %q", index, c.Type)
	}

	if c.Modulus < 0 {
		return fmt.Errorf("checks[%d]: modulus must be positive", index)
	}
	return nil
}

func requireGap(index int, c *Check, min int64) error {
	if c.Gap < min {
		return fmt.Errorf("checks[%d]: gap is required and must be at least %d for %s", index, min, c.Type)
	}
	if c.Gap%2 != 0 {
		return fmt.Errorf("checks[%d]: gap %d must be even", index, c.Gap)
	}
	return nil
}
