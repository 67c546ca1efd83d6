package fixtures

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/abhisek/streaks/internal/streak"
)

//go:embed workouts.json
var defaultWorkouts []byte

// Known scenario names, in display order.
const (
	SingleDay   = "singleDay"
	FourDay     = "fourDay"
	PerfectWeek = "perfectWeek"
	NineDay     = "nineDay"
)

var knownOrder = []string{SingleDay, FourDay, PerfectWeek, NineDay}

// Dataset is a named collection of streaks.
type Dataset struct {
	Scenarios map[string]streak.Streak
	// Order lists scenario names: known names first, the rest sorted.
	Order []string
}

// Default returns the built-in workout scenarios.
func Default() Dataset {
	ds, err := Parse(defaultWorkouts)
	if err != nil {
		panic(fmt.Sprintf("embedded workouts are invalid: %v", err))
	}
	return ds
}

// Load reads and parses the dataset at path. An empty path returns Default().
func Load(path string) (Dataset, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	ds, err := Parse(data)
	if err != nil {
		return Dataset{}, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// Parse validates data against the workouts schema and decodes it. A
// document whose scenarios are not arrays of strings fails with
// ErrInvalidShape before any streak is built.
func Parse(data []byte) (Dataset, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Dataset{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validate(doc); err != nil {
		return Dataset{}, err
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return Dataset{}, fmt.Errorf("decode scenarios: %w", err)
	}

	ds := Dataset{Scenarios: make(map[string]streak.Streak, len(raw))}
	for name, dates := range raw {
		ds.Scenarios[name] = streak.Streak(dates)
	}
	ds.Order = order(ds.Scenarios)
	return ds, nil
}

func order(scenarios map[string]streak.Streak) []string {
	names := make([]string, 0, len(scenarios))
	var rest []string
	for _, name := range knownOrder {
		if _, ok := scenarios[name]; ok {
			names = append(names, name)
		}
	}
	for name := range scenarios {
		if !slices.Contains(knownOrder, name) {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	return append(names, rest...)
}

// Get returns the named scenario.
func (d Dataset) Get(name string) (streak.Streak, error) {
	s, ok := d.Scenarios[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
	return s, nil
}

// At returns the name and streak at position i of Order, wrapping around.
func (d Dataset) At(i int) (string, streak.Streak) {
	if len(d.Order) == 0 {
		return "", nil
	}
	i = ((i % len(d.Order)) + len(d.Order)) % len(d.Order)
	name := d.Order[i]
	return name, d.Scenarios[name]
}

// Len returns the number of scenarios.
func (d Dataset) Len() int {
	return len(d.Order)
}

// Title returns a display title for a scenario name.
func Title(name string) string {
	switch name {
	case SingleDay:
		return "One Day Streak"
	case FourDay:
		return "Four Day Streak"
	case PerfectWeek:
		return "Perfect Week"
	case NineDay:
		return "Nine Day Streak"
	default:
		return name
	}
}
