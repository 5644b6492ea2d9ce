package config

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultTimeLayout is the layout of the "Start Time" and "End Time" cells.
const DefaultTimeLayout = "2006-01-02 15:04:05"

// Model is the static city table: every city the user can pick, in prompt order.
type Model struct {
	Cities []*City
}

// City maps a selectable city name to its trip source.
type City struct {
	Name       string
	File       string
	TimeLayout string
}

// Lookup returns the city registered under name. Matching is case-insensitive.
func (m *Model) Lookup(name string) (*City, bool) {
	key := NormalizeName(name)
	for _, c := range m.Cities {
		if c.Name == key {
			return c, true
		}
	}
	return nil, false
}

// CityNames returns the selectable city names in prompt order.
func (m *Model) CityNames() []string {
	names := make([]string, 0, len(m.Cities))
	for _, c := range m.Cities {
		names = append(names, c.Name)
	}
	return names
}

// Validate checks the table is usable: at least one city, unique names and
// a source file for every entry.
func (m *Model) Validate() error {
	if m == nil || len(m.Cities) == 0 {
		return errors.New("city table is empty")
	}
	seen := make(map[string]struct{}, len(m.Cities))
	for _, c := range m.Cities {
		if c.Name == "" {
			return errors.New("city with empty name")
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("city %q is defined more than once", c.Name)
		}
		seen[c.Name] = struct{}{}
		if c.File == "" {
			return fmt.Errorf("city %q has no source file", c.Name)
		}
		if c.TimeLayout == "" {
			return fmt.Errorf("city %q has no time layout", c.Name)
		}
	}
	return nil
}

// NormalizeName is the canonical form of a city selector.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
