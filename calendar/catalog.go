package calendar

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog lists the per-calendar properties shipped with the library.
type Catalog struct {
	Version   string     `yaml:"version"`
	Calendars []Property `yaml:"calendars"`
}

// Property holds one calendar's declared properties.
type Property struct {
	// Name is the catalog key, matching Identity.String().
	Name string `yaml:"name"`
	// EraRelevant is true where the era changes the meaning of a year number.
	EraRelevant bool `yaml:"era_relevant"`
	// SISecondsPerSecond is the ratio of the calendar second to the SI second.
	SISecondsPerSecond float64 `yaml:"si_seconds_per_second"`
}

// ParseCatalog parses YAML catalog data and applies defaults.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar catalog YAML: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Catalog) {
	if c.Version == "" {
		c.Version = "1"
	}

	for i := range c.Calendars {
		p := &c.Calendars[i]
		if p.SISecondsPerSecond == 0 {
			p.SISecondsPerSecond = 1.0
		}
	}
}

// catalog indexes the embedded properties by name.
var catalog map[string]Property

func init() {
	c, err := ParseCatalog(catalogYAML)
	if err != nil {
		panic("calendar: embedded catalog is malformed: " + err.Error())
	}

	catalog = make(map[string]Property, len(c.Calendars))
	for _, p := range c.Calendars {
		catalog[p.Name] = p
	}
}

// properties returns the catalog entry for id.
// An identity outside the catalog is a caller bug and panics.
func properties(id Identity) Property {
	p, ok := catalog[id.String()]
	if !ok {
		panic(fmt.Sprintf("calendar: no catalog entry for identity %q", id))
	}

	return p
}
