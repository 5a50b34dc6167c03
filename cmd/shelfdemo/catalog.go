package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/shelf/pkg/shelf"
)

type catalogEntry struct {
	Label string `yaml:"label"`
	Sort  string `yaml:"sort,omitempty"`
	Icon  string `yaml:"icon,omitempty"`
}

type catalogGroup struct {
	Name  string         `yaml:"name"`
	Items []catalogEntry `yaml:"items"`
}

// catalog is the demo's item source: named groups shown in the menu, each
// bound to the main container when opened.
type catalog struct {
	Groups []catalogGroup `yaml:"groups"`
}

func loadCatalog(path string) (*catalog, error) {
	if path == "" {
		return defaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(c.Groups) == 0 {
		return nil, fmt.Errorf("catalog %s: no groups", path)
	}
	return &c, nil
}

func (c *catalog) names() []string {
	names := make([]string, len(c.Groups))
	for i, g := range c.Groups {
		names[i] = g.Name
	}
	return names
}

func (g catalogGroup) items() []shelf.Item {
	items := make([]shelf.Item, len(g.Items))
	for i, e := range g.Items {
		items[i] = &shelf.MenuItem{Text: e.Label, SortKey: e.Sort, IconFilename: e.Icon}
	}
	return items
}

func defaultCatalog() *catalog {
	nato := []string{
		"Alfa", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf",
		"Hotel", "India", "Juliett", "Kilo", "Lima", "Mike", "November",
		"Oscar", "Papa", "Quebec", "Romeo", "Sierra", "Tango", "Uniform",
		"Victor", "Whiskey", "X-ray", "Yankee", "Zulu",
	}
	planets := []string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune"}

	numbered := make([]catalogEntry, 250)
	for i := range numbered {
		numbered[i] = catalogEntry{Label: fmt.Sprintf("Item %03d", i+1)}
	}

	return &catalog{Groups: []catalogGroup{
		{Name: "Alphabet", Items: entries(nato)},
		{Name: "Planets", Items: entries(planets)},
		{Name: "Numbered", Items: numbered},
	}}
}

func entries(labels []string) []catalogEntry {
	out := make([]catalogEntry, len(labels))
	for i, l := range labels {
		out[i] = catalogEntry{Label: l}
	}
	return out
}
