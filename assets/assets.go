// Package assets embeds the bundled scenario layouts.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed scenarios/*.json
var Scenarios embed.FS

// Scenario returns the raw JSON of a bundled scenario by name, with or
// without the .json suffix.
func Scenario(name string) ([]byte, error) {
	name = strings.TrimSuffix(name, ".json")
	data, err := Scenarios.ReadFile(path.Join("scenarios", name+".json"))
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", name, err)
	}
	return data, nil
}

// ScenarioNames lists the bundled scenarios.
func ScenarioNames() ([]string, error) {
	entries, err := fs.ReadDir(Scenarios, "scenarios")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names, nil
}
