package mapgenconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML-encoded Params preset from path.
func Load(path string) (Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("mapgenconfig: read %s: %w", path, err)
	}
	var p Params
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Params{}, fmt.Errorf("mapgenconfig: parse %s: %w", path, err)
	}
	return p, nil
}

// Save writes p to path as YAML, overwriting any existing file.
func Save(path string, p Params) error {
	raw, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("mapgenconfig: marshal: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("mapgenconfig: write %s: %w", path, err)
	}
	return nil
}
