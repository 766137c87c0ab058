package preset

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/gradientctl/internal/gradient"
	"gopkg.in/yaml.v3"
)

// Load reads extra presets from a YAML file. A missing file yields no
// presets.
func Load(path string) ([]gradient.Preset, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading presets: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML preset list, normalizing colors and assigning
// sequential stop ids per preset.
func Parse(data []byte) ([]gradient.Preset, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var presets []gradient.Preset
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("parsing presets YAML: %w", err)
	}
	for i := range presets {
		p := &presets[i]
		if err := Validate(*p); err != nil {
			return nil, err
		}
		for j := range p.Stops {
			p.Stops[j].ID = int64(j + 1)
			p.Stops[j].Color, _ = gradient.ParseColor(p.Stops[j].Color)
		}
	}
	return presets, nil
}

// Marshal encodes presets as YAML.
func Marshal(presets []gradient.Preset) ([]byte, error) {
	data, err := yaml.Marshal(presets)
	if err != nil {
		return nil, fmt.Errorf("encoding presets: %w", err)
	}
	return data, nil
}

// LoadLibrary returns the built-in presets extended with those in path.
func LoadLibrary(path string) (*Library, error) {
	extra, err := Load(path)
	if err != nil {
		return nil, err
	}
	lib := Builtin()
	if len(extra) == 0 {
		return lib, nil
	}
	lib, err = lib.Extend(extra)
	if err != nil {
		return nil, fmt.Errorf("loading presets from %s: %w", path, err)
	}
	return lib, nil
}
