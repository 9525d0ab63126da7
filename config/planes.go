package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/planes.yaml
var defaultPlanesYAML []byte

// PlaneConfig describes the sprite strip bound to a plane
type PlaneConfig struct {
	Sprite string   `yaml:"sprite"`
	Frames int      `yaml:"frames"`
	FPS    float64  `yaml:"fps"`
	Color  [4]uint8 `yaml:"color"` // placeholder tint when the sprite file is missing
}

// RGBA returns the placeholder tint.
func (p PlaneConfig) RGBA() color.RGBA {
	return color.RGBA{R: p.Color[0], G: p.Color[1], B: p.Color[2], A: p.Color[3]}
}

// PlaneTable maps plane names to sprite strips
type PlaneTable struct {
	Families   map[string]PlaneConfig `yaml:"families"`
	Prefixes   []string               `yaml:"prefixes"`
	Exact      []string               `yaml:"exact"`
	Special    map[string]PlaneConfig `yaml:"special"`
	Characters map[string]PlaneConfig `yaml:"characters"`
	Bones      PlaneConfig            `yaml:"bones"`
	Bird       PlaneConfig            `yaml:"bird"`
}

// Planes is the active plane table, loaded from the embedded defaults at init.
var Planes *PlaneTable

func init() {
	t, err := ParsePlanes(defaultPlanesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded planes.yaml: %v", err))
	}
	Planes = t
}

// ParsePlanes decodes and validates a plane table.
func ParsePlanes(data []byte) (*PlaneTable, error) {
	var t PlaneTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse plane table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadPlanes reads a plane table from disk.
func LoadPlanes(path string) (*PlaneTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plane table: %w", err)
	}
	return ParsePlanes(data)
}

// Validate checks frame counts and rates and that every prefix or exact
// family has an entry.
func (t *PlaneTable) Validate() error {
	check := func(name string, p PlaneConfig) error {
		if p.Frames < 1 {
			return fmt.Errorf("plane %q: frames must be >= 1, got %d", name, p.Frames)
		}
		if p.FPS < 0 {
			return fmt.Errorf("plane %q: fps must be >= 0, got %v", name, p.FPS)
		}
		return nil
	}

	for name, p := range t.Families {
		if err := check(name, p); err != nil {
			return err
		}
	}
	for name, p := range t.Special {
		if err := check(name, p); err != nil {
			return err
		}
	}
	for name, p := range t.Characters {
		if err := check(name, p); err != nil {
			return err
		}
	}
	if err := check("bones", t.Bones); err != nil {
		return err
	}
	if err := check("bird", t.Bird); err != nil {
		return err
	}

	for _, key := range append(append([]string{}, t.Prefixes...), t.Exact...) {
		if _, ok := t.Families[key]; !ok {
			return fmt.Errorf("family %q has no entry", key)
		}
	}
	return nil
}

// Match resolves a scenery plane name to its strip. Special names win, then
// name prefixes, then exact family names. The returned key is the special
// name or family that matched.
func (t *PlaneTable) Match(name string) (PlaneConfig, string, bool) {
	name = strings.ToLower(name)

	if p, ok := t.Special[name]; ok {
		return p, name, true
	}

	key := ""
	for _, prefix := range t.Prefixes {
		if strings.HasPrefix(name, prefix) {
			key = prefix
		}
	}
	for _, exact := range t.Exact {
		if name == exact {
			key = exact
		}
	}
	if key == "" {
		return PlaneConfig{}, "", false
	}

	p, ok := t.Families[key]
	return p, key, ok
}
