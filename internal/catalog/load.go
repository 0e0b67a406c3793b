package catalog

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a full catalog from a YAML file, replacing the built-in
// master data. The loaded catalog is validated before use.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	if len(c.Tiers) == 0 {
		c.Tiers = masterTiers
	}
	c.buildIndex()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
