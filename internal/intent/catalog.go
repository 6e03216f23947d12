package intent

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Catalog is an ordered, read-only set of intents. Order decides ties.
type Catalog struct {
	defs []Definition
}

// NewCatalog validates defs and takes a private copy.
func NewCatalog(defs []Definition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no intents defined", ErrInvalidCatalog)
	}

	seen := make(map[string]bool, len(defs))
	copied := make([]Definition, 0, len(defs))
	for i, d := range defs {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: intent %d has no name", ErrInvalidCatalog, i)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate intent %q", ErrInvalidCatalog, name)
		}
		seen[name] = true

		exemplars := make([]string, 0, len(d.Exemplars))
		for _, e := range d.Exemplars {
			if e = strings.TrimSpace(e); e != "" {
				exemplars = append(exemplars, e)
			}
		}
		if len(exemplars) == 0 {
			return nil, fmt.Errorf("%w: intent %q has no exemplars", ErrInvalidCatalog, name)
		}

		copied = append(copied, Definition{
			Name:        name,
			Description: d.Description,
			Exemplars:   exemplars,
		})
	}

	return &Catalog{defs: copied}, nil
}

// ParseCatalog decodes a YAML document with a top-level "intents" list.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return NewCatalog(f.Intents)
}

// LoadCatalog reads a catalog file. An empty path yields DefaultCatalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read intent catalog: %w", err)
	}
	return ParseCatalog(data)
}

// Definitions returns a copy of the intents in catalog order.
func (c *Catalog) Definitions() []Definition {
	out := make([]Definition, len(c.defs))
	for i, d := range c.defs {
		out[i] = Definition{
			Name:        d.Name,
			Description: d.Description,
			Exemplars:   append([]string(nil), d.Exemplars...),
		}
	}
	return out
}

// Names returns intent names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.defs))
	for i, d := range c.defs {
		names[i] = d.Name
	}
	return names
}

func (c *Catalog) exemplarCount() int {
	n := 0
	for _, d := range c.defs {
		n += len(d.Exemplars)
	}
	return n
}
