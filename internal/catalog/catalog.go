// Package catalog loads and serves the immutable test definitions. The
// catalog is populated once at startup from embedded JSON files and is
// read-only afterward, so it is safe to share across concurrent requests
// without locking.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"math"
	"path"
	"sort"
	"strings"

	"github.com/Akhand0ps/SIH-tests/internal/i18n"
)

//go:embed data/*.json
var dataFS embed.FS

// Catalog holds one Definition per test id, keyed by lower-cased id.
type Catalog struct {
	defs map[string]*Definition
}

// Load builds a Catalog from the embedded question banks.
func Load() (*Catalog, error) {
	return LoadFS(dataFS, "data")
}

// LoadFS builds a Catalog from dir in fsys. Each *.json file becomes one
// definition whose id is the file name without extension.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", dir, err)
	}
	defs := make(map[string]*Definition, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		raw, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", name, err)
		}
		var d Definition
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("catalog: parse %s: %w", name, err)
		}
		d.ID = strings.ToLower(strings.TrimSuffix(name, ".json"))
		if d.Category == "" {
			d.Category = CategoryStandard
		}
		if err := check(&d); err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", d.ID, err)
		}
		defs[d.ID] = &d
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("catalog: no definitions in %s", dir)
	}
	return &Catalog{defs: defs}, nil
}

// check rejects definitions the scoring engine cannot operate on.
func check(d *Definition) error {
	switch d.Category {
	case CategoryStandard, CategoryCategorical, CategoryDimensional:
	default:
		return fmt.Errorf("unknown category %q", d.Category)
	}
	if len(d.Questions) == 0 {
		return fmt.Errorf("no questions")
	}
	if len(d.Options) == 0 {
		return fmt.Errorf("no options")
	}
	for i, q := range d.Questions {
		if q.ID != i+1 {
			return fmt.Errorf("question %d has id %d, want %d", i, q.ID, i+1)
		}
	}
	if d.Category == CategoryDimensional && len(d.Dimensions) == 0 {
		return fmt.Errorf("dimensional test has no dimensions")
	}
	if d.Category == CategoryCategorical {
		for _, q := range d.Questions {
			if !strings.Contains(q.Trait, "/") {
				return fmt.Errorf("question %d has no trait axis", q.ID)
			}
		}
	}
	return nil
}

// Get returns the definition for id. Lookup is case-insensitive.
func (c *Catalog) Get(id string) (*Definition, bool) {
	d, ok := c.defs[strings.ToLower(id)]
	return d, ok
}

// IDs returns all test ids, sorted.
func (c *Catalog) IDs() []string {
	out := make([]string, 0, len(c.defs))
	for id := range c.defs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Metadata is the per-language summary of one test, served by the
// tests-listing endpoint.
type Metadata struct {
	TestName         string `json:"testName"`
	TestType         string `json:"testType"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	TotalQuestions   int    `json:"totalQuestions"`
	HasReversedItems bool   `json:"hasReversedItems"`
	EstimatedMinutes int    `json:"estimatedTimeMinutes"`
	EstimatedTime    string `json:"estimatedTime"`
	Category         string `json:"category"`
}

// Metadata summarizes the test for lang. Estimated time assumes roughly
// thirty seconds per question.
func (c *Catalog) Metadata(id, lang string) (Metadata, bool) {
	d, ok := c.Get(id)
	if !ok {
		return Metadata{}, false
	}
	n := d.TotalQuestions()
	est := int(math.Ceil(float64(n) * 0.5))
	title := i18n.Resolve(d.Title, lang)
	if title == "" {
		title = d.TestType
	}
	return Metadata{
		TestName:         d.ID,
		TestType:         d.TestType,
		Title:            title,
		Description:      i18n.Resolve(d.Description, lang),
		TotalQuestions:   n,
		HasReversedItems: d.HasReversedItems(),
		EstimatedMinutes: est,
		EstimatedTime:    fmt.Sprintf("%d-%d minutes", est, est+2),
		Category:         "Mental Health",
	}, true
}
