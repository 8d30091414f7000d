package project

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

const (
	// File permissions
	projectFilePermissions = 0644 // rw-r--r--

	// Sentinel link target meaning "no real file dependency"
	LinkDefault = "default"
)

// Categories is the fixed set of resource tables a project may carry.
var Categories = []string{
	"meshes",
	"textures",
	"materials",
	"images",
	"animations",
	"skins",
}

// Project is an adapter over a scene-project document. The document is kept
// as decoded JSON (maps and slices) and mutated in place; nothing outside
// this package touches the raw shape.
type Project struct {
	path string
	doc  map[string]any
}

// Load reads and parses a project file
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("project file '%s' not found", path)
		}
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse project file: %w", err)
	}

	return &Project{path: path, doc: doc}, nil
}

// New wraps an already-decoded document (used by tests and tooling)
func New(doc map[string]any) *Project {
	if doc == nil {
		doc = make(map[string]any)
	}
	return &Project{doc: doc}
}

// Path returns the file path the project was loaded from (empty for New)
func (p *Project) Path() string {
	return p.path
}

// Save writes the document back to the file it was loaded from
func (p *Project) Save() error {
	if p.path == "" {
		return fmt.Errorf("project has no backing file")
	}

	data, err := json.MarshalIndent(p.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(p.path, data, projectFilePermissions); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}

	return nil
}

// ============================================================================
// Resource Tables
// ============================================================================

// Table is one resource category table (key -> resource record)
type Table struct {
	m map[string]any
}

// Table returns the named category table. A missing or malformed table reads
// as empty; writes to it are lost, which is fine because there is nothing to
// delete from it either.
func (p *Project) Table(category string) Table {
	resources, ok := p.doc["resources"].(map[string]any)
	if !ok {
		return Table{}
	}
	m, _ := resources[category].(map[string]any)
	return Table{m: m}
}

// Len returns the number of resources in the table
func (t Table) Len() int {
	return len(t.m)
}

// Keys enumerates resource keys in sorted order
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t.m))
	for k := range t.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LinkFile returns the resource's link.file value. Records without a link
// section, or with one that is not shaped as expected, report false.
func (t Table) LinkFile(key string) (string, bool) {
	record, ok := t.m[key].(map[string]any)
	if !ok {
		return "", false
	}
	link, ok := record["link"].(map[string]any)
	if !ok {
		return "", false
	}
	file, ok := link["file"].(string)
	return file, ok
}

// Delete removes a resource from the table
func (t Table) Delete(key string) {
	delete(t.m, key)
}

// ============================================================================
// Objects
// ============================================================================

// ObjectKeys enumerates object keys in sorted order
func (p *Project) ObjectKeys() []string {
	objects, ok := p.doc["objects"].(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(objects))
	for k := range objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Object returns the named scene object
func (p *Project) Object(key string) (Object, bool) {
	objects, ok := p.doc["objects"].(map[string]any)
	if !ok {
		return Object{}, false
	}
	m, ok := objects[key].(map[string]any)
	if !ok {
		return Object{}, false
	}
	return Object{m: m}, true
}
