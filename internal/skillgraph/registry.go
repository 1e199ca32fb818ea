package skillgraph

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed concepts.json
var defaultRegistry []byte

//go:embed registry_schema.json
var registrySchema []byte

// registryConcept is the JSON shape of one registry entry.
type registryConcept struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Phase          string    `json:"phase"`
	Prerequisites  []string  `json:"prerequisites"`
	Reinforces     *[]string `json:"reinforces,omitempty"`
	Skills         []string  `json:"skills"`
	EstimatedHours int       `json:"estimatedHours"`
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compiledRegistrySchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(registrySchema))
		if err != nil {
			schemaErr = fmt.Errorf("parse registry schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("registry_schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("add registry schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("registry_schema.json")
	})
	return compiledSchema, schemaErr
}

// ParseRegistry decodes a JSON concept registry, validating it against
// the registry schema first. It returns the parsed concepts; structural
// graph checks (cycles, dangling prerequisites) happen in New.
func ParseRegistry(data []byte) ([]Concept, error) {
	schema, err := compiledRegistrySchema()
	if err != nil {
		return nil, err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("registry is not valid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("registry schema validation failed: %w", err)
	}

	var raw []registryConcept
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode registry: %w", err)
	}

	concepts := make([]Concept, len(raw))
	for i, rc := range raw {
		c := Concept{
			ID:             rc.ID,
			Title:          rc.Title,
			Phase:          Phase(rc.Phase),
			Prerequisites:  rc.Prerequisites,
			Skills:         rc.Skills,
			EstimatedHours: rc.EstimatedHours,
		}
		// A missing reinforces key means "use prerequisites"; an empty
		// array means "reinforce nothing". The distinction matters, so
		// nil is preserved only when the key is absent.
		if rc.Reinforces != nil {
			c.Reinforces = *rc.Reinforces
		}
		concepts[i] = c
	}
	return concepts, nil
}

// Load reads and parses a registry, then builds its graph.
func Load(r io.Reader) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	concepts, err := ParseRegistry(data)
	if err != nil {
		return nil, err
	}
	return New(concepts)
}

// LoadFile builds a graph from a registry file on disk.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default builds the embedded frontend-developer curriculum graph.
// The embedded registry is validated at build, so an error here means
// the binary itself is broken.
func Default() (*Graph, error) {
	concepts, err := ParseRegistry(defaultRegistry)
	if err != nil {
		return nil, fmt.Errorf("embedded registry: %w", err)
	}
	return New(concepts)
}
