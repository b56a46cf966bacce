// Package configio is the config-loader boundary: it validates an
// incoming JSON document against an embedded schema and decodes it into a
// terrain.GenerateConfig, surfacing a ConfigError before the pipeline
// ever allocates a heightfield.
package configio

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/oakfen-labs/terraweave/internal/terrain"
)

const schemaURL = "https://terraweave.internal/schemas/generate-config.json"

const schemaDoc = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "` + schemaURL + `",
  "type": "object",
  "required": ["rows", "cols", "tileSize", "overlap"],
  "properties": {
    "rows":       {"type": "integer", "minimum": 1},
    "cols":       {"type": "integer", "minimum": 1},
    "tileSize":   {"type": "integer", "minimum": 1},
    "overlap":    {"type": "integer", "minimum": 1},
    "baseSize":   {"type": "integer", "minimum": 1},
    "steps":      {"type": "integer", "minimum": 0},
    "worldScale": {"type": "number", "exclusiveMinimum": 0},
    "seed":       {"type": "integer"},
    "blendSeams": {"type": "boolean"},
    "seaLevelMeters":    {"type": "number"},
    "erosionYears":      {"type": "number", "minimum": 0},
    "windStrength":      {"type": "number", "minimum": 0},
    "rainIntensity":     {"type": "number", "minimum": 0},
    "temperatureCycles": {"type": "number", "minimum": 0}
  }
}`

var compiledSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader([]byte(schemaDoc))); err != nil {
		panic(fmt.Sprintf("configio: invalid embedded schema: %v", err))
	}
	sch, err := compiler.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("configio: schema compile failed: %v", err))
	}
	compiledSchema = sch
}

// ValidateConfigJSON reports a *terrain.ConfigError if doc doesn't satisfy
// the GenerateConfig schema; it does not check the cross-field invariants
// (e.g. 2*overlap < tileSize) that terrain.Generate itself enforces.
func ValidateConfigJSON(doc []byte) error {
	var v interface{}
	if err := json.Unmarshal(doc, &v); err != nil {
		return terrain.NewConfigError(fmt.Sprintf("invalid JSON: %v", err))
	}
	if err := compiledSchema.Validate(v); err != nil {
		return terrain.NewConfigError(fmt.Sprintf("schema validation failed: %v", err))
	}
	return nil
}

// LoadConfigJSON validates then decodes doc into a GenerateConfig.
func LoadConfigJSON(doc []byte) (terrain.GenerateConfig, error) {
	if err := ValidateConfigJSON(doc); err != nil {
		return terrain.GenerateConfig{}, err
	}
	var cfg terrain.GenerateConfig
	if err := json.Unmarshal(doc, &cfg); err != nil {
		return terrain.GenerateConfig{}, terrain.NewConfigError(fmt.Sprintf("decode: %v", err))
	}
	return cfg, nil
}
