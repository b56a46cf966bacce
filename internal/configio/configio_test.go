package configio

import (
	"testing"

	"github.com/oakfen-labs/terraweave/internal/terrain"
)

func TestValidateConfigJSONAcceptsMinimalDocument(t *testing.T) {
	doc := []byte(`{"rows":2,"cols":2,"tileSize":256,"overlap":16}`)
	if err := ValidateConfigJSON(doc); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateConfigJSONRejectsMissingRequired(t *testing.T) {
	doc := []byte(`{"cols":2,"tileSize":256,"overlap":16}`)
	err := ValidateConfigJSON(doc)
	if err == nil {
		t.Fatalf("expected a validation error for a missing required field")
	}
	if _, ok := err.(*terrain.ConfigError); !ok {
		t.Fatalf("error should be a *terrain.ConfigError, got %T", err)
	}
}

func TestValidateConfigJSONRejectsMalformedJSON(t *testing.T) {
	err := ValidateConfigJSON([]byte(`{not json`))
	if err == nil {
		t.Fatalf("expected an error for malformed JSON")
	}
}

func TestValidateConfigJSONRejectsNegativeOverlap(t *testing.T) {
	doc := []byte(`{"rows":2,"cols":2,"tileSize":256,"overlap":-1}`)
	if err := ValidateConfigJSON(doc); err == nil {
		t.Fatalf("expected a schema error for negative overlap")
	}
}

func TestLoadConfigJSONRoundTrip(t *testing.T) {
	doc := []byte(`{"rows":3,"cols":2,"tileSize":256,"overlap":16,"seed":7}`)
	cfg, err := LoadConfigJSON(doc)
	if err != nil {
		t.Fatalf("LoadConfigJSON error: %v", err)
	}
	if cfg.Rows != 3 || cfg.Cols != 2 || cfg.TileSize != 256 || cfg.Overlap != 16 || cfg.Seed != 7 {
		t.Fatalf("decoded config mismatch: %+v", cfg)
	}
}

func TestLoadConfigJSONPropagatesSchemaFailure(t *testing.T) {
	_, err := LoadConfigJSON([]byte(`{"rows":0,"cols":2,"tileSize":256,"overlap":16}`))
	if err == nil {
		t.Fatalf("expected a schema error for rows below the minimum")
	}
}
