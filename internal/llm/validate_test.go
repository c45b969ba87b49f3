package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-insight",
		Description: "test schema",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"headline": map[string]any{"type": "string"},
				"score":    map[string]any{"type": "integer"},
			},
			"required":             []any{"headline", "score"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"headline":"Strong momentum","score":83}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{"headline":`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{"headline":"x"}`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_ExtraFieldRejected(t *testing.T) {
	err := validateResponse(testSchema(), json.RawMessage(`{"headline":"x","score":1,"extra":true}`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	s := testSchema()
	raw := json.RawMessage(`{"headline":"x","score":1}`)
	if err := validateResponse(s, raw); err != nil {
		t.Fatal(err)
	}
	if _, ok := schemaCache.Load(s.Name); !ok {
		t.Fatal("compiled schema was not cached")
	}
	if err := validateResponse(s, raw); err != nil {
		t.Fatal(err)
	}
}
