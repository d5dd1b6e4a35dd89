package llm

import (
	"strings"
	"testing"

	"voicestock_server/core/port/out"
	"voicestock_server/pkg/apperr"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain json", input: `{"items": []}`, expected: `{"items": []}`},
		{name: "json fence", input: "```json\n{\"items\": []}\n```", expected: `{"items": []}`},
		{name: "bare fence", input: "```\n{\"items\": []}\n```", expected: `{"items": []}`},
		{name: "surrounding whitespace", input: "  {\"a\": 1}\n", expected: `{"a": 1}`},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSONResponse(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDecodeStrict(t *testing.T) {
	var payload out.SupplyPayload

	err := decodeStrict(`{"items":[{"name":"Топ","size":"M","quantity":2,"price":25,"purchase_price":10}]}`, "supply", &payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payload.Items) != 1 || payload.Items[0].Name != "Топ" {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	err = decodeStrict(`{"items":[],"total":5}`, "supply", &out.SupplyPayload{})
	if !apperr.HasCode(err, apperr.CodeSchemaViolation) {
		t.Fatalf("expected SCHEMA_VIOLATION for unknown field, got %v", err)
	}

	err = decodeStrict(`not json`, "supply", &out.SupplyPayload{})
	if !apperr.HasCode(err, apperr.CodeSchemaViolation) {
		t.Fatalf("expected SCHEMA_VIOLATION for malformed input, got %v", err)
	}
}

func TestProductsContext(t *testing.T) {
	if got := productsContext(nil); got != "No existing products" {
		t.Errorf("expected empty-vocabulary marker, got %q", got)
	}

	got := productsContext([]string{"Черные Трусы Сетка", "Бежевые Топ Сетка"})
	if got != "- Черные Трусы Сетка\n- Бежевые Топ Сетка" {
		t.Errorf("unexpected rendering: %q", got)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("test-key")
	if c.model != DefaultModel {
		t.Errorf("expected default model %q, got %q", DefaultModel, c.model)
	}
	if c.cb == nil {
		t.Error("expected circuit breaker to be configured")
	}
}

func TestPromptsEmbedMatchingRules(t *testing.T) {
	// supply and sale share the matching policy; preorder and client edit
	// intentionally do not match against inventory
	if !strings.Contains(supplyPromptFormat, "%s") {
		t.Error("expected supply prompt to take the product list")
	}
	if !strings.Contains(matchingRules, "высокая талия") {
		t.Error("expected feature examples in the matching rules")
	}
}
