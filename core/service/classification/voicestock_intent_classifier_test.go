package classification

import (
	"context"
	"errors"
	"testing"
	"time"

	"voicestock_server/core/domain"
	"voicestock_server/core/port/out"
)

type fakeNLU struct {
	label string
	err   error
}

func (f *fakeNLU) ClassifyIntent(ctx context.Context, text string) (string, error) {
	return f.label, f.err
}

func (f *fakeNLU) ExtractSupply(ctx context.Context, text string, products []string) (*out.SupplyPayload, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeNLU) ExtractSale(ctx context.Context, text string, currentDate time.Time, products []string) (*out.SalePayload, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeNLU) ExtractPreorder(ctx context.Context, text string) (*out.PreorderPayload, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeNLU) ExtractClientEdit(ctx context.Context, text string) (*out.ClientEditPayload, error) {
	return nil, errors.New("not implemented")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		err      error
		expected domain.Intent
	}{
		{name: "supply label", label: "supply", expected: domain.IntentSupply},
		{name: "sale label", label: "sale", expected: domain.IntentSale},
		{name: "preorder label", label: "preorder", expected: domain.IntentPreorder},
		{name: "client edit label", label: "client_edit", expected: domain.IntentClientEdit},
		{name: "query label", label: "query", expected: domain.IntentQuery},
		{name: "uppercase label", label: "SALE", expected: domain.IntentSale},
		{name: "padded label", label: "  sale\n", expected: domain.IntentSale},
		{name: "unknown label falls back to supply", label: "restock", expected: domain.IntentSupply},
		{name: "empty label falls back to supply", label: "", expected: domain.IntentSupply},
		{name: "sentence instead of label falls back to supply", label: "это поставка товара", expected: domain.IntentSupply},
		{name: "service error falls back to supply", err: errors.New("timeout"), expected: domain.IntentSupply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := NewIntentClassifier(&fakeNLU{label: tt.label, err: tt.err})
			got := classifier.Classify(context.Background(), "произвольная фраза")
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
