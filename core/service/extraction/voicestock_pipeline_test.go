package extraction

import (
	"context"
	"testing"
	"time"

	"voicestock_server/core/domain"
	"voicestock_server/core/port/out"
	"voicestock_server/core/service/classification"
	"voicestock_server/core/service/matching"
	"voicestock_server/pkg/apperr"
)

func newTestPipeline(nlu *stubNLU) *Pipeline {
	matcher := matching.NewMatcher()
	return NewPipeline(
		classification.NewIntentClassifier(nlu),
		NewSupplyExtractor(nlu, matcher),
		NewSaleExtractor(nlu, matcher),
		NewPreorderExtractor(nlu),
		NewClientEditExtractor(nlu),
	)
}

func testUtterance(text string) domain.Utterance {
	return domain.Utterance{
		Text:        text,
		CurrentDate: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		Vocabulary:  testVocab(),
	}
}

func TestPipelineQueryShortCircuits(t *testing.T) {
	nlu := &stubNLU{label: "query"}
	pipeline := newTestPipeline(nlu)

	result, err := pipeline.Process(context.Background(), testUtterance("сколько осталось трусов сетка?"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Intent != domain.IntentQuery {
		t.Errorf("expected query intent, got %s", result.Intent)
	}
	if nlu.extractCalls != 0 {
		t.Errorf("expected no extraction calls, got %d", nlu.extractCalls)
	}
	if result.Supply != nil || result.Sale != nil || result.Preorder != nil || result.ClientEdit != nil {
		t.Errorf("expected no record on a query, got %+v", result)
	}
}

func TestPipelineRoutesByIntent(t *testing.T) {
	tests := []struct {
		label  string
		intent domain.Intent
		check  func(t *testing.T, r *domain.ExtractionResult)
	}{
		{
			label:  "sale",
			intent: domain.IntentSale,
			check: func(t *testing.T, r *domain.ExtractionResult) {
				if r.Sale == nil {
					t.Error("expected sale record")
				}
			},
		},
		{
			label:  "preorder",
			intent: domain.IntentPreorder,
			check: func(t *testing.T, r *domain.ExtractionResult) {
				if r.Preorder == nil {
					t.Error("expected preorder record")
				}
			},
		},
		{
			label:  "client_edit",
			intent: domain.IntentClientEdit,
			check: func(t *testing.T, r *domain.ExtractionResult) {
				if r.ClientEdit == nil {
					t.Error("expected client edit record")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			nlu := &stubNLU{
				label: tt.label,
				sale: &out.SalePayload{
					Client: out.ClientPayload{Name: "Анна"},
					Items:  []out.SaleItemPayload{{ItemName: "Черные Трусы Сетка", Size: "M", Quantity: 1, Price: 25}},
				},
				preorder: &out.PreorderPayload{
					ClientName: "Мария",
					Items:      []out.PreorderItemPayload{{ItemName: "Купальник", Quantity: 2}},
				},
				clientEdit: &out.ClientEditPayload{ClientName: "Светлана", Notes: "заметка"},
			}
			pipeline := newTestPipeline(nlu)

			result, err := pipeline.Process(context.Background(), testUtterance("фраза"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Intent != tt.intent {
				t.Fatalf("expected intent %s, got %s", tt.intent, result.Intent)
			}
			if nlu.extractCalls != 1 {
				t.Errorf("expected exactly one extraction call, got %d", nlu.extractCalls)
			}
			tt.check(t, result)
		})
	}
}

func TestPipelineClassificationFailureFallsBackToSupply(t *testing.T) {
	tests := []struct {
		name string
		nlu  *stubNLU
	}{
		{name: "classifier error", nlu: &stubNLU{labelErr: apperr.ServiceError("nlu", nil)}},
		{name: "garbage label", nlu: &stubNLU{label: "поставка товара"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.nlu.supply = &out.SupplyPayload{
				Items: []out.SupplyItemPayload{{Name: "Черные Трусы Сетка", Size: "M", Quantity: 5}},
			}
			pipeline := newTestPipeline(tt.nlu)

			result, err := pipeline.Process(context.Background(), testUtterance("пришли черные трусы сетка"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Intent != domain.IntentSupply {
				t.Errorf("expected supply fallback, got %s", result.Intent)
			}
			if result.Supply == nil {
				t.Error("expected supply record from fallback extraction")
			}
		})
	}
}

func TestPipelineExtractionFailureIsFinal(t *testing.T) {
	nlu := &stubNLU{label: "supply", supplyErr: apperr.ServiceError("nlu", nil)}
	pipeline := newTestPipeline(nlu)

	result, err := pipeline.Process(context.Background(), testUtterance("пришла поставка"))
	if !apperr.HasCode(err, apperr.CodeServiceError) {
		t.Fatalf("expected SERVICE_ERROR, got %v", err)
	}
	if result != nil {
		t.Errorf("expected nil result on failure, got %+v", result)
	}
	// no retries, no fallback to another intent
	if nlu.extractCalls != 1 {
		t.Errorf("expected exactly one extraction attempt, got %d", nlu.extractCalls)
	}
}

func TestPipelineRepeatRunsProduceEqualRecords(t *testing.T) {
	nlu := &stubNLU{label: "supply", supply: &out.SupplyPayload{
		Items: []out.SupplyItemPayload{{Name: "Черные Трусы Сетка", Size: "M", Quantity: 5, Price: 25}},
	}}
	pipeline := newTestPipeline(nlu)
	utt := testUtterance("пришла поставка")

	first, err := pipeline.Process(context.Background(), utt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := pipeline.Process(context.Background(), utt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID == second.ID {
		t.Error("expected distinct invocation IDs")
	}
	if len(first.Supply.Items) != len(second.Supply.Items) {
		t.Fatal("expected structurally equal records")
	}
	if first.Supply.Items[0] != second.Supply.Items[0] {
		t.Errorf("expected equal items, got %+v vs %+v", first.Supply.Items[0], second.Supply.Items[0])
	}
}
