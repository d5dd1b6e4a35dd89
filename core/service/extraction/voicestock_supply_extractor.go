// Package extraction turns classified utterances into validated records.
package extraction

import (
	"context"
	"strings"

	"voicestock_server/core/domain"
	"voicestock_server/core/port/out"
	"voicestock_server/core/service/matching"
	"voicestock_server/pkg/apperr"
)

// SupplyExtractor extracts restock line items. Zero-quantity mentions are
// no-op mentions, not parse errors; they are dropped before validation.
// Both prices are optional and default to 0.
type SupplyExtractor struct {
	nlu     out.NLUClient
	matcher *matching.Matcher
}

func NewSupplyExtractor(nlu out.NLUClient, matcher *matching.Matcher) *SupplyExtractor {
	return &SupplyExtractor{nlu: nlu, matcher: matcher}
}

func (e *SupplyExtractor) Extract(ctx context.Context, text string, vocab domain.ProductVocabulary) (*domain.SupplyRecord, error) {
	payload, err := e.nlu.ExtractSupply(ctx, text, vocab.Names())
	if err != nil {
		return nil, asExtractionError(err)
	}

	rec := &domain.SupplyRecord{}
	for _, item := range payload.Items {
		if item.Quantity <= 0 {
			continue
		}
		if strings.TrimSpace(item.Name) == "" {
			return nil, apperr.SchemaViolation("supply", nil).
				WithDetail("reason", "item with empty name")
		}
		if item.Price < 0 || item.PurchasePrice < 0 {
			return nil, apperr.SchemaViolation("supply", nil).
				WithDetail("reason", "negative price").
				WithDetail("item", item.Name)
		}
		rec.Items = append(rec.Items, domain.SupplyItem{
			Product:       e.matcher.Match(item.Name, vocab),
			Size:          item.Size,
			Quantity:      item.Quantity,
			SalePrice:     item.Price,
			PurchasePrice: item.PurchasePrice,
		})
	}

	if len(rec.Items) == 0 {
		return nil, apperr.EmptyResult("supply")
	}
	return rec, nil
}

// asExtractionError keeps typed failures from the collaborator and wraps
// anything else as a service error, so no raw fault escapes an extractor.
func asExtractionError(err error) error {
	if apperr.IsAppError(err) {
		return err
	}
	return apperr.ServiceError("nlu", err)
}
