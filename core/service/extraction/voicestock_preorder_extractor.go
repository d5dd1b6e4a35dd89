package extraction

import (
	"context"
	"strings"

	"voicestock_server/core/domain"
	"voicestock_server/core/port/out"
	"voicestock_server/pkg/apperr"
)

// PreorderExtractor extracts a future order. It never consults the
// vocabulary: item names are recorded as stated since a preorder may
// reference products not yet in inventory.
type PreorderExtractor struct {
	nlu out.NLUClient
}

func NewPreorderExtractor(nlu out.NLUClient) *PreorderExtractor {
	return &PreorderExtractor{nlu: nlu}
}

func (e *PreorderExtractor) Extract(ctx context.Context, text string) (*domain.PreorderRecord, error) {
	payload, err := e.nlu.ExtractPreorder(ctx, text)
	if err != nil {
		return nil, asExtractionError(err)
	}

	clientName := strings.TrimSpace(payload.ClientName)
	if clientName == "" {
		return nil, apperr.EmptyResult("preorder")
	}

	rec := &domain.PreorderRecord{
		ClientName: clientName,
		Notes:      payload.Notes,
	}
	for _, item := range payload.Items {
		// Non-positive quantities are no-op mentions, same as supply
		if item.Quantity <= 0 {
			continue
		}
		if strings.TrimSpace(item.ItemName) == "" {
			return nil, apperr.SchemaViolation("preorder", nil).
				WithDetail("reason", "item with empty name")
		}
		rec.Items = append(rec.Items, domain.PreorderItem{
			Name:        item.ItemName,
			Quantity:    item.Quantity,
			Description: item.Description,
		})
	}

	if len(rec.Items) == 0 {
		return nil, apperr.EmptyResult("preorder")
	}
	return rec, nil
}
