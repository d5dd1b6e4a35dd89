package extraction

import (
	"context"
	"strings"
	"time"

	"voicestock_server/core/domain"
	"voicestock_server/core/port/out"
	"voicestock_server/core/service/matching"
	"voicestock_server/pkg/apperr"
)

// handleLabels are label prefixes to strip from extracted social handles.
var handleLabels = []string{
	"пользователь instagram:",
	"пользователь telegram:",
	"instagram:",
	"telegram:",
	"инстаграм:",
	"телеграм:",
}

// SaleExtractor extracts a completed customer transaction. Price is
// mandatory for every sold item, asymmetric with supply where it defaults
// to 0; a single stated price is broadcast to items lacking their own.
type SaleExtractor struct {
	nlu     out.NLUClient
	matcher *matching.Matcher
}

func NewSaleExtractor(nlu out.NLUClient, matcher *matching.Matcher) *SaleExtractor {
	return &SaleExtractor{nlu: nlu, matcher: matcher}
}

func (e *SaleExtractor) Extract(ctx context.Context, text string, currentDate time.Time, vocab domain.ProductVocabulary) (*domain.SaleRecord, error) {
	payload, err := e.nlu.ExtractSale(ctx, text, currentDate, vocab.Names())
	if err != nil {
		return nil, asExtractionError(err)
	}

	clientName := strings.TrimSpace(payload.Client.Name)
	if clientName == "" {
		return nil, apperr.MissingField("client name")
	}

	items := make([]out.SaleItemPayload, len(payload.Items))
	copy(items, payload.Items)
	broadcastPrice(items)

	rec := &domain.SaleRecord{
		Client: domain.ClientInfo{
			Name:      clientName,
			Instagram: stripHandleLabel(payload.Client.Instagram),
			Telegram:  stripHandleLabel(payload.Client.Telegram),
			Notes:     payload.Client.Notes,
		},
	}

	for _, item := range items {
		if strings.TrimSpace(item.ItemName) == "" {
			return nil, apperr.SchemaViolation("sale", nil).
				WithDetail("reason", "item with empty name")
		}
		if item.Quantity <= 0 {
			return nil, apperr.SchemaViolation("sale", nil).
				WithDetail("reason", "non-positive quantity").
				WithDetail("item", item.ItemName)
		}
		if item.Price <= 0 {
			return nil, apperr.MissingPrice(item.ItemName)
		}
		rec.Items = append(rec.Items, domain.SaleItem{
			Product:  e.matcher.Match(item.ItemName, vocab),
			Size:     item.Size,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	if payload.Reminder != nil {
		rec.Reminder = &domain.ReminderInfo{
			DaysFromNow: payload.Reminder.DaysFromNow,
			Text:        payload.Reminder.Text,
			DueAt:       currentDate.AddDate(0, 0, payload.Reminder.DaysFromNow),
		}
	}

	return rec, nil
}

// broadcastPrice fills items lacking a price when exactly one distinct
// positive price was stated for the transaction. Items that still have no
// price afterwards fail validation.
func broadcastPrice(items []out.SaleItemPayload) {
	var stated float64
	distinct := 0
	for _, item := range items {
		if item.Price > 0 && item.Price != stated {
			stated = item.Price
			distinct++
		}
	}
	if distinct != 1 {
		return
	}
	for i := range items {
		if items[i].Price <= 0 {
			items[i].Price = stated
		}
	}
}

// stripHandleLabel removes a leading label like "Пользователь Instagram:"
// from an extracted handle, keeping just the username.
func stripHandleLabel(handle *string) *string {
	if handle == nil {
		return nil
	}
	h := strings.TrimSpace(*handle)
	lower := strings.ToLower(h)
	for _, label := range handleLabels {
		if strings.HasPrefix(lower, label) {
			h = strings.TrimSpace(h[len(label):])
			break
		}
	}
	if h == "" {
		return nil
	}
	return &h
}
