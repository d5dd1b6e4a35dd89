package extraction

import (
	"context"
	"strings"

	"voicestock_server/core/domain"
	"voicestock_server/core/port/out"
	"voicestock_server/pkg/apperr"
)

// ClientEditExtractor extracts a pure-notes update for a client profile.
// Simplest extractor: client name plus one consolidated notes string.
type ClientEditExtractor struct {
	nlu out.NLUClient
}

func NewClientEditExtractor(nlu out.NLUClient) *ClientEditExtractor {
	return &ClientEditExtractor{nlu: nlu}
}

func (e *ClientEditExtractor) Extract(ctx context.Context, text string) (*domain.ClientEditRecord, error) {
	payload, err := e.nlu.ExtractClientEdit(ctx, text)
	if err != nil {
		return nil, asExtractionError(err)
	}

	clientName := strings.TrimSpace(payload.ClientName)
	if clientName == "" {
		return nil, apperr.MissingField("client name")
	}

	return &domain.ClientEditRecord{
		ClientName: clientName,
		Notes:      strings.TrimSpace(payload.Notes),
	}, nil
}
