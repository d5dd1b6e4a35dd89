package extraction

import (
	"context"

	"github.com/google/uuid"

	"voicestock_server/core/domain"
	"voicestock_server/core/service/classification"
	"voicestock_server/pkg/logger"
)

// Pipeline orchestrates classify → extract → validate for one utterance.
// It is stateless between invocations; concurrent invocations are fully
// independent. A failed extraction is final for the invocation: the
// pipeline never retries with a modified prompt or falls back to another
// intent.
type Pipeline struct {
	classifier *classification.IntentClassifier
	supply     *SupplyExtractor
	sale       *SaleExtractor
	preorder   *PreorderExtractor
	clientEdit *ClientEditExtractor
}

func NewPipeline(
	classifier *classification.IntentClassifier,
	supply *SupplyExtractor,
	sale *SaleExtractor,
	preorder *PreorderExtractor,
	clientEdit *ClientEditExtractor,
) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		supply:     supply,
		sale:       sale,
		preorder:   preorder,
		clientEdit: clientEdit,
	}
}

// Process runs one utterance through the pipeline: one classification
// call, then at most one extraction call. Queries short-circuit with no
// extraction; their downstream handling belongs to the caller.
func (p *Pipeline) Process(ctx context.Context, utt domain.Utterance) (*domain.ExtractionResult, error) {
	result := &domain.ExtractionResult{ID: uuid.New()}
	result.Intent = p.classifier.Classify(ctx, utt.Text)

	log := logger.WithFields(map[string]any{
		"invocation": result.ID.String(),
		"intent":     result.Intent.String(),
	})

	var err error
	switch result.Intent {
	case domain.IntentQuery:
		// no extraction; the query itself is the payload
	case domain.IntentSupply:
		result.Supply, err = p.supply.Extract(ctx, utt.Text, utt.Vocabulary)
	case domain.IntentSale:
		result.Sale, err = p.sale.Extract(ctx, utt.Text, utt.CurrentDate, utt.Vocabulary)
	case domain.IntentPreorder:
		result.Preorder, err = p.preorder.Extract(ctx, utt.Text)
	case domain.IntentClientEdit:
		result.ClientEdit, err = p.clientEdit.Extract(ctx, utt.Text)
	}

	if err != nil {
		log.WithError(err).Warn("extraction failed")
		return nil, err
	}

	log.Info("utterance processed")
	return result, nil
}
