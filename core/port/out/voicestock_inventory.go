package out

import (
	"context"

	"voicestock_server/core/domain"
)

// VocabularySource supplies the canonical product names before each
// pipeline invocation. The snapshot is fetched fresh per call; staleness
// between calls is the store's concern, not the pipeline's.
type VocabularySource interface {
	ProductNames(ctx context.Context) ([]string, error)
}

// RecordSink consumes validated extraction records after each invocation.
// The pipeline never writes a partial record: a failed extraction produces
// no sink call at all.
type RecordSink interface {
	SaveSupply(ctx context.Context, rec *domain.SupplyRecord) error
	SaveSale(ctx context.Context, rec *domain.SaleRecord) error
	SavePreorder(ctx context.Context, rec *domain.PreorderRecord) error
	SaveClientEdit(ctx context.Context, rec *domain.ClientEditRecord) error
}
