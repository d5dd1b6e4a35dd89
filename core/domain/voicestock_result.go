package domain

import (
	"time"

	"github.com/google/uuid"
)

// Utterance is the immutable input to one pipeline invocation: the
// transcribed text, the reference date for relative temporal expressions,
// and the vocabulary snapshot in effect. The snapshot is a value; a caller
// refreshing inventory mid-flight does not affect in-flight invocations.
type Utterance struct {
	Text        string
	CurrentDate time.Time
	Vocabulary  ProductVocabulary
}

// ExtractionResult is the tagged output of one pipeline invocation.
// Exactly one record pointer is populated for its intent; a query carries
// no payload. The result is created once and owned by the caller.
type ExtractionResult struct {
	ID         uuid.UUID         `json:"id"`
	Intent     Intent            `json:"intent"`
	Supply     *SupplyRecord     `json:"supply,omitempty"`
	Sale       *SaleRecord       `json:"sale,omitempty"`
	Preorder   *PreorderRecord   `json:"preorder,omitempty"`
	ClientEdit *ClientEditRecord `json:"client_edit,omitempty"`
}
