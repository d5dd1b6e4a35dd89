package out

import (
	"context"
	"time"
)

// NLUClient is the capability surface of the external language-understanding
// service. Classification returns exactly one raw label token; the four
// extraction operations return wire payloads that extractors validate into
// domain records. Implementations convert transport failures and
// schema-parse failures into apperr typed errors; no raw SDK error escapes.
type NLUClient interface {
	ClassifyIntent(ctx context.Context, text string) (string, error)
	ExtractSupply(ctx context.Context, text string, products []string) (*SupplyPayload, error)
	ExtractSale(ctx context.Context, text string, currentDate time.Time, products []string) (*SalePayload, error)
	ExtractPreorder(ctx context.Context, text string) (*PreorderPayload, error)
	ExtractClientEdit(ctx context.Context, text string) (*ClientEditPayload, error)
}

// SupplyItemPayload is one restock line item on the wire.
type SupplyItemPayload struct {
	Name          string  `json:"name"`
	Size          string  `json:"size"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	PurchasePrice float64 `json:"purchase_price"`
}

type SupplyPayload struct {
	Items []SupplyItemPayload `json:"items"`
}

// ClientPayload carries customer info; nullable fields are explicit in the
// schema contract, so pointers are used instead of empty strings.
type ClientPayload struct {
	Name      string  `json:"name"`
	Instagram *string `json:"instagram"`
	Telegram  *string `json:"telegram"`
	Notes     *string `json:"notes"`
}

type SaleItemPayload struct {
	ItemName string  `json:"item_name"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type ReminderPayload struct {
	DaysFromNow int    `json:"days_from_now"`
	Text        string `json:"text"`
}

type SalePayload struct {
	Client   ClientPayload     `json:"client"`
	Items    []SaleItemPayload `json:"items"`
	Reminder *ReminderPayload  `json:"reminder"`
}

type PreorderItemPayload struct {
	ItemName    string  `json:"item_name"`
	Quantity    int     `json:"quantity"`
	Description *string `json:"description"`
}

type PreorderPayload struct {
	ClientName string                `json:"client_name"`
	Items      []PreorderItemPayload `json:"items"`
	Notes      *string               `json:"notes"`
}

type ClientEditPayload struct {
	ClientName string `json:"client_name"`
	Notes      string `json:"notes"`
}
