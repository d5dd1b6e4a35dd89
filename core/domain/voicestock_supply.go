package domain

// SupplyItem is one line item in a restock. Both prices are optional at
// capture time and default to 0; they are extracted from distinct cues
// ("продажа по" vs "закупка по") and may legitimately both be 0.
type SupplyItem struct {
	Product       MatchedProductName `json:"product"`
	Size          string             `json:"size"`
	Quantity      int                `json:"quantity"`
	SalePrice     float64            `json:"sale_price"`
	PurchasePrice float64            `json:"purchase_price"`
}

// SupplyRecord holds the validated line items of a restock. A validated
// record always has at least one item; zero-quantity mentions are filtered
// out before validation.
type SupplyRecord struct {
	Items []SupplyItem `json:"items"`
}
