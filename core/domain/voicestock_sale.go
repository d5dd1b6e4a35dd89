package domain

import "time"

// ClientInfo is the customer attached to a sale. Name is mandatory;
// handles are stored without any leading label text.
type ClientInfo struct {
	Name      string  `json:"name"`
	Instagram *string `json:"instagram,omitempty"`
	Telegram  *string `json:"telegram,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// SaleItem is one purchased line item. Unlike supply, price is mandatory
// and strictly positive in any validated record.
type SaleItem struct {
	Product  MatchedProductName `json:"product"`
	Size     string             `json:"size"`
	Quantity int                `json:"quantity"`
	Price    float64            `json:"price"`
}

// ReminderInfo schedules a follow-up relative to the sale's capture date.
// DueAt is derived from the current date plus DaysFromNow.
type ReminderInfo struct {
	DaysFromNow int       `json:"days_from_now"`
	Text        string    `json:"text"`
	DueAt       time.Time `json:"due_at"`
}

// SaleRecord is a completed customer transaction. Items hold only products
// that were already bought; desired or future purchases live in the
// client's notes as free text.
type SaleRecord struct {
	Client   ClientInfo    `json:"client"`
	Items    []SaleItem    `json:"items"`
	Reminder *ReminderInfo `json:"reminder,omitempty"`
}
