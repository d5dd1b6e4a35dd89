package domain

// PreorderItem is one requested item. Preorders carry no fixed size field;
// size or variant details go into the free-text description.
type PreorderItem struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Description *string `json:"description,omitempty"`
}

// PreorderRecord is a future order captured before payment. Item names are
// recorded as stated and never canonicalized against the vocabulary, since
// a preorder may reference products not yet in inventory. Preorders are
// not priced at capture time.
type PreorderRecord struct {
	ClientName string         `json:"client_name"`
	Items      []PreorderItem `json:"items"`
	Notes      *string        `json:"notes,omitempty"`
}

// ClientEditRecord adds consolidated free-text notes to a client profile.
type ClientEditRecord struct {
	ClientName string `json:"client_name"`
	Notes      string `json:"notes"`
}
