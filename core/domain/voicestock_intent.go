package domain

// Intent represents the classified purpose of an utterance
type Intent string

const (
	IntentSupply     Intent = "supply"      // restocking inventory, incoming stock
	IntentSale       Intent = "sale"        // completed customer purchase
	IntentPreorder   Intent = "preorder"    // future order without immediate payment
	IntentClientEdit Intent = "client_edit" // personal notes about a client, no purchase info
	IntentQuery      Intent = "query"       // question about stock levels
)

// ParseIntent maps a raw label token to an Intent. The boolean reports
// whether the token was one of the five known labels.
func ParseIntent(label string) (Intent, bool) {
	switch Intent(label) {
	case IntentSupply, IntentSale, IntentPreorder, IntentClientEdit, IntentQuery:
		return Intent(label), true
	default:
		return "", false
	}
}

func (i Intent) String() string {
	return string(i)
}

// NeedsExtraction reports whether the intent requires a structured
// extraction call. Queries are answered downstream without one.
func (i Intent) NeedsExtraction() bool {
	return i != IntentQuery
}
