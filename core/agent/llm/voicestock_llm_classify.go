package llm

import (
	"context"
	"strings"

	"voicestock_server/pkg/apperr"
)

const classifySystemPrompt = `You are a warehouse assistant. Determine if the user's message is about:
- SUPPLY: Restocking inventory, receiving new products, incoming stock, adding items
- SALE: Customer purchase, selling products, client transaction (includes mentions of price, buying, purchasing)
- PREORDER: Customer wants to order items for future delivery, "предзаказ", "заказать", "хочет заказать"
- CLIENT_EDIT: ONLY adding personal notes/characteristics about a client WITHOUT any sale/purchase information
- QUERY: Questions about inventory, stock levels, asking "how many", "what's in stock", "show me"

Key indicators:
- SALE: mentions price, buying, purchasing, "купила", "купил", "за X долларов", PAST TENSE purchases
- PREORDER: "предзаказ", "заказать", "хочет заказать", FUTURE orders without immediate payment
- CLIENT_EDIT: ONLY preferences, interests, characteristics WITHOUT purchase details
- SUPPLY: adding to stock, "добавь", "поставка", receiving products, "пришло"
- QUERY: questions about stock, "сколько", "что на складе", "покажи", "есть ли"

Respond with only one word: "supply", "sale", "preorder", "client_edit", or "query".`

// ClassifyIntent asks the model for exactly one label token. The raw
// normalized token is returned as-is; validating it against the known
// label set and the fallback policy belong to the classifier service.
func (c *Client) ClassifyIntent(ctx context.Context, text string) (string, error) {
	resp, err := c.CompleteWithSystem(ctx, classifySystemPrompt, text)
	if err != nil {
		return "", apperr.ServiceError("nlu", err)
	}
	return strings.ToLower(strings.TrimSpace(resp)), nil
}
