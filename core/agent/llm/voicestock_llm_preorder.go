package llm

import (
	"context"

	"voicestock_server/core/port/out"
	"voicestock_server/pkg/apperr"
	"voicestock_server/pkg/logger"
)

const preorderSystemPrompt = `You are a warehouse assistant extracting preorder information.

Extract preorder information:
1. Client name (full name)
2. Items (array of items with name, quantity, and optional description)
3. General notes about the preorder (optional)

Record item names as stated; do not rewrite them to match inventory. A
preorder may reference products that are not in stock yet. Size or variant
details belong in the item description.

EXAMPLES:

Input: "Клиент Анна. Предзаказ: черные трусы сетка размер M 2 штуки. Черный топ сетка размер S 1 штука. Забрать в пятницу."
Output: {"client_name": "Анна", "items": [{"item_name": "Черные Трусы Сетка", "quantity": 2, "description": "размер M"}, {"item_name": "Черный Топ Сетка", "quantity": 1, "description": "размер S"}], "notes": "Забрать в пятницу"}

Input: "Мария хочет заказать бежевый купальник 3 штуки, размеры разные."
Output: {"client_name": "Мария", "items": [{"item_name": "Бежевый Купальник", "quantity": 3, "description": "размеры разные"}], "notes": null}

Respond with a JSON object:
{"client_name": string, "items": [{"item_name": string, "quantity": integer, "description": string|null}], "notes": string|null}
All declared fields are required, nullable fields explicit. No other fields.`

// ExtractPreorder parses a future order. Preorders never consult the
// vocabulary and carry no prices.
func (c *Client) ExtractPreorder(ctx context.Context, text string) (*out.PreorderPayload, error) {
	resp, err := c.CompleteJSON(ctx, preorderSystemPrompt, text)
	if err != nil {
		return nil, apperr.ServiceError("nlu", err)
	}

	var payload out.PreorderPayload
	if err := decodeStrict(cleanJSONResponse(resp), "preorder", &payload); err != nil {
		return nil, err
	}

	logger.WithFields(map[string]any{
		"client": payload.ClientName,
		"items":  len(payload.Items),
	}).Debug("parsed preorder payload")
	return &payload, nil
}
