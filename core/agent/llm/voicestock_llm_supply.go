package llm

import (
	"context"
	"fmt"

	"voicestock_server/core/port/out"
	"voicestock_server/pkg/apperr"
	"voicestock_server/pkg/logger"
)

const supplyPromptFormat = `You are a warehouse assistant extracting product restock information.

AVAILABLE INVENTORY PRODUCTS:
%s

%s
- ONLY include items with quantity GREATER THAN 0. Skip items with 0 quantity.
- Extract SALE price ("продажа по", "цена продажи") if mentioned. If not mentioned, use 0.
- Extract PURCHASE price ("закупка по", "закупочная цена", "купили по", "стоимость закупки") if mentioned. If not mentioned, use 0.

EXAMPLES:
Input: "добавь бежевый топ сеткой M 5 штук, продажа по 25 долларов, закупка по 15 долларов" (inventory has "Бежевые Топ Сетка")
Output: {"items": [{"name": "Бежевые Топ Сетка", "size": "M", "quantity": 5, "price": 25, "purchase_price": 15}]}
(Match found - same color, type, material, both prices extracted)

Input: "добавь черные трусики сеточкой M 5 штук закупочная цена 20 долларов" (inventory has "Черные Трусы Сетка")
Output: {"items": [{"name": "Черные Трусы Сетка", "size": "M", "quantity": 5, "price": 0, "purchase_price": 20}]}
(Match found - normalized "трусики"→"трусы", "сеточкой"→"сетка", only purchase price mentioned)

Input: "добавь черные трусы сетка с высокой талией M 5 штук стоимость закупки 18 долларов" (inventory has "Черные Трусы Сетка")
Output: {"items": [{"name": "Черные Трусы Сетка Высокая Талия", "size": "M", "quantity": 5, "price": 0, "purchase_price": 18}]}
(NO match - "высокая талия" is a KEY feature not in existing products, so create a NEW product)

Extract all items being restocked with their names, sizes, quantities, and prices.
Respond with a JSON object: {"items": [{"name": string, "size": string, "quantity": integer, "price": number, "purchase_price": number}]}
All fields are required for every item. No other fields.`

// ExtractSupply parses restock line items from an utterance. The current
// vocabulary is embedded into the prompt so the model resolves product
// mentions against real inventory names.
func (c *Client) ExtractSupply(ctx context.Context, text string, products []string) (*out.SupplyPayload, error) {
	systemPrompt := fmt.Sprintf(supplyPromptFormat, productsContext(products), matchingRules)

	resp, err := c.CompleteJSON(ctx, systemPrompt, text)
	if err != nil {
		return nil, apperr.ServiceError("nlu", err)
	}

	var payload out.SupplyPayload
	if err := decodeStrict(cleanJSONResponse(resp), "supply", &payload); err != nil {
		return nil, err
	}

	logger.WithField("items", len(payload.Items)).Debug("parsed supply payload")
	return &payload, nil
}
