package llm

import (
	"context"
	"fmt"
	"time"

	"voicestock_server/core/port/out"
	"voicestock_server/pkg/apperr"
	"voicestock_server/pkg/logger"
)

const salePromptFormat = `You are a CRM assistant extracting customer sale information.

Today's date is: %s

AVAILABLE INVENTORY PRODUCTS:
%s

%s

Extract information for MULTIPLE items if mentioned:

1. Client information:
   - name: Client's full name
   - instagram: Instagram username ONLY (without "Пользователь Instagram:" prefix)
   - telegram: Telegram username ONLY (without "Пользователь Telegram:" prefix)
   - notes: Personal characteristics, preferences, AND future purchase wishes

2. Items (array of ALREADY PURCHASED products):
   - ONLY extract products that were ALREADY BOUGHT/PURCHASED
   - CRITICAL: DO NOT include items the client "wants", "will buy", "is interested in" - those go to notes
   - Look for past tense: "купила", "купил", "bought", "purchased"
   - For EACH purchased product: name, size, quantity, price
   - Map product names to exact inventory names using the matching rules above
   - If a price is mentioned once for multiple items, apply it to each item
   - All items must have a price > 0

3. Reminder (if mentioned):
   - Convert relative dates ("через 3 дня", a weekday name, "next week") to a number of days from today

CRITICAL RULES FOR ITEMS vs NOTES:
- Items array: ONLY products with a COMPLETED purchase ("купила", "bought")
- Notes field: future wishes ("хочет купить", "интересуется", "wants to buy"), preferences, characteristics
- If no price is mentioned for purchased items, that is an error - price is REQUIRED for items

EXAMPLES:

Input: "Светлана купила бежевый топ M за 40 долларов" (inventory has "Бежевые Топ Сетка")
Output: {"client": {"name": "Светлана", "instagram": null, "telegram": null, "notes": null}, "items": [{"item_name": "Бежевые Топ Сетка", "size": "M", "quantity": 1, "price": 40}], "reminder": null}

Input: "Анастасия купила черные трусы M за 25 долларов. Укажи в описании, что она хочет купить топ бежевый L" (inventory has "Черные Трусы Сетка")
Output: {"client": {"name": "Анастасия", "instagram": null, "telegram": null, "notes": "Хочет купить топ бежевый L"}, "items": [{"item_name": "Черные Трусы Сетка", "size": "M", "quantity": 1, "price": 25}], "reminder": null}
(The future wish goes to notes, not items)

Respond with a JSON object:
{"client": {"name": string, "instagram": string|null, "telegram": string|null, "notes": string|null},
 "items": [{"item_name": string, "size": string, "quantity": integer, "price": number}],
 "reminder": {"days_from_now": integer, "text": string} | null}
All declared fields are required, nullable fields explicit. No other fields.`

// ExtractSale parses a completed customer transaction from an utterance.
// The current date anchors relative reminder expressions; the vocabulary
// anchors product mentions.
func (c *Client) ExtractSale(ctx context.Context, text string, currentDate time.Time, products []string) (*out.SalePayload, error) {
	systemPrompt := fmt.Sprintf(salePromptFormat,
		currentDate.Format("2006-01-02"),
		productsContext(products),
		matchingRules)

	resp, err := c.CompleteJSON(ctx, systemPrompt, text)
	if err != nil {
		return nil, apperr.ServiceError("nlu", err)
	}

	var payload out.SalePayload
	if err := decodeStrict(cleanJSONResponse(resp), "sale", &payload); err != nil {
		return nil, err
	}

	logger.WithFields(map[string]any{
		"client": payload.Client.Name,
		"items":  len(payload.Items),
	}).Debug("parsed sale payload")
	return &payload, nil
}
