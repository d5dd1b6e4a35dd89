package llm

import (
	"fmt"
	"strings"
)

// productsContext renders the current vocabulary snapshot for embedding
// into an extraction prompt.
func productsContext(products []string) string {
	if len(products) == 0 {
		return "No existing products"
	}
	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	return strings.TrimRight(b.String(), "\n")
}

// matchingRules is the product matching policy shared by supply and sale
// extraction. Grammatical variants, singular/plural forms, known synonyms
// and prepositional phrasing may be normalized; color, product type,
// material and distinguishing features may not. A feature missing from
// every inventory entry forces a new product name instead of a near-match.
const matchingRules = `PRODUCT MATCHING RULES:
- Match to existing inventory ONLY if ALL key characteristics match
- Key characteristics include: color, product type, material, AND special features (high waist, low waist, etc.)
- You MAY normalize: grammatical endings ("Бежевый" vs "Бежевые"), singular/plural ("Трусы" vs "Трусики"), synonyms ("Сетка" vs "Сеточка"), prepositions ("с сеткой" → "Сетка")
- You MUST NOT ignore: special features like "высокая талия", "низкая талия", "бразилиана", "стринги", "слип", etc.
- If a special feature is mentioned but not in existing products, create a NEW product name with that feature
- Output the EXACT product name from the inventory list if a match is found, otherwise create a new name`
