package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"voicestock_server/core/domain"
)

// stopTokens are words that never carry a product characteristic:
// prepositions, connectives, size/count filler. They are dropped before
// matching so that "с сеткой" collapses to the same shape as "сетка".
var stopTokens = map[string]struct{}{
	"с": {}, "со": {}, "в": {}, "во": {}, "на": {}, "из": {}, "по": {},
	"для": {}, "и": {}, "под": {}, "без": {}, "у": {},
	"размер": {}, "размера": {}, "размером": {}, "размере": {}, "размеры": {},
	"штук": {}, "штука": {}, "штуки": {}, "шт": {},
}

// sizeTokens are size designations, not product characteristics.
var sizeTokens = map[string]struct{}{
	"xs": {}, "s": {}, "m": {}, "l": {}, "xl": {}, "xxl": {}, "xxxl": {},
	"2xl": {}, "3xl": {}, "s-m": {}, "m-l": {}, "l-xl": {},
	"хс": {}, "м": {}, "л": {}, "хл": {}, "ххл": {},
}

// stemSynonyms collapses known synonym and diminutive pairs at stem level,
// e.g. the mesh-fabric pair "сетка"/"сеточка".
var stemSynonyms = map[string]string{
	"сеточк": "сетк",
	"трусик": "трус",
	"топик":  "топ",
	"маечк":  "майк",
}

// canonicalForms maps a normalized stem to the surface form used when a
// new product name has to be built without a vocabulary entry to lean on.
var canonicalForms = map[string]string{
	"трус": "Трусы",
	"сетк": "Сетка",
	"топ":  "Топ",
	"майк": "Майка",
}

// productFeature is a distinguishing structural characteristic. A feature
// asserted by the phrase but absent from a vocabulary entry always blocks
// the match; near-misses are never silently merged.
type productFeature struct {
	canonical string   // surface form appended to generated names
	prefixes  []string // adjacent token prefixes, lowercased
}

var productFeatures = []productFeature{
	{canonical: "Высокая Талия", prefixes: []string{"высок", "тал"}},
	{canonical: "Низкая Талия", prefixes: []string{"низк", "тал"}},
	{canonical: "Бразилиана", prefixes: []string{"бразил"}},
	{canonical: "Стринги", prefixes: []string{"стринг"}},
	{canonical: "Слип", prefixes: []string{"слип"}},
	{canonical: "Пуш-Ап", prefixes: []string{"пуш"}},
}

type phraseToken struct {
	raw  string
	stem string
}

type analysis struct {
	tokens   []phraseToken // base characteristics: color, category, material
	stemSet  map[string]struct{}
	features []string // canonical feature names, phrase order
	featSet  map[string]struct{}
}

// Matcher resolves a free-text product phrase to either an existing
// canonical vocabulary entry or a proposed new product name. Matching is
// characteristic-based exact-set matching with controlled normalization,
// not generic string similarity.
type Matcher struct {
	stemmer *Stemmer
}

func NewMatcher() *Matcher {
	return &Matcher{stemmer: NewStemmer()}
}

// Match resolves phrase against the vocabulary snapshot. An entry matches
// only when every key characteristic the phrase asserts is present in the
// entry after normalization; otherwise the result is New with a generated
// name. When several entries qualify, the one sharing the most normalized
// tokens wins.
func (m *Matcher) Match(phrase string, vocab domain.ProductVocabulary) domain.MatchedProductName {
	ph := m.analyze(phrase)
	if len(ph.tokens) == 0 && len(ph.features) == 0 {
		return domain.NewProduct(strings.TrimSpace(phrase))
	}

	bestName := ""
	bestOverlap := -1
	bestExtra := 0
	for _, name := range vocab.Names() {
		entry := m.analyze(name)
		if !entry.covers(ph) {
			continue
		}
		ov := entry.overlap(ph)
		extra := len(entry.stemSet) + len(entry.featSet) - ov
		if ov > bestOverlap || (ov == bestOverlap && extra < bestExtra) {
			bestName, bestOverlap, bestExtra = name, ov, extra
		}
	}
	if bestOverlap >= 0 {
		return domain.ExistingProduct(bestName)
	}

	return domain.NewProduct(m.proposeName(ph, vocab))
}

// covers reports whether the entry carries every key characteristic the
// phrase asserts: all base stems and all features.
func (e analysis) covers(ph analysis) bool {
	for stem := range ph.stemSet {
		if _, ok := e.stemSet[stem]; !ok {
			return false
		}
	}
	for feat := range ph.featSet {
		if _, ok := e.featSet[feat]; !ok {
			return false
		}
	}
	return true
}

// overlap counts normalized tokens and features shared with the phrase.
func (e analysis) overlap(ph analysis) int {
	n := 0
	for stem := range e.stemSet {
		if _, ok := ph.stemSet[stem]; ok {
			n++
		}
	}
	for feat := range e.featSet {
		if _, ok := ph.featSet[feat]; ok {
			n++
		}
	}
	return n
}

// proposeName generates a name for a product absent from the vocabulary.
// When an entry matches every base characteristic and the mismatch is only
// a missing feature, the new name is that entry's canonical name with the
// feature appended. Otherwise the name is built from canonicalized tokens.
func (m *Matcher) proposeName(ph analysis, vocab domain.ProductVocabulary) string {
	bestName := ""
	bestEntry := analysis{}
	bestOverlap := -1
	for _, name := range vocab.Names() {
		entry := m.analyze(name)
		if !baseCovered(ph, entry) {
			continue
		}
		// an entry feature the phrase never asserted would leak into
		// the generated name, so such entries do not qualify as a base
		if !featureSubset(entry.featSet, ph.featSet) {
			continue
		}
		if ov := entry.overlap(ph); ov > bestOverlap {
			bestName, bestEntry, bestOverlap = name, entry, ov
		}
	}

	if bestName != "" {
		parts := []string{bestName}
		for _, feat := range ph.features {
			if _, ok := bestEntry.featSet[feat]; !ok {
				parts = append(parts, feat)
			}
		}
		return strings.Join(parts, " ")
	}

	titler := cases.Title(language.Russian)
	parts := make([]string, 0, len(ph.tokens)+len(ph.features))
	for _, tok := range ph.tokens {
		parts = append(parts, m.canonicalToken(tok, vocab, titler))
	}
	parts = append(parts, ph.features...)
	return strings.Join(parts, " ")
}

func baseCovered(ph analysis, entry analysis) bool {
	for stem := range ph.stemSet {
		if _, ok := entry.stemSet[stem]; !ok {
			return false
		}
	}
	return true
}

func featureSubset(sub, super map[string]struct{}) bool {
	for feat := range sub {
		if _, ok := super[feat]; !ok {
			return false
		}
	}
	return true
}

// canonicalToken picks the surface form for one token of a generated name:
// the matching vocabulary token if any entry carries the same stem, a known
// canonical form otherwise, falling back to the title-cased token itself.
func (m *Matcher) canonicalToken(tok phraseToken, vocab domain.ProductVocabulary, titler cases.Caser) string {
	for _, name := range vocab.Names() {
		for _, surface := range splitTokens(name) {
			if m.normalizeStem(surface) == tok.stem {
				return surface
			}
		}
	}
	if form, ok := canonicalForms[tok.stem]; ok {
		return form
	}
	return titler.String(tok.raw)
}

// analyze normalizes a product phrase: tokenization, stop/size filtering,
// feature detection over raw tokens, then stemming with synonym collapse
// for the remaining base tokens.
func (m *Matcher) analyze(phrase string) analysis {
	raw := splitTokens(strings.ToLower(phrase))

	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, ok := stopTokens[tok]; ok {
			continue
		}
		if _, ok := sizeTokens[tok]; ok {
			continue
		}
		if isNumeric(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}

	consumed := make([]bool, len(tokens))
	a := analysis{
		stemSet: make(map[string]struct{}),
		featSet: make(map[string]struct{}),
	}
	for _, feat := range productFeatures {
		for i := 0; i+len(feat.prefixes) <= len(tokens); i++ {
			if consumed[i] {
				continue
			}
			match := true
			for j, prefix := range feat.prefixes {
				if consumed[i+j] || !strings.HasPrefix(tokens[i+j], prefix) {
					match = false
					break
				}
			}
			if !match {
				continue
			}
			for j := range feat.prefixes {
				consumed[i+j] = true
			}
			if _, ok := a.featSet[feat.canonical]; !ok {
				a.features = append(a.features, feat.canonical)
				a.featSet[feat.canonical] = struct{}{}
			}
		}
	}

	for i, tok := range tokens {
		if consumed[i] {
			continue
		}
		stem := m.normalizeStem(tok)
		a.tokens = append(a.tokens, phraseToken{raw: tok, stem: stem})
		a.stemSet[stem] = struct{}{}
	}
	return a
}

func (m *Matcher) normalizeStem(tok string) string {
	stem := m.stemmer.Stem(tok)
	if mapped, ok := stemSynonyms[stem]; ok {
		return mapped
	}
	return stem
}

func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
