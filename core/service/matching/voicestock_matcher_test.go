package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voicestock_server/core/domain"
)

func vocab(names ...string) domain.ProductVocabulary {
	return domain.NewProductVocabulary(names)
}

func TestMatchDiminutivesAndInflection(t *testing.T) {
	v := vocab("Черные Трусы Сетка")

	got := NewMatcher().Match("черные трусики сеточкой M", v)

	assert.Equal(t, domain.ProductExisting, got.Kind)
	assert.Equal(t, "Черные Трусы Сетка", got.Name)
}

func TestMatchNewFeatureBlocksExisting(t *testing.T) {
	v := vocab("Черные Трусы Сетка")

	got := NewMatcher().Match("черные трусы сетка с высокой талией", v)

	assert.Equal(t, domain.ProductNew, got.Kind)
	assert.Equal(t, "Черные Трусы Сетка Высокая Талия", got.Name)
}

func TestMatchIgnoresSizesCountsAndPrepositions(t *testing.T) {
	m := NewMatcher()
	v := vocab("Черные Трусы Сетка")

	tests := []struct {
		name   string
		phrase string
	}{
		{name: "size and count words", phrase: "трусы сетка размер M 5 штук"},
		{name: "preposition before material", phrase: "черные трусы с сеткой"},
		{name: "cyrillic size", phrase: "черные трусы сетка Л"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.phrase, v)
			assert.Equal(t, domain.ProductExisting, got.Kind)
			assert.Equal(t, "Черные Трусы Сетка", got.Name)
		})
	}
}

func TestMatchPrefersClosestEntry(t *testing.T) {
	v := vocab("Черные Трусы Сетка", "Черные Трусы")

	got := NewMatcher().Match("черные трусы", v)

	assert.Equal(t, domain.ProductExisting, got.Kind)
	assert.Equal(t, "Черные Трусы", got.Name)
}

func TestMatchPhraseSubsetOfEntry(t *testing.T) {
	v := vocab("Черные Трусы Сетка")

	got := NewMatcher().Match("трусы сетка", v)

	assert.Equal(t, domain.ProductExisting, got.Kind)
	assert.Equal(t, "Черные Трусы Сетка", got.Name)
}

func TestMatchSynonymPairs(t *testing.T) {
	v := vocab("Бежевые Топ Сетка")

	got := NewMatcher().Match("бежевый топик сеточка", v)

	assert.Equal(t, domain.ProductExisting, got.Kind)
	assert.Equal(t, "Бежевые Топ Сетка", got.Name)
}

func TestMatchEmptyVocabularyGeneratesName(t *testing.T) {
	got := NewMatcher().Match("черные трусы сетка", vocab())

	assert.Equal(t, domain.ProductNew, got.Kind)
	assert.Equal(t, "Черные Трусы Сетка", got.Name)
}

func TestMatchUnrelatedPhraseGeneratesName(t *testing.T) {
	v := vocab("Бежевые Топ Сетка")

	got := NewMatcher().Match("черные стринги", v)

	assert.Equal(t, domain.ProductNew, got.Kind)
	assert.Equal(t, "Черные Стринги", got.Name)
}

func TestMatchReusesVocabularySurfaceForms(t *testing.T) {
	// "бежевый" should pick up the plural surface form already present in
	// the vocabulary instead of title-casing the spoken singular.
	v := vocab("Бежевые Трусы Слип")

	got := NewMatcher().Match("бежевый топ", v)

	assert.Equal(t, domain.ProductNew, got.Kind)
	assert.Equal(t, "Бежевые Топ", got.Name)
}

func TestMatchOnlyFillerTokensKeepsRawPhrase(t *testing.T) {
	got := NewMatcher().Match("5 штук размер M", vocab("Черные Трусы Сетка"))

	assert.Equal(t, domain.ProductNew, got.Kind)
	assert.Equal(t, "5 штук размер M", got.Name)
}

func TestMatchFeatureOnEntryNotAssertedByPhrase(t *testing.T) {
	// The phrase asserting fewer characteristics than the entry carries is
	// fine; only the reverse direction blocks a match.
	v := vocab("Черные Трусы Сетка Высокая Талия")

	got := NewMatcher().Match("черные трусы сетка", v)

	assert.Equal(t, domain.ProductExisting, got.Kind)
	assert.Equal(t, "Черные Трусы Сетка Высокая Талия", got.Name)
}
