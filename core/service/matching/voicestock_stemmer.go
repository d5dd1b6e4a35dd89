// Package matching resolves free-text product phrases against the
// canonical inventory vocabulary.
package matching

import (
	"strings"
	"sync"

	"github.com/kljensen/snowball"
)

// Stemmer reduces Russian word forms to their stems using the Snowball
// algorithm, with a cache since vocabulary tokens repeat across calls.
type Stemmer struct {
	language string
	mu       sync.RWMutex
	cache    map[string]string
}

func NewStemmer() *Stemmer {
	return &Stemmer{
		language: "russian",
		cache:    make(map[string]string),
	}
}

// Stem returns the stemmed, lowercased form of a word.
// Example: "трусики" and "трусам" reduce to a common stem.
func (s *Stemmer) Stem(word string) string {
	normalized := strings.ToLower(strings.TrimSpace(word))
	if normalized == "" {
		return ""
	}

	s.mu.RLock()
	if cached, found := s.cache[normalized]; found {
		s.mu.RUnlock()
		return cached
	}
	s.mu.RUnlock()

	stemmed, err := snowball.Stem(normalized, s.language, true)
	if err != nil {
		// Non-Russian tokens pass through unstemmed
		stemmed = normalized
	}

	s.mu.Lock()
	s.cache[normalized] = stemmed
	s.mu.Unlock()

	return stemmed
}

// StemTokens returns stemmed forms of multiple words.
func (s *Stemmer) StemTokens(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = s.Stem(tok)
	}
	return out
}

// CacheSize returns the number of cached stems.
func (s *Stemmer) CacheSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}
