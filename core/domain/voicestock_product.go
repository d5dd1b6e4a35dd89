package domain

import "strings"

// ProductVocabulary is a read-only snapshot of the canonical inventory
// product names in effect for a single pipeline run. Order is preserved,
// duplicates and blank entries are dropped at construction.
type ProductVocabulary struct {
	names []string
}

// NewProductVocabulary builds a vocabulary snapshot from canonical names.
func NewProductVocabulary(names []string) ProductVocabulary {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return ProductVocabulary{names: out}
}

// Names returns a copy of the canonical names in vocabulary order.
func (v ProductVocabulary) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

func (v ProductVocabulary) Len() int {
	return len(v.names)
}

func (v ProductVocabulary) IsEmpty() bool {
	return len(v.names) == 0
}

// Contains reports whether name is a canonical vocabulary entry.
func (v ProductVocabulary) Contains(name string) bool {
	for _, n := range v.names {
		if n == name {
			return true
		}
	}
	return false
}

// ProductNameKind tags a MatchedProductName variant
type ProductNameKind string

const (
	ProductExisting ProductNameKind = "existing" // canonical inventory entry
	ProductNew      ProductNameKind = "new"      // previously unseen product
)

// MatchedProductName is the result of resolving a free-text product phrase
// against the vocabulary: either the canonical name of an existing product
// or a proposed name for a new one. Callers must branch on Kind.
type MatchedProductName struct {
	Kind ProductNameKind `json:"kind"`
	Name string          `json:"name"`
}

// ExistingProduct wraps a canonical vocabulary name.
func ExistingProduct(canonical string) MatchedProductName {
	return MatchedProductName{Kind: ProductExisting, Name: canonical}
}

// NewProduct wraps a proposed name for a product absent from the vocabulary.
func NewProduct(proposed string) MatchedProductName {
	return MatchedProductName{Kind: ProductNew, Name: proposed}
}

func (m MatchedProductName) IsNew() bool {
	return m.Kind == ProductNew
}

func (m MatchedProductName) String() string {
	return m.Name
}
