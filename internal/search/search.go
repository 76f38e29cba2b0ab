package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"menuvroom/internal/domain"
)

const (
	// DefaultLimit bounds the containment ranking
	DefaultLimit = 8
	// SimilarityLimit bounds the similarity ranking
	SimilarityLimit = 10

	ModeContains   = "contains"
	ModeSimilarity = "similarity"
)

// Ranker turns a query into an ordered list of catalog indices
type Ranker interface {
	Rank(catalog domain.Catalog, query string) []int
}

// Options selects and tunes a ranker
type Options struct {
	Mode       string
	Limit      int // 0 uses the mode's default
	IgnoreCase bool
}

// New creates the ranker for the configured mode
func New(opts Options) (Ranker, error) {
	switch opts.Mode {
	case "", ModeContains:
		return &ContainsRanker{Limit: opts.Limit, IgnoreCase: opts.IgnoreCase}, nil
	case ModeSimilarity:
		return &SimilarityRanker{Limit: opts.Limit, IgnoreCase: opts.IgnoreCase}, nil
	default:
		return nil, fmt.Errorf("unknown search mode %q", opts.Mode)
	}
}

// ContainsRanker is the canonical policy: entries whose display text equals
// the query come first, followed by entries that contain the query, in
// catalog order.
type ContainsRanker struct {
	Limit      int
	IgnoreCase bool
}

// Rank performs a full pass over the catalog. An empty query ranks nothing.
func (r *ContainsRanker) Rank(catalog domain.Catalog, query string) []int {
	if query == "" {
		return nil
	}
	limit := r.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	needle := fold(query, r.IgnoreCase)

	var exact, partial []int
	for i := 0; i < catalog.Len(); i++ {
		text := fold(catalog.At(i).DisplayText(), r.IgnoreCase)
		switch {
		case text == needle:
			exact = append(exact, i)
		case len(partial) < limit && strings.Contains(text, needle):
			partial = append(partial, i)
		}
	}

	ranked := append(exact, partial...)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// SimilarityRanker scores entries by Sørensen–Dice similarity to the query.
// Entries containing the query always get the top score; entries with no
// similarity at all are dropped.
type SimilarityRanker struct {
	Limit      int
	IgnoreCase bool
}

type scored struct {
	index int
	score float64
}

// Rank performs a full pass over the catalog. An empty query ranks nothing.
func (r *SimilarityRanker) Rank(catalog domain.Catalog, query string) []int {
	if query == "" {
		return nil
	}
	limit := r.Limit
	if limit <= 0 {
		limit = SimilarityLimit
	}

	metric := metrics.NewSorensenDice()
	metric.CaseSensitive = !r.IgnoreCase
	needle := fold(query, r.IgnoreCase)

	var results []scored
	for i := 0; i < catalog.Len(); i++ {
		text := catalog.At(i).DisplayText()
		score := 1.0
		if !strings.Contains(fold(text, r.IgnoreCase), needle) {
			score = strutil.Similarity(query, text, metric)
		}
		if score > 0 {
			results = append(results, scored{index: i, score: score})
		}
	}

	// stable: equal scores keep catalog order
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].score > results[b].score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	ranked := make([]int, len(results))
	for i, res := range results {
		ranked[i] = res.index
	}
	return ranked
}

func fold(s string, ignoreCase bool) string {
	if ignoreCase {
		return strings.ToLower(s)
	}
	return s
}
