// Package query keeps the history of applied search terms and suggests completions from it.
package query

import (
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/filesystem"
	"github.com/vidshelf/vidshelf/key"
	"github.com/vidshelf/vidshelf/where"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var (
	mu              sync.Mutex
	cacher          *gache.Cache[map[string]*queryRecord]
	suggestionCache = make(map[string][]*queryRecord)
)

func history() *gache.Cache[map[string]*queryRecord] {
	if cacher == nil {
		cacher = gache.New[map[string]*queryRecord](
			&gache.Options{
				Path:       where.Queries(),
				FileSystem: &filesystem.GacheFs{},
			},
		)
	}
	return cacher
}

// Remember records a search term or increases its rank by weight. Empty terms are ignored.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	cached, expired, err := history().Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*queryRecord)
	}

	if record, ok := cached[q]; ok {
		record.Rank += weight
	} else {
		cached[q] = &queryRecord{Rank: weight, Query: q}
	}

	clear(suggestionCache)
	return history().Set(cached)
}

// Suggest returns the highest ranked term matching the partial input.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns the remembered terms fuzzy-matching the partial input, highest rank first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	mu.Lock()
	defer mu.Unlock()

	records, ok := suggestionCache[q]
	if !ok {
		cached, expired, err := history().Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if fuzzy.Match(q, record.Query) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *queryRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Query, b.Query)
		})

		suggestionCache[q] = records
	}

	return lo.Map(records, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

// Unload drops the in-memory history so the next call reads the file again.
func Unload() {
	mu.Lock()
	defer mu.Unlock()

	cacher = nil
	clear(suggestionCache)
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
