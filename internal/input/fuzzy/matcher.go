package fuzzy

import (
	"container/list"
	"sort"
	"strings"
	"sync"
)

// Item is a searchable entry.
type Item struct {
	// Text is matched against the query.
	Text string

	// Data is carried through to the result.
	Data any
}

// Strings wraps plain strings as items.
func Strings(texts []string) []Item {
	items := make([]Item, len(texts))
	for i, t := range texts {
		items[i] = Item{Text: t}
	}
	return items
}

// Result is a scored match.
type Result struct {
	Item Item

	// Score is higher for better matches.
	Score int

	// Matches are the rune indices of matched characters in Item.Text.
	Matches []int
}

// Matcher scores items against queries. Matching ignores case.
type Matcher struct {
	weights Weights

	mu    sync.Mutex
	cache map[string]*list.Element
	lru   *list.List
	size  int
}

type cacheEntry struct {
	query   string
	results []Result
}

// DefaultCacheSize is the number of queries a Matcher remembers.
const DefaultCacheSize = 64

// NewMatcher creates a matcher with the given weights.
func NewMatcher(w Weights) *Matcher {
	return &Matcher{
		weights: w,
		cache:   make(map[string]*list.Element),
		lru:     list.New(),
		size:    DefaultCacheSize,
	}
}

// Match returns the items containing the query's runes in order, best
// first, ties broken by text. A limit of zero or less returns all matches.
// An empty query returns the first limit items unscored.
func (m *Matcher) Match(query string, items []Item, limit int) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		n := len(items)
		if limit > 0 {
			n = min(n, limit)
		}
		out := make([]Result, n)
		for i := range out {
			out[i] = Result{Item: items[i]}
		}
		return out
	}

	results, ok := m.cached(query)
	if !ok {
		results = m.match([]rune(query), items)
		m.store(query, results)
	}
	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results
}

func (m *Matcher) match(query []rune, items []Item) []Result {
	results := make([]Result, 0, len(items))
	for _, item := range items {
		original := []rune(item.Text)
		text := []rune(strings.ToLower(item.Text))
		if len(text) != len(original) {
			original = text
		}

		matches := make([]int, 0, len(query))
		for i := 0; i < len(text) && len(matches) < len(query); i++ {
			if text[i] == query[len(matches)] {
				matches = append(matches, i)
			}
		}
		if len(matches) != len(query) {
			continue
		}
		results = append(results, Result{
			Item:    item,
			Score:   m.weights.score(query, original, text, matches),
			Matches: matches,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Item.Text < results[j].Item.Text
	})
	return results
}

func (m *Matcher) cached(query string) ([]Result, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	elem, ok := m.cache[query]
	if !ok {
		return nil, false
	}
	m.lru.MoveToFront(elem)
	return elem.Value.(*cacheEntry).results, true
}

func (m *Matcher) store(query string, results []Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if elem, ok := m.cache[query]; ok {
		elem.Value.(*cacheEntry).results = results
		m.lru.MoveToFront(elem)
		return
	}
	m.cache[query] = m.lru.PushFront(&cacheEntry{query: query, results: results})
	for m.lru.Len() > m.size {
		oldest := m.lru.Back()
		m.lru.Remove(oldest)
		delete(m.cache, oldest.Value.(*cacheEntry).query)
	}
}

// Reset drops cached results. Call it when the item set changes.
func (m *Matcher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = make(map[string]*list.Element)
	m.lru.Init()
}

// CacheLen returns the number of cached queries.
func (m *Matcher) CacheLen() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lru.Len()
}
