// Package fuzzy ranks operator ids and keymap names against a typed query.
//
// A query matches when its runes appear in order in the text. Matches are
// scored by how tightly they cluster and whether they land on word starts,
// where a word starts after '.', '_', ' ' or at a lower-to-upper case change:
//
//	m := fuzzy.NewMatcher(fuzzy.DefaultWeights())
//	results := m.Match("vsel", fuzzy.Strings(commands), 10)
//
// Results for repeated queries over the same items are served from a small
// LRU cache; call Reset when the item set changes.
package fuzzy
