// Package fuzzy implements approximate, typo-tolerant matching of a query
// against one or more text fields of a list of items.
//
// A field's score is the lowest normalized edit distance between the query
// and any window of the field whose length is within one rune of the query,
// plus a small penalty for how far into the field the window starts. Zero is
// a perfect match at the start of the field. Items whose best field scores at
// or below the threshold match; results are ordered by score.
package fuzzy

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

const (
	// DefaultThreshold is the maximum score an item may have to match
	DefaultThreshold = 0.3
	// locationDistance scales the penalty for matches away from the start of a field
	locationDistance = 100.0
)

// Key extracts one searchable field from an item
type Key[T any] struct {
	Name string
	Get  func(T) string
}

// Result is a matched item with its score and position in the indexed list
type Result[T any] struct {
	Item  T
	Index int
	Score float64
}

// Option configures an Index
type Option func(*options)

type options struct {
	threshold float64
}

// WithThreshold sets the maximum score for a match. Values outside (0, 1] are ignored.
func WithThreshold(t float64) Option {
	return func(o *options) {
		if t > 0 && t <= 1 {
			o.threshold = t
		}
	}
}

// Index holds items prepared for searching
type Index[T any] struct {
	items     []T
	fields    [][]string // lowercased field values per item
	threshold float64
}

// NewIndex builds an index over items using the given keys
func NewIndex[T any](items []T, keys []Key[T], opts ...Option) *Index[T] {
	o := options{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	idx := &Index[T]{
		items:     items,
		fields:    make([][]string, len(items)),
		threshold: o.threshold,
	}
	for i, item := range items {
		values := make([]string, 0, len(keys))
		for _, k := range keys {
			if v := k.Get(item); v != "" {
				values = append(values, strings.ToLower(v))
			}
		}
		idx.fields[i] = values
	}
	return idx
}

// Len returns the number of indexed items
func (idx *Index[T]) Len() int {
	return len(idx.items)
}

// Search returns the items matching query, best first.
// An empty (or blank) query returns every item in its original order with a zero score.
func (idx *Index[T]) Search(query string) []Result[T] {
	pattern := strings.ToLower(strings.TrimSpace(query))
	if pattern == "" {
		out := make([]Result[T], len(idx.items))
		for i, item := range idx.items {
			out[i] = Result[T]{Item: item, Index: i}
		}
		return out
	}

	var out []Result[T]
	for i, values := range idx.fields {
		best := math.Inf(1)
		for _, v := range values {
			if s := Score(v, pattern); s < best {
				best = s
			}
			if best == 0 {
				break
			}
		}
		if best <= idx.threshold {
			out = append(out, Result[T]{Item: idx.items[i], Index: i, Score: best})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score < out[j].Score
	})
	return out
}

// Items is Search without the scores
func (idx *Index[T]) Items(query string) []T {
	results := idx.Search(query)
	out := make([]T, len(results))
	for i, r := range results {
		out[i] = r.Item
	}
	return out
}

// Score returns how well pattern matches text. Both are expected lowercased.
// Lower is better; an empty pattern scores zero against anything.
func Score(text, pattern string) float64 {
	m := utf8.RuneCountInString(pattern)
	if m == 0 {
		return 0
	}
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 1
	}

	best := math.Inf(1)
	if n <= m {
		best = float64(levenshtein.ComputeDistance(text, pattern)) / float64(m)
	}
	// An exact occurrence bounds the window search from above
	if i := strings.Index(text, pattern); i >= 0 {
		if s := float64(utf8.RuneCountInString(text[:i])) / locationDistance; s < best {
			best = s
		}
	}
	if best == 0 {
		return 0
	}

	// Byte offset of every rune, so windows are substrings of text
	offsets := make([]int, 0, n+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))

	for width := max(1, m-1); width <= m+1 && width <= n; width++ {
		// A window of a different length is at least that many edits away
		floor := float64(width-m) / float64(m)
		if floor < 0 {
			floor = -floor
		}
		for start := 0; start+width <= n; start++ {
			penalty := float64(start) / locationDistance
			if floor+penalty >= best {
				break
			}
			d := levenshtein.ComputeDistance(text[offsets[start]:offsets[start+width]], pattern)
			if s := float64(d)/float64(m) + penalty; s < best {
				best = s
			}
		}
	}
	return best
}
