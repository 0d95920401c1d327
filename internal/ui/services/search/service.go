package search

import (
	"log"
	"strings"

	"coinpicker/internal/domain"
	"coinpicker/internal/eventbus"
	"coinpicker/internal/fuzzy"
)

// Service narrows the coin list with the fuzzy matcher
type Service struct {
	state     *State
	bus       eventbus.EventBus
	keys      []fuzzy.Key[domain.Coin]
	threshold float64
}

var coinKeys = map[string]fuzzy.Key[domain.Coin]{
	"name":   {Name: "name", Get: func(c domain.Coin) string { return c.Name }},
	"symbol": {Name: "symbol", Get: func(c domain.Coin) string { return c.Symbol }},
}

// NewService creates a search service matching on the named coin fields.
// Unknown field names are skipped; with none left it matches on name and symbol.
// bus may be nil.
func NewService(bus eventbus.EventBus, keyNames []string, threshold float64) *Service {
	var keys []fuzzy.Key[domain.Coin]
	for _, name := range keyNames {
		k, ok := coinKeys[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			log.Printf("Search: ignoring unknown key %q", name)
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		keys = []fuzzy.Key[domain.Coin]{coinKeys["name"], coinKeys["symbol"]}
	}

	return &Service{
		state:     &State{},
		bus:       bus,
		keys:      keys,
		threshold: threshold,
	}
}

// Filter rebuilds the index over coins and returns the matches for query.
// A blank query returns coins unchanged.
func (s *Service) Filter(coins []domain.Coin, query string) []domain.Coin {
	var result []domain.Coin
	if strings.TrimSpace(query) == "" {
		result = coins
	} else {
		idx := fuzzy.NewIndex(coins, s.keys, fuzzy.WithThreshold(s.threshold))
		result = idx.Items(query)
	}

	queryChanged := query != s.state.Query
	s.state.Query = query
	s.state.MatchCount = len(result)

	if queryChanged && s.bus != nil {
		s.bus.Publish(eventbus.QueryChangedEvent{Query: query, Matches: len(result)})
	}

	return result
}

// GetQuery returns the last query filtered for
func (s *Service) GetQuery() string {
	return s.state.Query
}

// GetMatchCount returns the number of matches of the last filter
func (s *Service) GetMatchCount() int {
	return s.state.MatchCount
}

// KeyNames returns the coin fields being matched
func (s *Service) KeyNames() []string {
	names := make([]string, len(s.keys))
	for i, k := range s.keys {
		names[i] = k.Name
	}
	return names
}
