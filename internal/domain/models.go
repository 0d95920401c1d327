package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Coin represents a coin as returned by the remote coin source
type Coin struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Label returns the text shown for the coin in the list
func (c Coin) Label() string {
	if c.Symbol != "" {
		return c.Symbol
	}
	return c.Name
}

// UnmarshalJSON accepts either a record with name/symbol fields or a bare string.
// A bare string becomes a coin whose Symbol is the string, as does a bare number.
// Any other shape decodes to an empty coin so one odd element never fails the list.
func (c *Coin) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*c = Coin{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Coin{Symbol: s}
	case '{':
		// Unknown fields and non-string name/symbol values are tolerated
		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to decode coin record: %w", err)
		}
		*c = Coin{
			Name:   stringField(raw, "name"),
			Symbol: stringField(raw, "symbol"),
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*c = Coin{Symbol: string(data)}
	default:
		// null, booleans and arrays
		*c = Coin{}
	}
	return nil
}

func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}

// Category selects which list the dropdown shows
type Category int

const (
	CategoryAllCoins Category = iota
	CategoryFavorites
)

// String returns the button caption for the category
func (c Category) String() string {
	switch c {
	case CategoryFavorites:
		return "FAVORITES"
	default:
		return "ALL COINS"
	}
}

// Next cycles to the other category
func (c Category) Next() Category {
	if c == CategoryFavorites {
		return CategoryAllCoins
	}
	return CategoryFavorites
}
