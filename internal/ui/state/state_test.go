package state

import (
	"strings"
	"testing"

	"coinpicker/internal/domain"

	"github.com/stretchr/testify/assert"
)

var (
	bitcoin  = domain.Coin{Name: "Bitcoin", Symbol: "BTC"}
	ethereum = domain.Coin{Name: "Ethereum", Symbol: "ETH"}
)

func TestToggleAndClose(t *testing.T) {
	s := NewDropdownState()
	assert.False(t, s.Open)

	assert.True(t, s.Toggle())
	assert.False(t, s.Toggle())
	assert.False(t, s.Close())

	s.Toggle()
	assert.True(t, s.Close())
	assert.False(t, s.Open)
}

func TestToggleFavoriteNeverDuplicates(t *testing.T) {
	s := NewDropdownState()

	assert.True(t, s.ToggleFavorite(bitcoin))
	assert.Equal(t, []domain.Coin{bitcoin}, s.Favorites)
	assert.True(t, s.IsFavorite(bitcoin))

	assert.True(t, s.ToggleFavorite(ethereum))
	assert.False(t, s.ToggleFavorite(bitcoin))
	assert.Equal(t, []domain.Coin{ethereum}, s.Favorites)
	assert.False(t, s.IsFavorite(bitcoin))

	assert.True(t, s.ToggleFavorite(bitcoin))
	assert.Equal(t, []domain.Coin{ethereum, bitcoin}, s.Favorites)
}

func TestToggleFavoriteDoesNotAliasEarlierSlices(t *testing.T) {
	s := NewDropdownState()
	s.ToggleFavorite(bitcoin)
	s.ToggleFavorite(ethereum)
	before := s.Favorites

	s.ToggleFavorite(bitcoin)
	assert.Equal(t, []domain.Coin{bitcoin, ethereum}, before)
}

func TestRecompute(t *testing.T) {
	s := NewDropdownState()
	s.SetCoins([]domain.Coin{bitcoin, ethereum})

	contains := func(coins []domain.Coin, query string) []domain.Coin {
		if query == "" {
			return coins
		}
		var out []domain.Coin
		for _, c := range coins {
			if strings.Contains(strings.ToLower(c.Name), query) {
				out = append(out, c)
			}
		}
		return out
	}

	s.Recompute(contains)
	assert.Equal(t, []domain.Coin{bitcoin, ethereum}, s.Filtered)

	s.Query = "eth"
	s.Recompute(contains)
	assert.Equal(t, []domain.Coin{ethereum}, s.Filtered)
}

func TestSetCoinsNil(t *testing.T) {
	s := NewDropdownState()
	s.SetCoins(nil)
	assert.NotNil(t, s.Coins)
	assert.Empty(t, s.Coins)
}

func TestVisibleByCategory(t *testing.T) {
	s := NewDropdownState()
	s.SetCoins([]domain.Coin{bitcoin, ethereum})
	s.Filtered = []domain.Coin{ethereum}
	s.Query = "eth"
	s.ToggleFavorite(bitcoin)

	assert.Equal(t, []domain.Coin{ethereum}, s.Visible())

	assert.True(t, s.SetCategory(domain.CategoryFavorites))
	assert.False(t, s.SetCategory(domain.CategoryFavorites))
	// Favorites are shown regardless of the query
	assert.Equal(t, []domain.Coin{bitcoin}, s.Visible())
}

func TestFavoritesSurviveCoinListReplacement(t *testing.T) {
	s := NewDropdownState()
	s.SetCoins([]domain.Coin{bitcoin})
	s.ToggleFavorite(bitcoin)

	s.SetCoins([]domain.Coin{ethereum})
	assert.Equal(t, []domain.Coin{bitcoin}, s.Favorites)
}
