package state

import (
	"coinpicker/internal/domain"
)

// DropdownState contains all the widget state
type DropdownState struct {
	Open bool

	// Coin data
	Coins    []domain.Coin // list as returned by the coin source
	Filtered []domain.Coin // Coins narrowed by Query

	// Search state
	Query string

	// Category and favorites
	Category  domain.Category
	Favorites []domain.Coin // insertion ordered, no duplicates
}

// NewDropdownState creates a closed dropdown showing all coins
func NewDropdownState() *DropdownState {
	return &DropdownState{
		Coins:     make([]domain.Coin, 0),
		Filtered:  make([]domain.Coin, 0),
		Category:  domain.CategoryAllCoins,
		Favorites: make([]domain.Coin, 0),
	}
}

// Toggle flips the open state and returns the new value
func (s *DropdownState) Toggle() bool {
	s.Open = !s.Open
	return s.Open
}

// Close closes the dropdown and reports whether it was open
func (s *DropdownState) Close() bool {
	wasOpen := s.Open
	s.Open = false
	return wasOpen
}

// SetCoins replaces the coin list wholesale.
// Filtered must be recomputed by the caller.
func (s *DropdownState) SetCoins(coins []domain.Coin) {
	if coins == nil {
		coins = make([]domain.Coin, 0)
	}
	s.Coins = coins
}

// Recompute derives Filtered from Coins and Query using filter
func (s *DropdownState) Recompute(filter func(coins []domain.Coin, query string) []domain.Coin) {
	s.Filtered = filter(s.Coins, s.Query)
}

// SetCategory switches category and reports whether it changed
func (s *DropdownState) SetCategory(c domain.Category) bool {
	if s.Category == c {
		return false
	}
	s.Category = c
	return true
}

// IsFavorite reports whether the coin is in the favorites set
func (s *DropdownState) IsFavorite(coin domain.Coin) bool {
	return s.favoriteIndex(coin) >= 0
}

// ToggleFavorite adds the coin to favorites if absent, removes it otherwise.
// Returns true if the coin is a favorite afterwards.
func (s *DropdownState) ToggleFavorite(coin domain.Coin) bool {
	if i := s.favoriteIndex(coin); i >= 0 {
		s.Favorites = append(s.Favorites[:i:i], s.Favorites[i+1:]...)
		return false
	}
	s.Favorites = append(s.Favorites, coin)
	return true
}

func (s *DropdownState) favoriteIndex(coin domain.Coin) int {
	for i, f := range s.Favorites {
		if f == coin {
			return i
		}
	}
	return -1
}

// Visible returns the rows for the selected category.
// The favorites view ignores the query.
func (s *DropdownState) Visible() []domain.Coin {
	if s.Category == domain.CategoryFavorites {
		return s.Favorites
	}
	return s.Filtered
}
