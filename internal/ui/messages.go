package ui

import (
	"coinpicker/internal/domain"
)

// coinsLoadedMsg carries the coin list fetched on mount
type coinsLoadedMsg struct {
	coins []domain.Coin
}

// coinsFailedMsg reports a failed coin list fetch
type coinsFailedMsg struct {
	err error
}

// helpPagerMsg contains the result of the help pager
type helpPagerMsg struct {
	err error
}
