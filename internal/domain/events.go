package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDropdownToggled EventType = "DropdownToggled"
	EventCoinsLoaded     EventType = "CoinsLoaded"
	EventCoinsLoadFailed EventType = "CoinsLoadFailed"
	EventQueryChanged    EventType = "QueryChanged"
	EventCategoryChanged EventType = "CategoryChanged"
	EventFavoriteToggled EventType = "FavoriteToggled"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DropdownToggledEvent is emitted when the panel opens or closes
type DropdownToggledEvent struct {
	Open bool
	// Outside is set when the panel was dismissed by a press outside of it
	Outside bool
}

func (e DropdownToggledEvent) Type() EventType { return EventDropdownToggled }

// CoinsLoadedEvent is emitted when the coin list has been fetched
type CoinsLoadedEvent struct {
	Count int
}

func (e CoinsLoadedEvent) Type() EventType { return EventCoinsLoaded }

// CoinsLoadFailedEvent is emitted when fetching the coin list failed
type CoinsLoadFailedEvent struct {
	Err error
}

func (e CoinsLoadFailedEvent) Type() EventType { return EventCoinsLoadFailed }

// QueryChangedEvent is emitted after the filtered list was recomputed for a new query
type QueryChangedEvent struct {
	Query   string
	Matches int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// CategoryChangedEvent is emitted when the user switches category
type CategoryChangedEvent struct {
	Category Category
}

func (e CategoryChangedEvent) Type() EventType { return EventCategoryChanged }

// FavoriteToggledEvent is emitted when a coin is added to or removed from favorites
type FavoriteToggledEvent struct {
	Coin      Coin
	Favorited bool
}

func (e FavoriteToggledEvent) Type() EventType { return EventFavoriteToggled }
