package search

// State holds search state
type State struct {
	Query      string
	MatchCount int
}
