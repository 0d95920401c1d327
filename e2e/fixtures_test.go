//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

type coinRecord struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

var defaultCoins = []coinRecord{
	{Name: "Bitcoin", Symbol: "BTC"},
	{Name: "Ethereum", Symbol: "ETH"},
	{Name: "Tether", Symbol: "USDT"},
	{Name: "Solana", Symbol: "SOL"},
	{Name: "Cardano", Symbol: "ADA"},
}

// coinServer serves a fixed coin list and counts requests
type coinServer struct {
	*httptest.Server
	requests atomic.Int32
}

// newCoinServer starts a server returning coins; it is closed when the test ends
func newCoinServer(t *testing.T, coins []coinRecord) *coinServer {
	t.Helper()
	cs := &coinServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(coins)
	}))
	t.Cleanup(cs.Close)
	return cs
}

// newFailingServer starts a server that always answers 500
func newFailingServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	return srv
}
