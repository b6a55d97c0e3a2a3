// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/evote/cliparse"
	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/store"
)

// ErrSaveFailed is what FailingStore returns from Save.
var ErrSaveFailed = errors.New("testutil: save failed")

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: store.TypeMemory,
		IdentitySalt: "test-identity-salt",
		LogLevel:     "error",
	}
}

// TestCandidates returns a two-candidate ballot with no seed votes.
func TestCandidates() []ledger.Candidate {
	return []ledger.Candidate{
		{ID: "a", Name: "Alpha", Color: "#10b981"},
		{ID: "b", Name: "Beta", Color: "#3b82f6"},
	}
}

// NewTestCoordinator builds a coordinator over TestCandidates. A nil persister
// means a fresh in-memory store.
func NewTestCoordinator(t *testing.T, p ledger.Persister) *ledger.Coordinator {
	t.Helper()

	if p == nil {
		p = store.NewMemoryStore()
	}
	c, err := ledger.New(context.Background(), TestCandidates(), p, ledger.Options{})
	if err != nil {
		t.Fatalf("Failed to create coordinator: %v", err)
	}
	return c
}

// TestNID returns a distinct, well-formed 10-digit national ID for each i.
func TestNID(i int) string {
	return fmt.Sprintf("%010d", 1000000000+i)
}

// FailingStore loads nothing and fails every Save.
type FailingStore struct{}

func (FailingStore) Load(context.Context) (ledger.State, bool, error) {
	return ledger.State{}, false, nil
}

func (FailingStore) Save(context.Context, ledger.State) error {
	return ErrSaveFailed
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
