// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/store"
	"github.com/danielhkuo/evote/testutil"
)

// TestServeDrainsBeforeFlush verifies that a vote still in flight when the stop
// signal arrives is finished and saved before serve returns.
func TestServeDrainsBeforeFlush(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	coord, err := ledger.New(ctx, testutil.TestCandidates(), mem, ledger.Options{})
	if err != nil {
		t.Fatalf("ledger.New: %v", err)
	}

	entered := make(chan struct{})
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("POST /slow-vote", func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		if _, err := coord.CastVote(r.Context(), testutil.TestNID(1), "a"); err != nil {
			t.Errorf("CastVote: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	server := &http.Server{Handler: mux}
	stop := make(chan os.Signal, 1)

	served := make(chan error, 1)
	go func() { served <- serve(ctx, server, ln, coord, stop) }()

	status := make(chan int, 1)
	go func() {
		resp, err := http.Post("http://"+ln.Addr().String()+"/slow-vote", "application/json", nil)
		if err != nil {
			t.Errorf("Post: %v", err)
			status <- 0
			return
		}
		resp.Body.Close()
		status <- resp.StatusCode
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("Request never reached the handler")
	}

	stop <- syscall.SIGTERM

	select {
	case err := <-served:
		t.Fatalf("serve returned while a request was in flight (err=%v)", err)
	case <-time.After(200 * time.Millisecond):
	}

	close(release)

	select {
	case err := <-served:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after the request drained")
	}

	if code := <-status; code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", code)
	}

	state, ok, err := mem.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if state.Tally["a"] != 1 || len(state.Identities) != 1 {
		t.Errorf("Expected the in-flight vote to be saved, got %+v", state)
	}
}

func TestPrintReportIncludesStandings(t *testing.T) {
	ctx := context.Background()
	coord, err := ledger.New(ctx, testutil.TestCandidates(), nil, ledger.Options{})
	if err != nil {
		t.Fatalf("ledger.New: %v", err)
	}
	for i, cand := range []string{"b", "b", "a"} {
		if _, err := coord.CastVote(ctx, testutil.TestNID(i), cand); err != nil {
			t.Fatalf("CastVote: %v", err)
		}
	}

	var buf bytes.Buffer
	printReport(&buf, coord.Results())
	out := buf.String()

	if !strings.Contains(out, "| Candidate") {
		t.Errorf("Expected results table:\n%s", out)
	}
	if !strings.Contains(out, "| Rank") {
		t.Errorf("Expected standings table:\n%s", out)
	}
	if !strings.Contains(out, "66.7%") {
		t.Errorf("Expected Beta's share:\n%s", out)
	}
}
