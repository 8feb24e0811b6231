// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/danielhkuo/scylla/client"
	"github.com/danielhkuo/scylla/router"
	"github.com/danielhkuo/scylla/store"
	"github.com/danielhkuo/scylla/testutil"
)

// recordingNotifier keeps every notification for assertions
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

// requestLog records "METHOD /path?query" for every request the server sees
type requestLog struct {
	mu    sync.Mutex
	lines []string
}

func (l *requestLog) add(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
}

func (l *requestLog) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
}

func (l *requestLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

type testEnv struct {
	deps   Deps
	notify *recordingNotifier
	log    *requestLog
	store  *store.Store

	mu       sync.Mutex
	failWith string // requests starting with this line get a 500
}

// failRequests makes the server answer 500 to every request whose
// "METHOD /path" starts with prefix
func (e *testEnv) failRequests(prefix string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failWith = prefix
}

func (e *testEnv) shouldFail(line string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.failWith != "" && strings.HasPrefix(line, e.failWith)
}

// newTestEnv starts the API on an in-memory database
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s := testutil.SetupTestStore(t)
	mux := router.NewRouter(s)
	env := &testEnv{
		notify: &recordingNotifier{},
		log:    &requestLog{},
		store:  s,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		line := r.Method + " " + r.URL.RequestURI()
		env.log.add(line)
		if env.shouldFail(line) {
			http.Error(w, "injected failure", http.StatusInternalServerError)
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	cfg := client.DefaultConfig()
	cfg.Server = srv.URL
	env.deps = Deps{API: client.New(cfg), Notify: env.notify}
	return env
}

// newDeadEnv points the client at a server that is already closed
func newDeadEnv(t *testing.T) (Deps, *recordingNotifier) {
	t.Helper()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	cfg := client.DefaultConfig()
	cfg.Server = srv.URL
	notify := &recordingNotifier{}
	return Deps{API: client.New(cfg), Notify: notify}, notify
}
