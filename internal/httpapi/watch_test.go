package httpapi

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"propd/internal/store"
)

func waitForWatcher(t *testing.T, s *store.Store) {
	t.Helper()
	for i := 0; i < 200; i++ {
		if s.Status().Hooks > 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("watcher never registered")
}

func readEvent(t *testing.T, br *bufio.Reader) string {
	t.Helper()
	deadline := time.After(5 * time.Second)
	lines := make(chan string, 1)
	go func() {
		for {
			line, err := br.ReadString('\n')
			if err != nil {
				return
			}
			if strings.HasPrefix(line, "data: ") {
				lines <- strings.TrimSpace(strings.TrimPrefix(line, "data: "))
				return
			}
		}
	}()
	select {
	case l := <-lines:
		return l
	case <-deadline:
		t.Fatalf("timed out waiting for SSE event")
		return ""
	}
}

func TestWatchStreamsChanges(t *testing.T) {
	s := store.New(nil)
	srv := httptest.NewServer(NewMux(s))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/watch", nil)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
		t.Fatalf("content-type=%s", ct)
	}

	waitForWatcher(t, s)
	s.Set("mode", "busy")

	data := readEvent(t, bufio.NewReader(resp.Body))
	if !strings.Contains(data, `"key":"mode"`) || !strings.Contains(data, `"value":"busy"`) {
		t.Fatalf("event=%s", data)
	}
}

func TestWatchKeyFilter(t *testing.T) {
	s := store.New(map[string]any{"wanted": 0})
	srv := httptest.NewServer(NewMux(s))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/watch?key=wanted", nil)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	waitForWatcher(t, s)
	s.Set("other", "noise")
	s.Set("wanted", 42)

	data := readEvent(t, bufio.NewReader(resp.Body))
	if !strings.Contains(data, `"key":"wanted"`) {
		t.Fatalf("filter leaked: %s", data)
	}
}

func TestWatchUnknownKeyFilter(t *testing.T) {
	s := store.New(nil)
	r := NewMux(s)
	req := httptest.NewRequest(http.MethodGet, "/watch?key=missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", w.Code)
	}
}

func TestWatchEndsOnClientDisconnect(t *testing.T) {
	s := store.New(nil)
	srv := httptest.NewServer(NewMux(s))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/watch", nil)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()
	waitForWatcher(t, s)

	cancel()
	// The store hook must be released once the handler unwinds.
	for i := 0; i < 200; i++ {
		if s.Status().Hooks == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("watch hook leaked after disconnect")
}
