package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"propd/internal/store"
	"propd/pkg/types"
)

// heartbeatInterval keeps idle /watch connections alive through proxies.
const heartbeatInterval = 15 * time.Second

// watchHandler streams committed changes as server-sent events. Delivery to
// HTTP watchers is best-effort: each watcher gets a buffered channel fed
// from a store hook, and changes beyond the buffer are dropped and counted
// rather than blocking the writer's notification pass.
func watchHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fl, ok := w.(http.Flusher)
		if !ok {
			writeJSONError(w, http.StatusInternalServerError, "streaming unsupported")
			return
		}

		keyFilter := r.URL.Query().Get("key")
		if keyFilter != "" {
			if _, err := svc.Get(keyFilter); err != nil {
				writeJSONError(w, statusFromError(err), err.Error())
				return
			}
		}

		ch := make(chan store.Change, watchBuffer)
		h := svc.Watch(func(c store.Change) {
			if keyFilter != "" && c.Key != keyFilter {
				return
			}
			select {
			case ch <- c:
			default:
				watchDropsTotal.Inc()
			}
		})
		defer h.Release()
		watchersActive.Inc()
		defer watchersActive.Dec()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		fl.Flush()

		// Join server base context with request context so shutdown ends streams too.
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()

		tick := time.NewTicker(heartbeatInterval)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case c := <-ch:
				b, err := json.Marshal(types.ChangeEvent{Key: c.Key, Value: c.Value, Rev: c.Rev})
				if err != nil {
					continue
				}
				if _, err := fmt.Fprintf(w, "id: %d\ndata: %s\n\n", c.Rev, b); err != nil {
					return
				}
				fl.Flush()
			case <-tick.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
				fl.Flush()
			}
		}
	}
}
