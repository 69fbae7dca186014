package ctl

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"propd/pkg/types"
)

// Client talks to a running propd over its HTTP API.
type Client struct {
	Addr string
	HTTP *http.Client
}

func NewClient(addr string) *Client {
	return &Client{
		Addr: strings.TrimRight(addr, "/"),
		HTTP: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) decodeOrError(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		var er types.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&er); err == nil && er.Error != "" {
			return fmt.Errorf("%s (status %d)", er.Error, resp.StatusCode)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Get fetches one key.
func (c *Client) Get(key string) (types.ValueResponse, error) {
	var out types.ValueResponse
	resp, err := c.HTTP.Get(c.Addr + "/state/" + key)
	if err != nil {
		return out, err
	}
	return out, c.decodeOrError(resp, &out)
}

// Set writes one key.
func (c *Client) Set(key string, value any) (types.ValueResponse, error) {
	var out types.ValueResponse
	body, err := json.Marshal(types.SetRequest{Value: value})
	if err != nil {
		return out, err
	}
	req, err := http.NewRequest(http.MethodPut, c.Addr+"/state/"+key, bytes.NewReader(body))
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return out, err
	}
	return out, c.decodeOrError(resp, &out)
}

// State fetches the full snapshot.
func (c *Client) State() (types.StateResponse, error) {
	var out types.StateResponse
	resp, err := c.HTTP.Get(c.Addr + "/state")
	if err != nil {
		return out, err
	}
	return out, c.decodeOrError(resp, &out)
}

// Status fetches daemon status.
func (c *Client) Status() (types.StatusResponse, error) {
	var out types.StatusResponse
	resp, err := c.HTTP.Get(c.Addr + "/status")
	if err != nil {
		return out, err
	}
	return out, c.decodeOrError(resp, &out)
}

// Watch subscribes to the change stream and invokes fn per event until ctx
// is canceled or the stream ends. key may be empty to watch all keys.
func (c *Client) Watch(ctx context.Context, key string, fn func(types.ChangeEvent)) error {
	url := c.Addr + "/watch"
	if key != "" {
		url += "?key=" + key
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	// Watching has no deadline; use a bare client so the stream can idle.
	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		var er types.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&er); err == nil && er.Error != "" {
			return fmt.Errorf("%s (status %d)", er.Error, resp.StatusCode)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	br := bufio.NewReader(resp.Body)
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "data: ") {
			continue // heartbeats, ids, blank separators
		}
		var ev types.ChangeEvent
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev); err != nil {
			continue
		}
		fn(ev)
	}
}
