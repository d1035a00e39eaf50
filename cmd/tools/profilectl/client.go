package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/zhouzirui/profile-board/backend/internal/model/profile"
)

// client talks to the /api routes of a profile board server.
type client struct {
	baseURL string
	http    *http.Client
}

func newClient(baseURL string, timeout time.Duration) *client {
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *client) list(ctx context.Context) ([]profile.Profile, error) {
	var items []profile.Profile
	resp, err := c.do(ctx, http.MethodGet, "/api/profiles", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	return items, nil
}

// add returns a *profile.ValidationError when the server rejects the name.
func (c *client) add(ctx context.Context, name string) (profile.Profile, error) {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return profile.Profile{}, fmt.Errorf("encode request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/profiles", body)
	if err != nil {
		return profile.Profile{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var created profile.Profile
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			return profile.Profile{}, fmt.Errorf("decode profile: %w", err)
		}
		return created, nil
	case http.StatusUnprocessableEntity:
		return profile.Profile{}, &profile.ValidationError{Reason: errorMessage(resp)}
	default:
		return profile.Profile{}, unexpectedStatus(resp)
	}
}

// like reports false when the server ignored an unknown id.
func (c *client) like(ctx context.Context, id int) (profile.Profile, bool, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/profiles/"+strconv.Itoa(id)+"/like", nil)
	if err != nil {
		return profile.Profile{}, false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var updated profile.Profile
		if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
			return profile.Profile{}, false, fmt.Errorf("decode profile: %w", err)
		}
		return updated, true, nil
	case http.StatusNoContent:
		return profile.Profile{}, false, nil
	default:
		return profile.Profile{}, false, unexpectedStatus(resp)
	}
}

func (c *client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

func errorMessage(resp *http.Response) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error == "" {
		return resp.Status
	}
	return payload.Error
}

func unexpectedStatus(resp *http.Response) error {
	return fmt.Errorf("unexpected response %s: %s", resp.Status, errorMessage(resp))
}
