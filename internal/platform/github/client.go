// Package github fetches raw files from a GitHub repository branch.
package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// RawEndpoint serves plain file contents for public repositories.
const RawEndpoint = "https://raw.githubusercontent.com"

// Client downloads files from a single repository and branch.
type Client struct {
	endpoint   string
	repo       string
	branch     string
	httpClient *http.Client
}

// NewClient creates a client for the given "owner/name" repository.
func NewClient(repo, branch string, timeout time.Duration) *Client {
	return &Client{
		endpoint: RawEndpoint,
		repo:     repo,
		branch:   branch,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewClientWithEndpoint creates a client with a custom endpoint (for testing).
func NewClientWithEndpoint(endpoint, repo, branch string, timeout time.Duration) *Client {
	c := NewClient(repo, branch, timeout)
	c.endpoint = endpoint
	return c
}

// BaseURL returns the URL prefix files are fetched from.
func (c *Client) BaseURL() string {
	return fmt.Sprintf("%s/%s/%s", c.endpoint, c.repo, c.branch)
}

// Fetch downloads a single file from the repository root and returns
// its contents.
func (c *Client) Fetch(ctx context.Context, name string) ([]byte, error) {
	fileURL := c.BaseURL() + "/" + url.PathEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s returned status %d", fileURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return body, nil
}

// Probe performs a single request against target and reports whether it
// completed within the timeout. Used as the preflight reachability
// check before any mutation happens.
func Probe(ctx context.Context, target string, timeout time.Duration) error {
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	// Any completed response proves the host is reachable; the status
	// code does not matter here.
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
