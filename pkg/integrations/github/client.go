package github

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/manivaultstudio/plugintable/pkg/integrations"
)

// Public github.com endpoints.
const (
	DefaultAPIURL = "https://api.github.com"
	DefaultRawURL = "https://raw.githubusercontent.com"
)

const (
	// apiAccept selects the v3 REST representation. Only API requests send it;
	// the raw content host serves files as-is.
	apiAccept = "application/vnd.github.v3+json"

	// branchPageSize is the largest page the branches endpoint accepts.
	branchPageSize = 100
)

// Client reads repository files and branch lists from GitHub.
// Requests are unauthenticated.
type Client struct {
	*integrations.Client
	apiURL string
	rawURL string
}

// NewClient creates a GitHub client whose requests are each bounded by
// timeout. A non-positive timeout selects [integrations.DefaultTimeout].
func NewClient(timeout time.Duration) *Client {
	return NewClientWithURLs(DefaultAPIURL, DefaultRawURL, timeout)
}

// NewClientWithURLs creates a client for a GitHub-compatible host, such as
// GitHub Enterprise, with its REST API at apiURL and raw content at rawURL.
// Empty URLs select the github.com endpoints.
func NewClientWithURLs(apiURL, rawURL string, timeout time.Duration) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if rawURL == "" {
		rawURL = DefaultRawURL
	}
	return &Client{
		Client: integrations.NewClient(nil, timeout),
		apiURL: strings.TrimRight(apiURL, "/"),
		rawURL: strings.TrimRight(rawURL, "/"),
	}
}

// FetchFile downloads path from the tip of branch via raw.githubusercontent.com.
// It returns [integrations.ErrNotFound] when the file, branch or repository
// does not exist.
func (c *Client) FetchFile(ctx context.Context, owner, repo, branch, path string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s/%s/%s/%s", c.rawURL, owner, repo, branch, path)
	data, err := c.GetBytes(ctx, url)
	if err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s/%s@%s:%s", err, owner, repo, branch, path)
		}
		return nil, err
	}
	return data, nil
}

// ListBranches returns the first page (up to 100) of the repository's
// branches in API order.
func (c *Client) ListBranches(ctx context.Context, owner, repo string) ([]Branch, error) {
	var data []branchResponse
	url := fmt.Sprintf("%s/repos/%s/%s/branches?per_page=%d", c.apiURL, owner, repo, branchPageSize)
	if err := c.GetWithHeaders(ctx, url, map[string]string{"Accept": apiAccept}, &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: github repo %s/%s", err, owner, repo)
		}
		return nil, err
	}

	branches := make([]Branch, 0, len(data))
	for _, b := range data {
		branches = append(branches, Branch{Name: b.Name})
	}
	return branches, nil
}

// BranchNames returns the names of branches in order.
func BranchNames(branches []Branch) []string {
	names := make([]string, len(branches))
	for i, b := range branches {
		names[i] = b.Name
	}
	return names
}
