package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultTimeout bounds a single GitHub API lookup.
const DefaultTimeout = 10 * time.Second

// Client resolves references against the GitHub REST API.
type Client struct {
	// BaseURL is the API root. Overridable for testing.
	BaseURL string
	// Token is sent as a bearer token when non-empty.
	Token string

	httpClient *http.Client
}

// NewClient returns a client for api.github.com, authenticating with the
// GITHUB_TOKEN environment variable when it is set.
func NewClient() *Client {
	return &Client{
		BaseURL:    "https://api.github.com",
		Token:      os.Getenv("GITHUB_TOKEN"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Resolve fetches the human-readable title of the reference (the PR or
// issue title, or the first line of the commit message) and returns the
// formatted changelog entry text. Failures are propagated verbatim; the
// caller decides how to surface them.
func (c *Client) Resolve(ctx context.Context, ref *Reference) (string, error) {
	var endpoint string
	switch ref.Kind {
	case KindPull:
		endpoint = fmt.Sprintf("%s/repos/%s/%s/pulls/%s", c.BaseURL, ref.Owner, ref.Repo, ref.ID)
	case KindIssue:
		endpoint = fmt.Sprintf("%s/repos/%s/%s/issues/%s", c.BaseURL, ref.Owner, ref.Repo, ref.ID)
	default:
		endpoint = fmt.Sprintf("%s/repos/%s/%s/commits/%s", c.BaseURL, ref.Owner, ref.Repo, ref.ID)
	}

	title, err := c.fetchTitle(ctx, endpoint, ref.Kind)
	if err != nil {
		return "", err
	}
	return ref.Display(title), nil
}

// fetchTitle performs the API request and extracts the title field for the
// reference kind.
func (c *Client) fetchTitle(ctx context.Context, endpoint string, kind Kind) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GitHub API returned %s for %s", resp.Status, endpoint)
	}

	if kind == KindCommit {
		var body struct {
			Commit struct {
				Message string `json:"message"`
			} `json:"commit"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return "", fmt.Errorf("decoding commit response: %w", err)
		}
		message, _, _ := strings.Cut(body.Commit.Message, "\n")
		return message, nil
	}

	var body struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return body.Title, nil
}
