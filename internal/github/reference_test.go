package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReference(t *testing.T) {
	tests := map[string]struct {
		link     string
		origin   string
		expected *Reference
		wantErr  bool
	}{
		"pull request URL": {
			link:     "https://github.com/owner/repo/pull/123",
			expected: &Reference{Kind: KindPull, Owner: "owner", Repo: "repo", ID: "123"},
		},
		"issue URL": {
			link:     "https://github.com/owner/repo/issues/42",
			expected: &Reference{Kind: KindIssue, Owner: "owner", Repo: "repo", ID: "42"},
		},
		"commit URL": {
			link:     "https://github.com/owner/repo/commit/abc1234def",
			expected: &Reference{Kind: KindCommit, Owner: "owner", Repo: "repo", ID: "abc1234def"},
		},
		"bare hash with https origin": {
			link:     "ABC1234",
			origin:   "https://github.com/owner/repo.git",
			expected: &Reference{Kind: KindCommit, Owner: "owner", Repo: "repo", ID: "abc1234"},
		},
		"bare hash with ssh origin": {
			link:     "abc1234",
			origin:   "git@github.com:owner/repo.git",
			expected: &Reference{Kind: KindCommit, Owner: "owner", Repo: "repo", ID: "abc1234"},
		},
		"bare hash without origin": {
			link:    "abc1234",
			origin:  "",
			wantErr: true,
		},
		"short hex is still a hash": {
			link:     "deadbee",
			origin:   "https://github.com/owner/repo",
			expected: &Reference{Kind: KindCommit, Owner: "owner", Repo: "repo", ID: "deadbee"},
		},
		"too short for a hash": {
			link:    "abc123",
			wantErr: true,
		},
		"arbitrary text": {
			link:    "not a link",
			wantErr: true,
		},
		"non-github URL": {
			link:    "https://gitlab.com/owner/repo/pull/1",
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ref, err := ParseReference(tt.link, tt.origin)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ref)
		})
	}
}

func TestReferenceDisplay(t *testing.T) {
	tests := map[string]struct {
		ref      Reference
		title    string
		expected string
	}{
		"pull with title": {
			ref:      Reference{Kind: KindPull, Owner: "o", Repo: "r", ID: "123"},
			title:    "Fix crash on empty input",
			expected: "Fix crash on empty input ([#123](https://github.com/o/r/pull/123))",
		},
		"issue with title": {
			ref:      Reference{Kind: KindIssue, Owner: "o", Repo: "r", ID: "42"},
			title:    "Parser drops blank lines",
			expected: "Parser drops blank lines ([#42](https://github.com/o/r/issues/42))",
		},
		"commit abbreviates hash": {
			ref:      Reference{Kind: KindCommit, Owner: "o", Repo: "r", ID: "abc1234def5678"},
			title:    "Speed up rendering",
			expected: "Speed up rendering ([abc1234](https://github.com/o/r/commit/abc1234def5678))",
		},
		"no title falls back to bare link": {
			ref:      Reference{Kind: KindPull, Owner: "o", Repo: "r", ID: "7"},
			title:    "",
			expected: "[#7](https://github.com/o/r/pull/7)",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ref.Display(tt.title))
		})
	}
}

func TestClientResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/o/r/pulls/123":
			w.Write([]byte(`{"title": "Add dark mode"}`))
		case "/repos/o/r/issues/42":
			w.Write([]byte(`{"title": "Crash on startup"}`))
		case "/repos/o/r/commits/abc1234":
			w.Write([]byte(`{"commit": {"message": "Fix the thing\n\nLonger body."}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := &Client{BaseURL: srv.URL, httpClient: srv.Client()}

	t.Run("pull request", func(t *testing.T) {
		got, err := client.Resolve(context.Background(), &Reference{Kind: KindPull, Owner: "o", Repo: "r", ID: "123"})
		require.NoError(t, err)
		assert.Equal(t, "Add dark mode ([#123](https://github.com/o/r/pull/123))", got)
	})

	t.Run("issue", func(t *testing.T) {
		got, err := client.Resolve(context.Background(), &Reference{Kind: KindIssue, Owner: "o", Repo: "r", ID: "42"})
		require.NoError(t, err)
		assert.Equal(t, "Crash on startup ([#42](https://github.com/o/r/issues/42))", got)
	})

	t.Run("commit uses first message line", func(t *testing.T) {
		got, err := client.Resolve(context.Background(), &Reference{Kind: KindCommit, Owner: "o", Repo: "r", ID: "abc1234"})
		require.NoError(t, err)
		assert.Equal(t, "Fix the thing ([abc1234](https://github.com/o/r/commit/abc1234))", got)
	})

	t.Run("api error propagates", func(t *testing.T) {
		_, err := client.Resolve(context.Background(), &Reference{Kind: KindPull, Owner: "o", Repo: "r", ID: "999"})
		assert.Error(t, err)
	})
}
