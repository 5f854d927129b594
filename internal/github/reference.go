// Package github provides the link-resolution collaborator for the changelog
// CLI. It recognizes commit hashes, pull request URLs and issue URLs, fetches
// the human-readable title from the GitHub API, and formats the display
// string that becomes a changelog entry. The document model never sees any
// of this; it receives the final string as opaque list-item text.
package github

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind discriminates the recognized reference patterns.
type Kind int

const (
	// KindCommit is a commit hash or commit URL.
	KindCommit Kind = iota
	// KindPull is a pull request URL.
	KindPull
	// KindIssue is an issue URL.
	KindIssue
)

var (
	commitURLPattern = regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/]+)/commit/([0-9a-fA-F]{7,40})/?$`)
	pullURLPattern   = regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/]+)/pull/(\d+)/?$`)
	issueURLPattern  = regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/]+)/issues/(\d+)/?$`)
	bareHashPattern  = regexp.MustCompile(`^[0-9a-fA-F]{7,40}$`)

	remoteHTTPSPattern = regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)
	remoteSSHPattern   = regexp.MustCompile(`^git@github\.com:([^/]+)/([^/]+?)(?:\.git)?$`)
)

// Reference is a parsed commit, pull request or issue reference.
type Reference struct {
	Kind  Kind
	Owner string
	Repo  string
	// ID is the commit hash or the pull/issue number.
	ID string
}

// ParseReference parses link into a Reference. Recognized patterns are
// commit URLs, pull request URLs, issue URLs, and bare commit hashes; for
// bare hashes the owner and repository are taken from originURL, the URL of
// the enclosing repository's origin remote. Anything else is an error.
func ParseReference(link, originURL string) (*Reference, error) {
	if m := commitURLPattern.FindStringSubmatch(link); m != nil {
		return &Reference{Kind: KindCommit, Owner: m[1], Repo: m[2], ID: strings.ToLower(m[3])}, nil
	}
	if m := pullURLPattern.FindStringSubmatch(link); m != nil {
		return &Reference{Kind: KindPull, Owner: m[1], Repo: m[2], ID: m[3]}, nil
	}
	if m := issueURLPattern.FindStringSubmatch(link); m != nil {
		return &Reference{Kind: KindIssue, Owner: m[1], Repo: m[2], ID: m[3]}, nil
	}

	if bareHashPattern.MatchString(link) {
		owner, repo, err := parseOriginURL(originURL)
		if err != nil {
			return nil, fmt.Errorf("commit hash %s: %w", link, err)
		}
		return &Reference{Kind: KindCommit, Owner: owner, Repo: repo, ID: strings.ToLower(link)}, nil
	}

	return nil, fmt.Errorf("%q is not a commit hash, PR URL or issue URL", link)
}

// parseOriginURL extracts owner and repository from an origin remote URL in
// either HTTPS or SSH form.
func parseOriginURL(originURL string) (owner, repo string, err error) {
	if m := remoteHTTPSPattern.FindStringSubmatch(originURL); m != nil {
		return m[1], m[2], nil
	}
	if m := remoteSSHPattern.FindStringSubmatch(originURL); m != nil {
		return m[1], m[2], nil
	}
	return "", "", fmt.Errorf("cannot determine owner/repo from remote %q", originURL)
}

// URL returns the browser URL of the reference.
func (r *Reference) URL() string {
	switch r.Kind {
	case KindPull:
		return fmt.Sprintf("https://github.com/%s/%s/pull/%s", r.Owner, r.Repo, r.ID)
	case KindIssue:
		return fmt.Sprintf("https://github.com/%s/%s/issues/%s", r.Owner, r.Repo, r.ID)
	default:
		return fmt.Sprintf("https://github.com/%s/%s/commit/%s", r.Owner, r.Repo, r.ID)
	}
}

// label returns the short markdown link label: "#123" for pulls and issues,
// the abbreviated hash for commits.
func (r *Reference) label() string {
	if r.Kind == KindCommit {
		if len(r.ID) > 7 {
			return r.ID[:7]
		}
		return r.ID
	}
	return "#" + r.ID
}

// Display formats the changelog entry text for the reference: the resolved
// title followed by a markdown link, e.g.
// "Fix crash on empty input ([#123](https://github.com/o/r/pull/123))".
func (r *Reference) Display(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Sprintf("[%s](%s)", r.label(), r.URL())
	}
	return fmt.Sprintf("%s ([%s](%s))", title, r.label(), r.URL())
}
