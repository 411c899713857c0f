// Package remote confirms that the repository and commit referenced by a
// submission exist, by issuing single GET requests against the hosting
// provider.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/w0lphi/SE2Einzelprojekt/internal/outcome"
)

// DefaultTimeout caps each individual remote call.
const DefaultTimeout = 10 * time.Second

// acceptHeader asks the provider API for a structured v3 response.
const acceptHeader = "application/vnd.github.v3+json"

type Checker struct {
	client     *http.Client
	timeout    time.Duration
	apiBaseURL string
}

// NewChecker creates a checker with the given options applied. Without
// options it uses a fresh client with the default timeout and derives the
// provider API host from the repository URL.
func NewChecker(options ...func(*Checker)) *Checker {
	checker := &Checker{timeout: DefaultTimeout}

	for _, option := range options {
		option(checker)
	}

	if checker.client == nil {
		checker.client = &http.Client{
			Timeout: checker.timeout,
			// A redirect is not an existence confirmation, only a direct 200 is.
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}

	return checker
}

// Close releases the connections held by the checker's client.
func (c *Checker) Close() {
	c.client.CloseIdleConnections()
}

// ConfirmedRepository proves that a repository responded 200 to the
// repository check. A commit can only be checked against a confirmed
// repository.
type ConfirmedRepository struct {
	url *url.URL
}

func (r ConfirmedRepository) URL() string {
	return r.url.String()
}

// CheckRepository issues a single unauthenticated GET against the repository
// URL. Anything but a direct 200 fails the check, there is no distinction
// between a missing repository, a private one and an unreachable network.
func (c *Checker) CheckRepository(ctx context.Context, repositoryURL string) (ConfirmedRepository, error) {
	parsedURL, err := url.Parse(repositoryURL)
	if err != nil {
		return ConfirmedRepository{}, outcome.Fail(outcome.RepositoryValidationFailed, fmt.Errorf("failed to parse repository url %s, reason: %v", repositoryURL, err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsedURL.String(), nil)
	if err != nil {
		return ConfirmedRepository{}, outcome.Fail(outcome.RepositoryValidationFailed, fmt.Errorf("failed to create the request, reason: %v", err))
	}

	res, err := c.client.Do(req)
	if err != nil {
		return ConfirmedRepository{}, outcome.Fail(outcome.RepositoryValidationFailed, fmt.Errorf("failed to get response from %s, reason: %v", repositoryURL, err))
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return ConfirmedRepository{}, outcome.Fail(outcome.RepositoryValidationFailed, fmt.Errorf("server returned status %d for url: %s", res.StatusCode, repositoryURL))
	}

	return ConfirmedRepository{url: parsedURL}, nil
}

// CheckCommit issues a GET against the commit lookup endpoint of the
// provider API for the confirmed repository. The commit hash format is not
// checked locally, the provider decides what it accepts.
func (c *Checker) CheckCommit(ctx context.Context, repository ConfirmedRepository, commitHash string) error {
	lookupURL := c.commitLookupURL(repository, commitHash)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return outcome.Fail(outcome.CommitValidationFailed, fmt.Errorf("failed to create the request, reason: %v", err))
	}
	req.Header.Add("Accept", acceptHeader)

	res, err := c.client.Do(req)
	if err != nil {
		return outcome.Fail(outcome.CommitValidationFailed, fmt.Errorf("failed to get response from %s, reason: %v", lookupURL, err))
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return outcome.Fail(outcome.CommitValidationFailed, fmt.Errorf("server returned status %d for url: %s", res.StatusCode, lookupURL))
	}

	return nil
}

// commitLookupURL builds <api-host>/repos/<owner>/<repo>/commits/<hash>,
// deriving the API host from the repository host unless an override is set.
func (c *Checker) commitLookupURL(repository ConfirmedRepository, commitHash string) string {
	base := c.apiBaseURL
	if base == "" {
		base = fmt.Sprintf("%s://api.%s", repository.url.Scheme, repository.url.Host)
	}

	repositoryPath := strings.TrimSuffix(repository.url.Path, "/")

	return fmt.Sprintf("%s/repos%s/commits/%s", strings.TrimSuffix(base, "/"), repositoryPath, commitHash)
}
