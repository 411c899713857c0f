package remote

import (
	"net/http"
	"time"
)

// Timeout sets the per-request timeout of the checker's client.
func Timeout(v time.Duration) func(*Checker) {
	return func(checker *Checker) {
		checker.timeout = v
	}
}

// HTTPClient sets the client used for both checks. When given, the client is
// used as is and Timeout has no effect.
func HTTPClient(v *http.Client) func(*Checker) {
	return func(checker *Checker) {
		checker.client = v
	}
}

// APIBaseURL overrides the provider API base that is otherwise derived from
// the repository host.
func APIBaseURL(v string) func(*Checker) {
	return func(checker *Checker) {
		checker.apiBaseURL = v
	}
}
