// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-github/v62/github"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"ghactivity/internal/domain"
)

const (
	// userAgent identifies this tool to the API, as required for
	// unauthenticated requests.
	userAgent = "GitHub-Activity-CLI/1.0"

	// requestTimeout bounds the single outbound request.
	requestTimeout = 10 * time.Second

	// maxEvents caps how many events one run reports.
	maxEvents = 10
)

// Fetcher defines the behavior of a gateway for fetching a user's activity.
type Fetcher interface {
	FetchUserEvents(ctx context.Context, username string) ([]domain.Event, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	logger     *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// The rate limit wrapper is configured to never sleep: a detected secondary
// rate limit propagates as the original 403 so the run stays single-attempt.
func NewGitHubGateway(logger *log.Logger) (Fetcher, error) {
	rateLimitGuard, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(0, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit guard: %w", err)
	}
	httpClient := &http.Client{
		Transport: rateLimitGuard,
		Timeout:   requestTimeout,
	}
	restClient := github.NewClient(httpClient)
	restClient.UserAgent = userAgent
	return &GitHubGateway{
		restClient: restClient,
		logger:     logger,
	}, nil
}

// FetchUserEvents performs one GET against /users/{username}/events and
// returns at most maxEvents entries in API order (most recent first).
func (g *GitHubGateway) FetchUserEvents(ctx context.Context, username string) ([]domain.Event, error) {
	g.logger.Printf("Fetching recent activity for user %q...", username)

	opts := &github.ListOptions{PerPage: maxEvents}
	rawEvents, _, err := g.restClient.Activity.ListEventsPerformedByUser(ctx, username, false, opts)
	if err != nil {
		return nil, classifyError(err, username)
	}

	if len(rawEvents) > maxEvents {
		rawEvents = rawEvents[:maxEvents]
	}

	events := make([]domain.Event, 0, len(rawEvents))
	for _, raw := range rawEvents {
		payload, parseErr := raw.ParsePayload()
		if parseErr != nil {
			// Best effort: keep the event, drop only its payload.
			g.logger.Printf("  Could not parse payload of a %s: %v", raw.GetType(), parseErr)
			payload = nil
		}
		events = append(events, domain.Event{
			Type:      raw.GetType(),
			Repo:      raw.GetRepo().GetName(),
			CreatedAt: raw.GetCreatedAt().Time,
			Payload:   payload,
		})
	}

	g.logger.Printf("Completed fetching activity: %d event(s).", len(events))
	return events, nil
}

// classifyError maps a go-github client error onto the gateway error taxonomy.
func classifyError(err error, username string) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &RateLimitError{}
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &RateLimitError{}
	}

	var apiErr *github.ErrorResponse
	if errors.As(err, &apiErr) {
		status := 0
		if apiErr.Response != nil {
			status = apiErr.Response.StatusCode
		}
		switch status {
		case http.StatusNotFound:
			return &UserNotFoundError{Username: username}
		case http.StatusForbidden:
			return &RateLimitError{}
		default:
			return &APIError{StatusCode: status, Snippet: apiErr.Message}
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &ParseError{Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &NetworkError{Err: urlErr.Err}
	}
	return &NetworkError{Err: err}
}
