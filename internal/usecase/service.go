// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"

	"ghactivity/internal/gateway"
)

// Service is the use case for reporting a user's recent activity.
// It orchestrates fetching the events and rendering them as text.
type Service struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewService creates a new Service instance.
func NewService(fetcher gateway.Fetcher, logger *log.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		logger:  logger,
	}
}

// ActivityLines fetches the user's recent events and returns one formatted
// line per event, in API order (most recent first). Events without a type tag
// are skipped with a warning; formatting never fails the run.
func (s *Service) ActivityLines(ctx context.Context, username string) ([]string, error) {
	events, err := s.fetcher.FetchUserEvents(ctx, username)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(events))
	for _, event := range events {
		if event.Type == "" {
			s.logger.Printf("Skipping event with no type (repo %q)", event.Repo)
			continue
		}
		lines = append(lines, formatEvent(event))
	}
	return lines, nil
}
