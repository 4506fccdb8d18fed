package search

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Client defines the search provider operations required by the domain layer
type Client interface {
	Search(ctx context.Context, req Request) (*Response, error)
}

// Service orchestrates provider search while remaining transport-agnostic.
// Search is an enrichment feature, not a critical path: any client failure is
// degraded to an empty response here so callers never see an error.
type Service struct {
	client Client
}

// NewService creates a new search service
func NewService(client Client) *Service {
	return &Service{
		client: client,
	}
}

// Search performs a web search. It never fails: provider errors, missing
// credentials and governor denials all yield an empty result set.
func (s *Service) Search(ctx context.Context, req Request) *Response {
	resp, err := s.client.Search(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("query", req.Query).Msg("search degraded to empty result")
		return Empty()
	}
	if resp == nil {
		return Empty()
	}
	return resp
}
