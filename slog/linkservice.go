// Package slog provides logging decorators for pagelinks services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagelinks"
)

// Ensure LinkService implements pagelinks.LinkService.
var _ pagelinks.LinkService = (*LinkService)(nil)

// LinkService wraps a pagelinks.LinkService with structured logging.
type LinkService struct {
	next   pagelinks.LinkService
	logger *slog.Logger
}

// NewLinkService creates a new logging LinkService.
func NewLinkService(next pagelinks.LinkService, logger *slog.Logger) *LinkService {
	return &LinkService{next: next, logger: logger}
}

// FetchLinks delegates to the wrapped service and logs the outcome.
func (s *LinkService) FetchLinks(ctx context.Context, url string) ([]pagelinks.Link, error) {
	begin := time.Now()

	links, err := s.next.FetchLinks(ctx, url)
	if err != nil {
		s.logger.Error("fetch links",
			"url", url,
			"duration", time.Since(begin),
			"code", pagelinks.ErrorCode(err),
			"error", pagelinks.ErrorMessage(err),
		)
		return nil, err
	}

	s.logger.Info("fetch links",
		"url", url,
		"links", len(links),
		"duration", time.Since(begin),
	)
	return links, nil
}
