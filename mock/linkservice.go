package mock

import (
	"context"

	"github.com/fwojciec/pagelinks"
)

var _ pagelinks.LinkService = (*LinkService)(nil)

// LinkService is a mock implementation of pagelinks.LinkService.
type LinkService struct {
	FetchLinksFn func(ctx context.Context, url string) ([]pagelinks.Link, error)
}

func (s *LinkService) FetchLinks(ctx context.Context, url string) ([]pagelinks.Link, error) {
	return s.FetchLinksFn(ctx, url)
}
