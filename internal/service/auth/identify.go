package auth

import (
	"context"

	"github.com/languidpie/smit-homework-v2/internal/domain"
	"github.com/languidpie/smit-homework-v2/pkg/ctxutil"
)

// Identify returns the authenticated principal carried by the request
// context, or Unauthorized when there is none.
func (s *Service) Identify(ctx context.Context) (domain.Principal, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	return p, nil
}
