package middleware

import (
	"context"
	"strings"

	"github.com/timecraft-lab/backend/internal/model"
	"github.com/timecraft-lab/backend/internal/repository"
	"github.com/timecraft-lab/backend/pkg/authenticator"
	"github.com/timecraft-lab/backend/pkg/errorx"
	"github.com/timecraft-lab/backend/pkg/router"
	"github.com/timecraft-lab/backend/pkg/xcontext"
)

// Authenticate verifies the bearer token and resolves the requesting
// user. A token whose user no longer exists (deleted account) is as
// invalid as a forged one.
func Authenticate(
	tokenEngine authenticator.TokenEngine[model.AccessToken],
	userRepo repository.UserRepository,
) router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		authorization := xcontext.HTTPRequest(ctx).Header.Get("Authorization")
		scheme, token, found := strings.Cut(authorization, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		accessToken, err := tokenEngine.Verify(token)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return nil, errorx.New(errorx.Unauthenticated, "Invalid or expired access token")
		}

		if _, err := userRepo.GetByID(ctx, accessToken.ID); err != nil {
			xcontext.Logger(ctx).Debugf("Cannot get token user: %v", err)
			return nil, errorx.New(errorx.Unauthenticated, "Invalid or expired access token")
		}

		return xcontext.WithRequestUserID(ctx, accessToken.ID), nil
	}
}
