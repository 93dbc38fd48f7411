package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"reviewhub/internal/logging"
	"reviewhub/internal/model"
	"reviewhub/internal/repository"
)

// TokenDenylist records tokens revoked before their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// IdentityResolver turns an Authorization header into a live user. All
// credential problems come back as the bare ErrUnauthorized so callers cannot
// tell a bad token from a deleted user.
type IdentityResolver struct {
	tokens   *TokenService
	userRepo *repository.UserRepository
	denylist TokenDenylist
	log      logging.Logger
}

func NewIdentityResolver(tokens *TokenService, userRepo *repository.UserRepository, denylist TokenDenylist, log logging.Logger) *IdentityResolver {
	return &IdentityResolver{
		tokens:   tokens,
		userRepo: userRepo,
		denylist: denylist,
		log:      log,
	}
}

func (r *IdentityResolver) Resolve(ctx context.Context, authorization string) (*model.User, error) {
	token, err := BearerToken(authorization)
	if err != nil {
		return nil, r.reject(ctx, "malformed authorization header", err)
	}

	claims, err := r.tokens.Verify(token)
	if err != nil {
		return nil, r.reject(ctx, "token verification failed", err)
	}

	if r.denylist != nil && claims.ID != "" {
		revoked, err := r.denylist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("check token revocation failed: %w", err)
		}
		if revoked {
			return nil, r.reject(ctx, "token revoked", nil, "jti", claims.ID)
		}
	}

	user, err := r.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, r.reject(ctx, "token user no longer exists", nil, "user_id", claims.UserID)
	}
	return user, nil
}

func (r *IdentityResolver) reject(ctx context.Context, reason string, cause error, args ...any) error {
	if r.log != nil {
		if cause != nil {
			args = append(args, "error", cause)
		}
		r.log.Warn(ctx, "authentication rejected: "+reason, args...)
	}
	return ErrUnauthorized
}

// BearerToken extracts the token from a "Bearer <token>" header value. The
// scheme is matched case-insensitively.
func BearerToken(authorization string) (string, error) {
	parts := strings.Fields(authorization)
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: missing authorization header", ErrUnauthorized)
	}
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", fmt.Errorf("%w: authorization header must be Bearer {token}", ErrUnauthorized)
	}
	return parts[1], nil
}
