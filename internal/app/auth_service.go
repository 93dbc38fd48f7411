package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"reviewhub/internal/logging"
	"reviewhub/internal/model"
	"reviewhub/internal/repository"
)

const maxPasswordBytes = 72

type AuthService struct {
	userRepo   *repository.UserRepository
	tokens     *TokenService
	denylist   TokenDenylist
	bcryptCost int
	dummyHash  []byte
	log        logging.Logger
}

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type AuthResult struct {
	Token string
	User  *model.User
}

func NewAuthService(
	userRepo *repository.UserRepository,
	tokens *TokenService,
	denylist TokenDenylist,
	bcryptCost int,
	log logging.Logger,
) (*AuthService, error) {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range", bcryptCost)
	}
	// compared against when the username is unknown, so both paths pay for a hash
	dummy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash dummy password failed: %w", err)
	}
	return &AuthService{
		userRepo:   userRepo,
		tokens:     tokens,
		denylist:   denylist,
		bcryptCost: bcryptCost,
		dummyHash:  dummy,
		log:        log,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	if input.Password == "" || len(input.Password) > maxPasswordBytes {
		return nil, ErrInvalidPassword
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}
	return user, nil
}

// VerifyCredentials returns the user when password matches the stored hash.
// Unknown usernames and wrong passwords yield the same error. bcrypt only
// reads the first 72 bytes, so longer passwords can never be the registered
// one and are rejected outright.
func (s *AuthService) VerifyCredentials(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	if len(password) > maxPasswordBytes {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password[:maxPasswordBytes]))
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.VerifyCredentials(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Logout revokes the presented token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return ErrUnauthorized
	}
	if s.denylist == nil || claims.ID == "" {
		if s.log != nil {
			s.log.Warn(ctx, "token revocation unavailable, token stays valid until expiry", "user_id", claims.UserID)
		}
		return nil
	}
	if err := s.denylist.Revoke(ctx, claims.ID, s.tokens.RemainingTTL(claims)); err != nil {
		return fmt.Errorf("revoke token failed: %w", err)
	}
	return nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
