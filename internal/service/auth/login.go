package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/alphalearn-backend/internal/auth"
	"github.com/heartmarshall/alphalearn-backend/internal/domain"
)

// LoginResult is returned by a successful Login.
type LoginResult struct {
	Identity auth.Identity
	Token    string
}

// Login checks credentials and issues a session token. An unknown username
// yields domain.ErrIncorrectUsername, a wrong password domain.ErrIncorrectPassword.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrIncorrectUsername
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrIncorrectPassword
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))

	return &LoginResult{
		Identity: auth.Identity{UserID: user.ID, Username: user.Username},
		Token:    token,
	}, nil
}
