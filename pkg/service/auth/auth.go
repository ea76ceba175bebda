// Package auth provides login and JWT issuance.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/eaglebank/eaglebank/pkg/config"
	"github.com/eaglebank/eaglebank/pkg/domain"
	"github.com/eaglebank/eaglebank/pkg/dto"
	"github.com/eaglebank/eaglebank/pkg/repository"
	"github.com/eaglebank/eaglebank/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCredentials is returned when the email or password is wrong.
// The same error covers both cases so callers cannot probe for registered
// emails.
var ErrInvalidCredentials = errors.New("invalid email or password")

// dummyHash keeps password verification constant-shape when the email is
// unknown.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Service authenticates users and issues bearer tokens.
type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
}

// New creates an auth Service.
func New(uow repository.UnitOfWork, cfg *config.Jwt, logger *slog.Logger) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// Login verifies the email/password pair and returns the matching user.
func (s *Service) Login(ctx context.Context, email, password string) (*dto.UserRead, error) {
	u, err := s.uow.UserRepository().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			utils.CheckPasswordHash(password, dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, u.Password) {
		s.logger.Warn("failed login attempt", "email", email)
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GenerateToken issues an HS256 JWT carrying the user id and email.
func (s *Service) GenerateToken(u *dto.UserRead) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = u.Email
	claims["user_id"] = u.ID
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	return token.SignedString([]byte(s.cfg.Secret))
}

// ParseUserID extracts the acting user id from a verified token.
func (s *Service) ParseUserID(token *jwt.Token) (string, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCredentials
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidCredentials
	}
	return userID, nil
}
