package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// Service issues guest identities and resolves bearer tokens
type Service struct {
	users        persistence.UserRepository
	codec        coreport.TokenCodec
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new auth service
func NewService(
	users persistence.UserRepository,
	codec coreport.TokenCodec,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		users:        users,
		codec:        codec,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// IssueGuest creates a guest user with a random handle and returns its bearer token
func (s *Service) IssueGuest(ctx context.Context) (*usecase.GuestSession, error) {
	handle, err := entity.GenerateGuestHandle()
	if err != nil {
		return nil, err
	}

	user, err := entity.NewUser(uuid.NewString(), handle, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create guest user", map[string]any{
			"handle": handle,
			"error":  err.Error(),
		})
		return nil, err
	}

	token, err := s.codec.Encode(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("Guest user created", map[string]any{
		"user_id": user.ID,
		"handle":  user.Handle,
	})
	return &usecase.GuestSession{Token: token, User: user}, nil
}

// Authenticate resolves a bearer token to an existing user
func (s *Service) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errs.ErrUnauthenticated
	}

	userID, err := s.codec.Decode(token)
	if err != nil {
		s.logger.Debug("Rejected bearer token", map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("%w: %s", errs.ErrUnauthenticated, err.Error())
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}
