package followapp

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"yatube/internal/core/apperr"
	followEntity "yatube/internal/core/follow"
	followPort "yatube/internal/ports/follow"
	userPort "yatube/internal/ports/user"
)

type FollowService struct {
	FollowRepository followPort.FollowRepository
	UserRepository   userPort.UserRepository
	logger           *zap.Logger
}

func NewFollowService(repo followPort.FollowRepository, users userPort.UserRepository, logger *zap.Logger) *FollowService {
	return &FollowService{
		FollowRepository: repo,
		UserRepository:   users,
		logger:           logger,
	}
}

// Follow makes actorID follow the user called username. Following yourself
// or someone you already follow changes nothing.
func (s *FollowService) Follow(ctx context.Context, actorID, username string) (followPort.FollowOutcome, error) {
	actor, err := uuid.FromString(actorID)
	if err != nil {
		return 0, fmt.Errorf("invalid userID: %w", err)
	}
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return 0, err
	}

	if author.ID == actor {
		s.logger.Warn("Cannot follow yourself", zap.String("userID", actorID))
		return followPort.FollowSelfDenied, nil
	}

	exists, err := s.FollowRepository.Exists(ctx, actor, author.ID)
	if err != nil {
		return 0, err
	}
	if exists {
		return followPort.FollowAlreadyExists, nil
	}

	if err := s.FollowRepository.Create(ctx, &followEntity.Follow{
		ID:       uuid.Must(uuid.NewV4()),
		UserID:   actor,
		AuthorID: author.ID,
	}); err != nil {
		return 0, fmt.Errorf("failed to follow: %w", err)
	}

	s.logger.Info("User followed", zap.String("userID", actorID), zap.String("author", username))
	return followPort.FollowCreated, nil
}

// Unfollow removes the edge. A missing user or a missing edge is ErrNotFound.
func (s *FollowService) Unfollow(ctx context.Context, actorID, username string) error {
	actor, err := uuid.FromString(actorID)
	if err != nil {
		return fmt.Errorf("invalid userID: %w", err)
	}
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	n, err := s.FollowRepository.Delete(ctx, actor, author.ID)
	if err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}
	if n == 0 {
		return apperr.ErrNotFound
	}

	s.logger.Info("User unfollowed", zap.String("userID", actorID), zap.String("author", username))
	return nil
}

// IsFollowing reports whether actorID follows authorID. An empty actor (an
// anonymous visitor) follows nobody.
func (s *FollowService) IsFollowing(ctx context.Context, actorID, authorID string) (bool, error) {
	if actorID == "" {
		return false, nil
	}
	actor, err := uuid.FromString(actorID)
	if err != nil {
		return false, fmt.Errorf("invalid userID: %w", err)
	}
	author, err := uuid.FromString(authorID)
	if err != nil {
		return false, fmt.Errorf("invalid authorID: %w", err)
	}
	return s.FollowRepository.Exists(ctx, actor, author)
}
