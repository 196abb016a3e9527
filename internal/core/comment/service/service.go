package commentapp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"yatube/internal/core/apperr"
	commentEntity "yatube/internal/core/comment"
	commentPort "yatube/internal/ports/comment"
	postPort "yatube/internal/ports/post"
)

type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
	Now               func() time.Time
	logger            *zap.Logger
}

func NewCommentService(repo commentPort.CommentRepository, posts postPort.PostRepository, logger *zap.Logger) *CommentService {
	return &CommentService{
		CommentRepository: repo,
		PostRepository:    posts,
		Now:               time.Now,
		logger:            logger,
	}
}

// AddComment attaches a comment by authorID to postID. The post is looked
// up before the form is checked, so an unknown post is always ErrNotFound.
func (s *CommentService) AddComment(ctx context.Context, postID, authorID string, in commentPort.CommentInput) (*commentPort.CommentDTO, error) {
	pid, err := uuid.FromString(postID)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	p, err := s.PostRepository.FindByID(ctx, pid)
	if err != nil {
		return nil, err
	}

	aid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, fmt.Errorf("invalid userID: %w", err)
	}

	in.Text = strings.TrimSpace(in.Text)
	if err := apperr.Validate(in); err != nil {
		return nil, err
	}

	c, err := s.CommentRepository.Create(ctx, &commentEntity.Comment{
		ID:       uuid.Must(uuid.NewV4()),
		PostID:   p.ID,
		AuthorID: aid,
		Text:     in.Text,
		Created:  s.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	s.logger.Info("Comment added", zap.String("post_id", postID), zap.String("author_id", authorID))
	return commentPort.ToCommentDTO(c), nil
}
