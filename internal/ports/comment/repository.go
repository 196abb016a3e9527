package comment

import (
	"context"
	"time"

	"github.com/gofrs/uuid"

	"yatube/internal/core/comment"
	userPort "yatube/internal/ports/user"
)

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*comment.Comment, error)
}

type CommentDTO struct {
	ID      string            `json:"id"`
	PostID  string            `json:"post_id"`
	Text    string            `json:"text"`
	Created time.Time         `json:"created"`
	Author  *userPort.UserDTO `json:"author,omitempty"`
}

// CommentInput is the comment form.
type CommentInput struct {
	Text string `form:"text" validate:"required"`
}

func ToCommentDTO(c *comment.Comment) *CommentDTO {
	dto := &CommentDTO{
		ID:      c.ID.String(),
		PostID:  c.PostID.String(),
		Text:    c.Text,
		Created: c.Created,
	}
	if c.Author.ID != uuid.Nil {
		dto.Author = userPort.ToUserDTO(&c.Author)
	}
	return dto
}
