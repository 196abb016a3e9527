package post

import (
	"context"
	"time"

	"github.com/gofrs/uuid"

	"yatube/internal/core/post"
	commentPort "yatube/internal/ports/comment"
	groupPort "yatube/internal/ports/group"
	"yatube/internal/ports/media"
	userPort "yatube/internal/ports/user"
)

// Filter narrows a listing. At most one field is expected to be set; the
// zero value lists every post.
type Filter struct {
	GroupID    *uuid.UUID
	AuthorID   *uuid.UUID
	FollowedBy *uuid.UUID // posts by authors this user follows
}

// PostRepository پورت برای ذخیره‌سازی و بازیابی پست‌ها
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error)
	Update(ctx context.Context, post *post.Post) error
	List(ctx context.Context, f Filter, offset, limit int) ([]*post.Post, error)
	Count(ctx context.Context, f Filter) (int64, error)
}

// DTOها برای UseCase
type PostDTO struct {
	ID      string              `json:"id"`
	Text    string              `json:"text"`
	PubDate time.Time           `json:"pub_date"`
	Image   string              `json:"image,omitempty"`
	Author  *userPort.UserDTO   `json:"author,omitempty"`
	Group   *groupPort.GroupDTO `json:"group,omitempty"`
}

type PageDTO struct {
	Posts       []*PostDTO `json:"posts"`
	Number      int        `json:"number"`
	NumPages    int        `json:"num_pages"`
	Total       int64      `json:"total"`
	HasPrevious bool       `json:"has_previous"`
	HasNext     bool       `json:"has_next"`
}

// PreviousNumber and NextNumber are only meaningful when the matching Has* is true.
func (p *PageDTO) PreviousNumber() int { return p.Number - 1 }
func (p *PageDTO) NextNumber() int     { return p.Number + 1 }

type PostDetailDTO struct {
	Post            *PostDTO                  `json:"post"`
	Comments        []*commentPort.CommentDTO `json:"comments"`
	AuthorPostCount int64                     `json:"author_post_count"`
	CanEdit         bool                      `json:"can_edit"`
}

// PostInput is the create/edit form. GroupID is empty for "no group".
// ClearImage drops the stored image on edit.
type PostInput struct {
	Text       string        `form:"text" validate:"required"`
	GroupID    string        `form:"group" validate:"omitempty,uuid"`
	Image      *media.Upload `form:"-"`
	ClearImage bool          `form:"image-clear"`
}

// EditOutcome separates an applied edit from a silently refused one.
type EditOutcome int

const (
	EditApplied EditOutcome = iota
	// EditDenied: the actor is not the author. Nothing changes and callers
	// redirect to the read-only view as if nothing happened.
	EditDenied
)

func (o EditOutcome) String() string {
	if o == EditDenied {
		return "denied"
	}
	return "applied"
}

type EditResult struct {
	Outcome EditOutcome
	Post    *PostDTO
}

func ToPostDTO(p *post.Post) *PostDTO {
	dto := &PostDTO{
		ID:      p.ID.String(),
		Text:    p.Text,
		PubDate: p.PubDate,
		Image:   p.Image,
	}
	if p.Author.ID != uuid.Nil {
		dto.Author = userPort.ToUserDTO(&p.Author)
	}
	if p.Group != nil {
		dto.Group = groupPort.ToGroupDTO(p.Group)
	}
	return dto
}
