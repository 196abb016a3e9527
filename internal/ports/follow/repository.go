package follow

import (
	"context"

	"github.com/gofrs/uuid"

	"yatube/internal/core/follow"
)

// FollowRepository پورت برای ذخیره‌سازی و بازیابی دنبال‌کنندگان
type FollowRepository interface {
	Create(ctx context.Context, f *follow.Follow) error
	Delete(ctx context.Context, userID, authorID uuid.UUID) (int64, error)
	Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
}

// FollowOutcome tells apart the ways a follow request can end without error.
type FollowOutcome int

const (
	FollowCreated FollowOutcome = iota
	FollowAlreadyExists
	// FollowSelfDenied: a user tried to follow themself; nothing is stored.
	FollowSelfDenied
)

func (o FollowOutcome) String() string {
	switch o {
	case FollowCreated:
		return "created"
	case FollowAlreadyExists:
		return "already_exists"
	case FollowSelfDenied:
		return "self_denied"
	default:
		return "unknown"
	}
}
