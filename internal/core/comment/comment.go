package comment

import (
	"time"

	"github.com/gofrs/uuid"

	"yatube/internal/core/post"
	"yatube/internal/core/user"
)

type Comment struct {
	ID       uuid.UUID  `gorm:"primary_key;type:char(36)"`
	PostID   uuid.UUID  `gorm:"type:char(36);not null;index"`
	Post     *post.Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	AuthorID uuid.UUID  `gorm:"type:char(36);not null"`
	Author   user.User  `gorm:"foreignKey:AuthorID"`
	Text     string     `gorm:"type:text;not null"`
	Created  time.Time  `gorm:"index;not null"`
}

func (c Comment) String() string { return post.Preview(c.Text, post.PreviewLen) }
