package post

import (
	"time"

	"github.com/gofrs/uuid"

	"yatube/internal/core/group"
	"yatube/internal/core/user"
)

// PreviewLen is the number of runes String shows.
const PreviewLen = 15

type Post struct {
	ID        uuid.UUID    `gorm:"primary_key;type:char(36)"`
	Text      string       `gorm:"type:text;not null"`
	PubDate   time.Time    `gorm:"index;not null"`
	Image     string       `gorm:"type:varchar(255)"`
	GroupID   *uuid.UUID   `gorm:"type:char(36);index"`
	Group     *group.Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
	AuthorID  uuid.UUID    `gorm:"type:char(36);not null;index"`
	Author    user.User    `gorm:"foreignKey:AuthorID"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime"`
}

func (p Post) String() string { return Preview(p.Text, PreviewLen) }

// Preview returns at most n runes of s.
func Preview(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
