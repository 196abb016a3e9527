package group

import (
	"time"

	"github.com/gofrs/uuid"
)

// Group is a category posts may optionally belong to. Groups are created
// administratively and are never owned by a post.
type Group struct {
	ID          uuid.UUID `gorm:"primary_key;type:char(36)"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Slug        string    `gorm:"type:varchar(50);unique;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (g Group) String() string { return g.Title }
