package database

import (
	"context"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yatube/internal/core/follow"
	"yatube/internal/core/post"
	postPort "yatube/internal/ports/post"
)

// PostRepositoryDatabase پیاده‌سازی PostRepository برای دیتابیس
type PostRepositoryDatabase struct {
	db *gorm.DB
}

// NewPostRepositoryDatabase سازنده PostRepositoryDatabase
func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV4())
	}
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	var p post.Post
	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		Where("id = ?", id).
		First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// Update overwrites the mutable columns only; id, author and pub_date stay as stored.
func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) error {
	var groupID any
	if p.GroupID != nil {
		groupID = p.GroupID.String()
	}
	return repo.db.WithContext(ctx).
		Model(&post.Post{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"text":     p.Text,
			"group_id": groupID,
			"image":    p.Image,
		}).Error
}

func (repo *PostRepositoryDatabase) filtered(ctx context.Context, f postPort.Filter) *gorm.DB {
	q := repo.db.WithContext(ctx).Model(&post.Post{})
	if f.GroupID != nil {
		q = q.Where("group_id = ?", *f.GroupID)
	}
	if f.AuthorID != nil {
		q = q.Where("author_id = ?", *f.AuthorID)
	}
	if f.FollowedBy != nil {
		authors := repo.db.WithContext(ctx).
			Model(&follow.Follow{}).
			Select("author_id").
			Where("user_id = ?", *f.FollowedBy)
		q = q.Where("author_id IN (?)", authors)
	}
	return q
}

// List returns posts newest first.
func (repo *PostRepositoryDatabase) List(ctx context.Context, f postPort.Filter, offset, limit int) ([]*post.Post, error) {
	var posts []*post.Post
	if err := repo.filtered(ctx, f).
		Preload("Author").
		Preload("Group").
		Order("pub_date DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) Count(ctx context.Context, f postPort.Filter) (int64, error) {
	var n int64
	if err := repo.filtered(ctx, f).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
