package database

import (
	"context"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yatube/internal/core/follow"
)

// FollowRepositoryDatabase پیاده‌سازی FollowRepository برای دیتابیس
type FollowRepositoryDatabase struct {
	db *gorm.DB
}

// NewFollowRepositoryDatabase سازنده FollowRepositoryDatabase
func NewFollowRepositoryDatabase(db *gorm.DB) *FollowRepositoryDatabase {
	return &FollowRepositoryDatabase{db: db}
}

// Create inserts the edge. A concurrent duplicate loses silently on the
// (user_id, author_id) unique index.
func (repo *FollowRepositoryDatabase) Create(ctx context.Context, f *follow.Follow) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.Must(uuid.NewV4())
	}
	return repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(f).Error
}

func (repo *FollowRepositoryDatabase) Delete(ctx context.Context, userID, authorID uuid.UUID) (int64, error) {
	res := repo.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&follow.Follow{})
	return res.RowsAffected, res.Error
}

func (repo *FollowRepositoryDatabase) Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&follow.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
