//go:generate mockery --name UpvoteRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_path_gen/internal/middleware"
	"go_5_path_gen/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpvoteRepository はユーザー単位の高評価レコードを管理します。
// (user_id, community_path_id) の複合主キーで一意性を担保します。
// Create/Delete は並行トグルとの競合を model.ErrConflict で通知します。
// 制約違反でステートメントを失敗させるとPostgresはトランザクション全体を
// 中断するため、競合は影響行数で検出します。
type UpvoteRepository interface {
	Exists(ctx context.Context, db *gorm.DB, userID, communityPathID uuid.UUID) (bool, error)
	Create(ctx context.Context, tx *gorm.DB, upvote *model.Upvote) error
	Delete(ctx context.Context, tx *gorm.DB, userID, communityPathID uuid.UUID) error
}

type gormUpvoteRepository struct{}

func NewGormUpvoteRepository() UpvoteRepository {
	return &gormUpvoteRepository{}
}

func (r *gormUpvoteRepository) Exists(ctx context.Context, db *gorm.DB, userID, communityPathID uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Upvote{}).
		Where("user_id = ? AND community_path_id = ?", userID, communityPathID).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error checking upvote existence in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"community_path_id", communityPathID.String(),
		)
		return false, fmt.Errorf("gormUpvoteRepository.Exists: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormUpvoteRepository) Create(ctx context.Context, tx *gorm.DB, upvote *model.Upvote) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(upvote)
	if result.Error != nil {
		logger.Error("Error creating upvote in DB",
			"error", result.Error,
			"user_id", upvote.UserID.String(),
			"community_path_id", upvote.CommunityPathID.String(),
		)
		return fmt.Errorf("gormUpvoteRepository.Create: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrConflict
	}
	return nil
}

func (r *gormUpvoteRepository) Delete(ctx context.Context, tx *gorm.DB, userID, communityPathID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Where("user_id = ? AND community_path_id = ?", userID, communityPathID).
		Delete(&model.Upvote{})
	if result.Error != nil {
		logger.Error("Error deleting upvote in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"community_path_id", communityPathID.String(),
		)
		return fmt.Errorf("gormUpvoteRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrConflict
	}
	return nil
}
