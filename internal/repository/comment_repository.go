//go:generate mockery --name CommentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_path_gen/internal/middleware"
	"go_5_path_gen/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository は公開パスへのコメントを管理します。
type CommentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, comment *model.Comment) error
	ListByCommunityPath(ctx context.Context, db *gorm.DB, communityPathID uuid.UUID) ([]*model.Comment, error)
}

type gormCommentRepository struct{}

func NewGormCommentRepository() CommentRepository {
	return &gormCommentRepository{}
}

func (r *gormCommentRepository) Create(ctx context.Context, tx *gorm.DB, comment *model.Comment) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(comment)
	if result.Error != nil {
		logger.Error("Error creating comment in DB",
			"error", result.Error,
			"community_path_id", comment.CommunityPathID.String(),
		)
		return fmt.Errorf("gormCommentRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCommentRepository) ListByCommunityPath(ctx context.Context, db *gorm.DB, communityPathID uuid.UUID) ([]*model.Comment, error) {
	logger := middleware.GetLogger(ctx)
	var comments []*model.Comment
	result := db.WithContext(ctx).
		Where("community_path_id = ?", communityPathID).
		Order("created_at DESC").
		Find(&comments)
	if result.Error != nil {
		logger.Error("Error listing comments in DB",
			"error", result.Error,
			"community_path_id", communityPathID.String(),
		)
		return nil, fmt.Errorf("gormCommentRepository.ListByCommunityPath: %w", result.Error)
	}
	return comments, nil
}
