//go:generate mockery --name CommunityRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_path_gen/internal/middleware"
	"go_5_path_gen/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// CommunityRepository は公開パスの永続化インターフェースです。
// カウンタ系の更新はすべてSQL側の加減算で行い、read-modify-write はしません。
type CommunityRepository interface {
	Create(ctx context.Context, tx *gorm.DB, path *model.CommunityPath) error
	FindByID(ctx context.Context, db *gorm.DB, communityPathID uuid.UUID) (*model.CommunityPath, error)
	List(ctx context.Context, db *gorm.DB, offset, limit int) ([]*model.CommunityPath, int64, error)
	IncrementUpvotesCount(ctx context.Context, tx *gorm.DB, communityPathID uuid.UUID) error
	DecrementUpvotesCount(ctx context.Context, tx *gorm.DB, communityPathID uuid.UUID) error
	IncrementCommentsCount(ctx context.Context, tx *gorm.DB, communityPathID uuid.UUID) error
	IncrementForksCount(ctx context.Context, tx *gorm.DB, communityPathID uuid.UUID) error
	GetUpvotesCount(ctx context.Context, db *gorm.DB, communityPathID uuid.UUID) (int, error)
}

type gormCommunityRepository struct{}

func NewGormCommunityRepository() CommunityRepository {
	return &gormCommunityRepository{}
}

func (r *gormCommunityRepository) Create(ctx context.Context, tx *gorm.DB, path *model.CommunityPath) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(path)
	if result.Error != nil {
		// source_learning_path_id のユニーク制約違反は「公開済み」として扱う
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			return model.ErrAlreadyPublished
		}
		logger.Error("Error creating community path in DB",
			"error", result.Error,
			"creator_id", path.CreatorID.String(),
		)
		return fmt.Errorf("gormCommunityRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCommunityRepository) FindByID(ctx context.Context, db *gorm.DB, communityPathID uuid.UUID) (*model.CommunityPath, error) {
	logger := middleware.GetLogger(ctx)
	var path model.CommunityPath
	result := db.WithContext(ctx).Where("community_path_id = ?", communityPathID).First(&path)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding community path by ID in DB",
			"error", result.Error,
			"community_path_id", communityPathID.String(),
		)
		return nil, fmt.Errorf("gormCommunityRepository.FindByID: %w", result.Error)
	}
	return &path, nil
}

func (r *gormCommunityRepository) List(ctx context.Context, db *gorm.DB, offset, limit int) ([]*model.CommunityPath, int64, error) {
	logger := middleware.GetLogger(ctx)

	var total int64
	if err := db.WithContext(ctx).Model(&model.CommunityPath{}).Count(&total).Error; err != nil {
		logger.Error("Error counting community paths in DB", "error", err)
		return nil, 0, fmt.Errorf("gormCommunityRepository.List: %w", err)
	}

	var paths []*model.CommunityPath
	result := db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&paths)
	if result.Error != nil {
		logger.Error("Error listing community paths in DB", "error", result.Error)
		return nil, 0, fmt.Errorf("gormCommunityRepository.List: %w", result.Error)
	}
	return paths, total, nil
}

func (r *gormCommunityRepository) IncrementUpvotesCount(ctx context.Context, tx *gorm.DB, communityPathID uuid.UUID) error {
	return r.applyCounter(ctx, tx, communityPathID, "upvotes_count", +1)
}

// DecrementUpvotesCount は 0 を下回らないように条件付きで減算します。
func (r *gormCommunityRepository) DecrementUpvotesCount(ctx context.Context, tx *gorm.DB, communityPathID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.CommunityPath{}).
		Where("community_path_id = ? AND upvotes_count > 0", communityPathID).
		Update("upvotes_count", gorm.Expr("upvotes_count - 1"))
	if result.Error != nil {
		logger.Error("Error decrementing upvotes count in DB",
			"error", result.Error,
			"community_path_id", communityPathID.String(),
		)
		return fmt.Errorf("gormCommunityRepository.DecrementUpvotesCount: %w", result.Error)
	}
	return nil
}

func (r *gormCommunityRepository) IncrementCommentsCount(ctx context.Context, tx *gorm.DB, communityPathID uuid.UUID) error {
	return r.applyCounter(ctx, tx, communityPathID, "comments_count", +1)
}

func (r *gormCommunityRepository) IncrementForksCount(ctx context.Context, tx *gorm.DB, communityPathID uuid.UUID) error {
	return r.applyCounter(ctx, tx, communityPathID, "forks_count", +1)
}

func (r *gormCommunityRepository) applyCounter(ctx context.Context, tx *gorm.DB, communityPathID uuid.UUID, column string, delta int) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.CommunityPath{}).
		Where("community_path_id = ?", communityPathID).
		Update(column, gorm.Expr(column+" + ?", delta))
	if result.Error != nil {
		logger.Error("Error updating counter in DB",
			"error", result.Error,
			"community_path_id", communityPathID.String(),
			"column", column,
		)
		return fmt.Errorf("gormCommunityRepository.applyCounter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCommunityRepository) GetUpvotesCount(ctx context.Context, db *gorm.DB, communityPathID uuid.UUID) (int, error) {
	logger := middleware.GetLogger(ctx)
	var count int
	result := db.WithContext(ctx).Model(&model.CommunityPath{}).
		Where("community_path_id = ?", communityPathID).
		Select("upvotes_count").
		Scan(&count)
	if result.Error != nil {
		logger.Error("Error reading upvotes count in DB",
			"error", result.Error,
			"community_path_id", communityPathID.String(),
		)
		return 0, fmt.Errorf("gormCommunityRepository.GetUpvotesCount: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, model.ErrNotFound
	}
	return count, nil
}
