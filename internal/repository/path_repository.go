//go:generate mockery --name PathRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_path_gen/internal/middleware"
	"go_5_path_gen/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PathRepository は学習パスとモジュールの永続化インターフェースです。
type PathRepository interface {
	Create(ctx context.Context, tx *gorm.DB, path *model.LearningPath) error
	FindByID(ctx context.Context, db *gorm.DB, pathID uuid.UUID) (*model.LearningPath, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.LearningPath, error)
	FindModule(ctx context.Context, db *gorm.DB, pathID, moduleID uuid.UUID) (*model.Module, error)
	SetModuleCompleted(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID, isCompleted bool) error
	UpdateModuleVideos(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID, videos datatypes.JSONSlice[model.Video]) error
	UpdateModuleRepos(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID, repos datatypes.JSONSlice[model.Repo]) error
	RecountCompleted(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) (int, error)
	Delete(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) error
}

type gormPathRepository struct{}

func NewGormPathRepository() PathRepository {
	return &gormPathRepository{}
}

func (r *gormPathRepository) Create(ctx context.Context, tx *gorm.DB, path *model.LearningPath) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(path)
	if result.Error != nil {
		logger.Error("Error creating learning path in DB",
			"error", result.Error,
			"user_id", path.UserID.String(),
			"goal", path.Goal,
		)
		return fmt.Errorf("gormPathRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormPathRepository) FindByID(ctx context.Context, db *gorm.DB, pathID uuid.UUID) (*model.LearningPath, error) {
	logger := middleware.GetLogger(ctx)
	var path model.LearningPath
	result := db.WithContext(ctx).
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("modules.position ASC")
		}).
		Where("path_id = ?", pathID).
		First(&path)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding learning path by ID in DB",
			"error", result.Error,
			"path_id", pathID.String(),
		)
		return nil, fmt.Errorf("gormPathRepository.FindByID: %w", result.Error)
	}
	return &path, nil
}

func (r *gormPathRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.LearningPath, error) {
	logger := middleware.GetLogger(ctx)
	var paths []*model.LearningPath
	// 一覧ではモジュール本体は読み込まない (件数と進捗は非正規化カラムで持つ)
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&paths)
	if result.Error != nil {
		logger.Error("Error finding learning paths by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormPathRepository.FindByUser: %w", result.Error)
	}
	return paths, nil
}

func (r *gormPathRepository) FindModule(ctx context.Context, db *gorm.DB, pathID, moduleID uuid.UUID) (*model.Module, error) {
	logger := middleware.GetLogger(ctx)
	var mod model.Module
	result := db.WithContext(ctx).
		Where("path_id = ? AND module_id = ?", pathID, moduleID).
		First(&mod)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding module in DB",
			"error", result.Error,
			"path_id", pathID.String(),
			"module_id", moduleID.String(),
		)
		return nil, fmt.Errorf("gormPathRepository.FindModule: %w", result.Error)
	}
	return &mod, nil
}

func (r *gormPathRepository) SetModuleCompleted(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID, isCompleted bool) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Module{}).
		Where("module_id = ?", moduleID).
		Update("is_completed", isCompleted)
	if result.Error != nil {
		logger.Error("Error updating module completion in DB",
			"error", result.Error,
			"module_id", moduleID.String(),
		)
		return fmt.Errorf("gormPathRepository.SetModuleCompleted: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPathRepository) UpdateModuleVideos(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID, videos datatypes.JSONSlice[model.Video]) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Module{}).
		Where("module_id = ?", moduleID).
		Update("videos", videos)
	if result.Error != nil {
		logger.Error("Error updating module videos in DB",
			"error", result.Error,
			"module_id", moduleID.String(),
		)
		return fmt.Errorf("gormPathRepository.UpdateModuleVideos: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPathRepository) UpdateModuleRepos(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID, repos datatypes.JSONSlice[model.Repo]) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Module{}).
		Where("module_id = ?", moduleID).
		Update("repos", repos)
	if result.Error != nil {
		logger.Error("Error updating module repos in DB",
			"error", result.Error,
			"module_id", moduleID.String(),
		)
		return fmt.Errorf("gormPathRepository.UpdateModuleRepos: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// RecountCompleted はモジュールの完了数をSQL側で集計し直し、パスの
// completed_modules カラムへ反映した上でその値を返します。
// アプリ側のカウンタ加減算ではなく再集計にすることで並行更新でもズレません。
func (r *gormPathRepository) RecountCompleted(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) (int, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Exec(
		`UPDATE learning_paths
		 SET completed_modules = (
		     SELECT COUNT(*) FROM modules
		     WHERE modules.path_id = ? AND modules.is_completed
		 )
		 WHERE path_id = ?`,
		pathID, pathID,
	)
	if result.Error != nil {
		logger.Error("Error recounting completed modules in DB",
			"error", result.Error,
			"path_id", pathID.String(),
		)
		return 0, fmt.Errorf("gormPathRepository.RecountCompleted: %w", result.Error)
	}

	var completed int
	row := tx.WithContext(ctx).Model(&model.LearningPath{}).
		Where("path_id = ?", pathID).
		Select("completed_modules").
		Scan(&completed)
	if row.Error != nil {
		logger.Error("Error reading back completed count in DB",
			"error", row.Error,
			"path_id", pathID.String(),
		)
		return 0, fmt.Errorf("gormPathRepository.RecountCompleted: %w", row.Error)
	}
	return completed, nil
}

func (r *gormPathRepository) Delete(ctx context.Context, tx *gorm.DB, pathID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Where("path_id = ?", pathID).Delete(&model.Module{}).Error; err != nil {
		logger.Error("Error deleting modules in DB",
			"error", err,
			"path_id", pathID.String(),
		)
		return fmt.Errorf("gormPathRepository.Delete: %w", err)
	}
	result := tx.WithContext(ctx).Where("path_id = ?", pathID).Delete(&model.LearningPath{})
	if result.Error != nil {
		logger.Error("Error deleting learning path in DB",
			"error", result.Error,
			"path_id", pathID.String(),
		)
		return fmt.Errorf("gormPathRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
