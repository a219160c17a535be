//go:generate mockery --name PathService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"

	"go_5_path_gen/internal/config"
	"go_5_path_gen/internal/middleware"
	"go_5_path_gen/internal/model"
	"go_5_path_gen/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PathService は学習パスのライフサイクルを扱うサービスです。
type PathService interface {
	GeneratePath(ctx context.Context, userID uuid.UUID, req *model.GeneratePathRequest) (*model.LearningPath, error)
	ListPaths(ctx context.Context, userID uuid.UUID) ([]*model.LearningPath, error)
	GetPath(ctx context.Context, userID, pathID uuid.UUID) (*model.LearningPath, error)
	DeletePath(ctx context.Context, userID, pathID uuid.UUID) error
	ToggleModuleCompletion(ctx context.Context, userID, pathID, moduleID uuid.UUID) (*model.ToggleModuleResponse, error)
	FetchModuleVideos(ctx context.Context, userID, pathID, moduleID uuid.UUID) ([]model.Video, error)
	FetchModuleRepos(ctx context.Context, userID, pathID, moduleID uuid.UUID) ([]model.Repo, error)
}

type pathService struct {
	db        *gorm.DB
	pathRepo  repository.PathRepository
	generator PlanGenerator
	videos    VideoProvider
	repos     RepoProvider
	cfg       *config.Config
}

func NewPathService(db *gorm.DB, pathRepo repository.PathRepository, generator PlanGenerator, videos VideoProvider, repos RepoProvider, cfg *config.Config) PathService {
	return &pathService{
		db:        db,
		pathRepo:  pathRepo,
		generator: generator,
		videos:    videos,
		repos:     repos,
		cfg:       cfg,
	}
}

// GeneratePath はLLMで学習計画を生成し、モジュール付きの学習パスとして保存します。
func (s *pathService) GeneratePath(ctx context.Context, userID uuid.UUID, req *model.GeneratePathRequest) (*model.LearningPath, error) {
	logger := middleware.GetLogger(ctx)

	level := model.SkillLevel(req.SkillLevel)
	if !level.IsValid() {
		return nil, model.NewAppError("INVALID_SKILL_LEVEL", "スキルレベルの指定が不正です。", "skill_level", model.ErrInvalidInput)
	}

	// 外部API呼び出しはトランザクションの外で行う
	drafts, err := s.generator.GeneratePlan(ctx, req)
	if err != nil {
		logger.Error("Plan generation failed", "error", err, "goal", req.Goal)
		return nil, model.NewAppError("GENERATION_FAILED", "学習パスの生成に失敗しました。時間をおいて再度お試しください。", "", model.ErrGenerationFailed)
	}

	pathID := uuid.New()
	modules := make([]model.Module, 0, len(drafts))
	for i, d := range drafts {
		modules = append(modules, model.Module{
			ModuleID: uuid.New(),
			PathID:   pathID,
			Position: i,
			Title:    d.Title,
			Content:  d.Description,
			Duration: d.Duration,
		})
	}

	path := &model.LearningPath{
		PathID:          pathID,
		UserID:          userID,
		Goal:            req.Goal,
		SkillLevel:      level,
		Duration:        req.Duration,
		DailyCommitment: req.DailyCommitment,
		TotalModules:    len(modules),
		Modules:         modules,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.pathRepo.Create(ctx, tx, path)
	})
	if err != nil {
		logger.Error("Failed to persist generated path", "error", err, "user_id", userID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習パスの保存に失敗しました。", "", err)
	}

	logger.Info("Learning path created", "path_id", path.PathID, "modules", len(modules))
	return path, nil
}

func (s *pathService) ListPaths(ctx context.Context, userID uuid.UUID) ([]*model.LearningPath, error) {
	logger := middleware.GetLogger(ctx)
	paths, err := s.pathRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list learning paths", "error", err, "user_id", userID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習パスの取得に失敗しました。", "", err)
	}
	return paths, nil
}

func (s *pathService) GetPath(ctx context.Context, userID, pathID uuid.UUID) (*model.LearningPath, error) {
	return s.findOwnedPath(ctx, s.db, userID, pathID)
}

// DeletePath は本人のパスのみ削除します。削除だけは存在を秘匿せず、
// 他人のパスへの削除要求を Forbidden として区別します。
func (s *pathService) DeletePath(ctx context.Context, userID, pathID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		path, err := s.pathRepo.FindByID(ctx, tx, pathID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("PATH_NOT_FOUND", "学習パスが見つかりません。", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習パスの取得に失敗しました。", "", err)
		}
		if path.UserID != userID {
			logger.Warn("Path ownership check failed", "path_id", pathID.String(), "user_id", userID.String())
			return model.NewAppError("FORBIDDEN", "この学習パスを削除する権限がありません。", "", model.ErrForbidden)
		}
		return s.pathRepo.Delete(ctx, tx, pathID)
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return err
		}
		logger.Error("Failed to delete learning path", "error", err, "path_id", pathID.String())
		return model.NewAppError("INTERNAL_SERVER_ERROR", "学習パスの削除に失敗しました。", "", err)
	}

	logger.Info("Learning path deleted", "path_id", pathID, "user_id", userID)
	return nil
}

// ToggleModuleCompletion はモジュールの完了状態を反転し、パスの完了数を
// 同一トランザクション内でSQL集計し直して返します。
func (s *pathService) ToggleModuleCompletion(ctx context.Context, userID, pathID, moduleID uuid.UUID) (*model.ToggleModuleResponse, error) {
	logger := middleware.GetLogger(ctx)
	var resp *model.ToggleModuleResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		path, err := s.findOwnedPath(ctx, tx, userID, pathID)
		if err != nil {
			return err
		}

		mod, err := s.pathRepo.FindModule(ctx, tx, pathID, moduleID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("MODULE_NOT_FOUND", "モジュールが見つかりません。", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "モジュールの取得に失敗しました。", "", err)
		}

		newState := !mod.IsCompleted
		if err := s.pathRepo.SetModuleCompleted(ctx, tx, moduleID, newState); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "モジュールの更新に失敗しました。", "", err)
		}

		completed, err := s.pathRepo.RecountCompleted(ctx, tx, pathID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の集計に失敗しました。", "", err)
		}

		resp = &model.ToggleModuleResponse{
			ModuleID:         moduleID,
			IsCompleted:      newState,
			CompletedModules: completed,
			TotalModules:     path.TotalModules,
			Progress:         model.CalcProgress(completed, path.TotalModules),
		}
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for ToggleModuleCompletion", "error", err, "module_id", moduleID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	return resp, nil
}

// FetchModuleVideos はモジュールの参考動画を返します。初回のみ外部検索し、
// 結果をモジュールにキャッシュして以降はそれを返します (at-most-once)。
func (s *pathService) FetchModuleVideos(ctx context.Context, userID, pathID, moduleID uuid.UUID) ([]model.Video, error) {
	logger := middleware.GetLogger(ctx)

	path, err := s.findOwnedPath(ctx, s.db, userID, pathID)
	if err != nil {
		return nil, err
	}
	mod, err := s.pathRepo.FindModule(ctx, s.db, pathID, moduleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("MODULE_NOT_FOUND", "モジュールが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "モジュールの取得に失敗しました。", "", err)
	}

	if len(mod.Videos) > 0 {
		logger.Debug("Returning cached videos", "module_id", moduleID)
		return mod.Videos, nil
	}

	videos, err := s.videos.SearchVideos(ctx, resourceQuery(path, mod), s.cfg.App.ResourceLimit)
	if err != nil {
		logger.Error("Video provider failed", "error", err, "module_id", moduleID.String())
		return nil, model.NewAppError("PROVIDER_FAILED", "動画の検索に失敗しました。時間をおいて再度お試しください。", "", model.ErrProviderFailed)
	}

	cached := datatypes.JSONSlice[model.Video](videos)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.pathRepo.UpdateModuleVideos(ctx, tx, moduleID, cached)
	})
	if err != nil {
		logger.Error("Failed to cache videos", "error", err, "module_id", moduleID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "検索結果の保存に失敗しました。", "", err)
	}

	logger.Info("Videos fetched and cached", "module_id", moduleID, "count", len(videos))
	return videos, nil
}

// FetchModuleRepos はモジュールの参考リポジトリを返します。キャッシュ方針は動画と同じです。
func (s *pathService) FetchModuleRepos(ctx context.Context, userID, pathID, moduleID uuid.UUID) ([]model.Repo, error) {
	logger := middleware.GetLogger(ctx)

	path, err := s.findOwnedPath(ctx, s.db, userID, pathID)
	if err != nil {
		return nil, err
	}
	mod, err := s.pathRepo.FindModule(ctx, s.db, pathID, moduleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("MODULE_NOT_FOUND", "モジュールが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "モジュールの取得に失敗しました。", "", err)
	}

	if len(mod.Repos) > 0 {
		logger.Debug("Returning cached repos", "module_id", moduleID)
		return mod.Repos, nil
	}

	repos, err := s.repos.SearchRepos(ctx, resourceQuery(path, mod), s.cfg.App.ResourceLimit)
	if err != nil {
		logger.Error("Repo provider failed", "error", err, "module_id", moduleID.String())
		return nil, model.NewAppError("PROVIDER_FAILED", "リポジトリの検索に失敗しました。時間をおいて再度お試しください。", "", model.ErrProviderFailed)
	}

	cached := datatypes.JSONSlice[model.Repo](repos)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.pathRepo.UpdateModuleRepos(ctx, tx, moduleID, cached)
	})
	if err != nil {
		logger.Error("Failed to cache repos", "error", err, "module_id", moduleID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "検索結果の保存に失敗しました。", "", err)
	}

	logger.Info("Repos fetched and cached", "module_id", moduleID, "count", len(repos))
	return repos, nil
}

// findOwnedPath はパスを取得します。他人のパスは存在を秘匿するため、
// 所有者不一致も NotFound として返します。
func (s *pathService) findOwnedPath(ctx context.Context, db *gorm.DB, userID, pathID uuid.UUID) (*model.LearningPath, error) {
	logger := middleware.GetLogger(ctx)

	path, err := s.pathRepo.FindByID(ctx, db, pathID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("PATH_NOT_FOUND", "学習パスが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find learning path", "error", err, "path_id", pathID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習パスの取得に失敗しました。", "", err)
	}
	if path.UserID != userID {
		logger.Warn("Path ownership check failed", "path_id", pathID.String(), "user_id", userID.String())
		return nil, model.NewAppError("PATH_NOT_FOUND", "学習パスが見つかりません。", "", model.ErrNotFound)
	}
	return path, nil
}

func resourceQuery(path *model.LearningPath, mod *model.Module) string {
	return fmt.Sprintf("%s %s", path.Goal, mod.Title)
}
