//go:generate mockery --name CommunityService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"go_5_path_gen/internal/config"
	"go_5_path_gen/internal/middleware"
	"go_5_path_gen/internal/model"
	"go_5_path_gen/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommunityService は学習パスの公開・フォーク・評価を扱うサービスです。
type CommunityService interface {
	Publish(ctx context.Context, userID, pathID uuid.UUID) (*model.CommunityPath, error)
	List(ctx context.Context, page, limit int) (*model.CommunityPathList, error)
	GetDetails(ctx context.Context, communityPathID uuid.UUID) (*model.CommunityPathDetails, error)
	ToggleUpvote(ctx context.Context, userID, communityPathID uuid.UUID) (*model.ToggleUpvoteResponse, error)
	AddComment(ctx context.Context, userID, communityPathID uuid.UUID, req *model.AddCommentRequest) (*model.Comment, error)
	ListComments(ctx context.Context, communityPathID uuid.UUID) ([]*model.Comment, error)
	Fork(ctx context.Context, userID, communityPathID uuid.UUID) (*model.ForkResponse, error)
}

type communityService struct {
	db            *gorm.DB
	communityRepo repository.CommunityRepository
	upvoteRepo    repository.UpvoteRepository
	commentRepo   repository.CommentRepository
	pathRepo      repository.PathRepository
	cfg           *config.Config
}

func NewCommunityService(db *gorm.DB, communityRepo repository.CommunityRepository, upvoteRepo repository.UpvoteRepository, commentRepo repository.CommentRepository, pathRepo repository.PathRepository, cfg *config.Config) CommunityService {
	return &communityService{
		db:            db,
		communityRepo: communityRepo,
		upvoteRepo:    upvoteRepo,
		commentRepo:   commentRepo,
		pathRepo:      pathRepo,
		cfg:           cfg,
	}
}

// Publish は所有する学習パスをコミュニティに公開します。
// 二重公開の検出は source_learning_path_id のユニーク制約に任せます
// (事前SELECTでは並行公開をすり抜けるため)。
func (s *communityService) Publish(ctx context.Context, userID, pathID uuid.UUID) (*model.CommunityPath, error) {
	logger := middleware.GetLogger(ctx)
	var published *model.CommunityPath

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		path, err := s.pathRepo.FindByID(ctx, tx, pathID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("PATH_NOT_FOUND", "学習パスが見つかりません。", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習パスの取得に失敗しました。", "", err)
		}
		if path.UserID != userID {
			return model.NewAppError("FORBIDDEN", "この学習パスを公開する権限がありません。", "", model.ErrForbidden)
		}

		sourceID := path.PathID
		community := &model.CommunityPath{
			CommunityPathID:      uuid.New(),
			Goal:                 path.Goal,
			Level:                path.SkillLevel,
			Duration:             path.Duration,
			ModulesCount:         path.TotalModules,
			CreatorID:            userID,
			SourceLearningPathID: &sourceID,
			RootPathID:           path.PathID,
		}
		if err := s.communityRepo.Create(ctx, tx, community); err != nil {
			if errors.Is(err, model.ErrAlreadyPublished) {
				return model.NewAppError("ALREADY_PUBLISHED", "この学習パスは既に公開されています。", "", model.ErrAlreadyPublished)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "公開処理に失敗しました。", "", err)
		}

		published = community
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for Publish", "error", err, "path_id", pathID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	logger.Info("Learning path published", "community_path_id", published.CommunityPathID, "path_id", pathID)
	return published, nil
}

func (s *communityService) List(ctx context.Context, page, limit int) (*model.CommunityPathList, error) {
	logger := middleware.GetLogger(ctx)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = s.cfg.App.CommunityPageLimit
	}
	offset := (page - 1) * limit

	items, total, err := s.communityRepo.List(ctx, s.db, offset, limit)
	if err != nil {
		logger.Error("Failed to list community paths", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コミュニティ一覧の取得に失敗しました。", "", err)
	}

	return &model.CommunityPathList{
		Items:      items,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
	}, nil
}

// GetDetails はコミュニティレコードと、ルート祖先の学習パス本体を返します。
// 元の学習パスが削除済みのときは OriginalPath を nil のまま返します。
func (s *communityService) GetDetails(ctx context.Context, communityPathID uuid.UUID) (*model.CommunityPathDetails, error) {
	logger := middleware.GetLogger(ctx)

	community, err := s.communityRepo.FindByID(ctx, s.db, communityPathID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("COMMUNITY_PATH_NOT_FOUND", "公開パスが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find community path", "error", err, "community_path_id", communityPathID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "公開パスの取得に失敗しました。", "", err)
	}

	details := &model.CommunityPathDetails{CommunityPath: community}

	original, err := s.pathRepo.FindByID(ctx, s.db, community.RootPathID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to load original path", "error", err, "root_path_id", community.RootPathID.String())
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習パスの取得に失敗しました。", "", err)
		}
		logger.Debug("Original path no longer exists", "root_path_id", community.RootPathID)
	} else {
		details.OriginalPath = original
	}

	return details, nil
}

// ToggleUpvote は高評価のオン/オフを切り替えます。状態の真実は upvotes テーブルの
// 行の有無で、カウンタはSQL側の加減算のみで更新します。
func (s *communityService) ToggleUpvote(ctx context.Context, userID, communityPathID uuid.UUID) (*model.ToggleUpvoteResponse, error) {
	logger := middleware.GetLogger(ctx)
	var resp *model.ToggleUpvoteResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.communityRepo.FindByID(ctx, tx, communityPathID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("COMMUNITY_PATH_NOT_FOUND", "公開パスが見つかりません。", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "公開パスの取得に失敗しました。", "", err)
		}

		exists, err := s.upvoteRepo.Exists(ctx, tx, userID, communityPathID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "評価状態の確認に失敗しました。", "", err)
		}

		upvoted := !exists
		if exists {
			err := s.upvoteRepo.Delete(ctx, tx, userID, communityPathID)
			if err != nil {
				// 並行トグルで既に行が消えている場合は減算せずに「未評価」として返す
				if !errors.Is(err, model.ErrConflict) {
					return model.NewAppError("INTERNAL_SERVER_ERROR", "評価の取り消しに失敗しました。", "", err)
				}
			} else if err := s.communityRepo.DecrementUpvotesCount(ctx, tx, communityPathID); err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "評価数の更新に失敗しました。", "", err)
			}
		} else {
			upvote := &model.Upvote{UserID: userID, CommunityPathID: communityPathID}
			err := s.upvoteRepo.Create(ctx, tx, upvote)
			if err != nil {
				// 並行トグルで既に行がある場合は加算せずに「評価済み」として返す
				if !errors.Is(err, model.ErrConflict) {
					return model.NewAppError("INTERNAL_SERVER_ERROR", "評価の登録に失敗しました。", "", err)
				}
			} else if err := s.communityRepo.IncrementUpvotesCount(ctx, tx, communityPathID); err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "評価数の更新に失敗しました。", "", err)
			}
		}

		count, err := s.communityRepo.GetUpvotesCount(ctx, tx, communityPathID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "評価数の取得に失敗しました。", "", err)
		}

		resp = &model.ToggleUpvoteResponse{Upvoted: upvoted, UpvotesCount: count}
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for ToggleUpvote", "error", err, "community_path_id", communityPathID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	return resp, nil
}

func (s *communityService) AddComment(ctx context.Context, userID, communityPathID uuid.UUID, req *model.AddCommentRequest) (*model.Comment, error) {
	logger := middleware.GetLogger(ctx)
	var created *model.Comment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.communityRepo.FindByID(ctx, tx, communityPathID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("COMMUNITY_PATH_NOT_FOUND", "公開パスが見つかりません。", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "公開パスの取得に失敗しました。", "", err)
		}

		comment := &model.Comment{
			CommentID:       uuid.New(),
			CommunityPathID: communityPathID,
			UserID:          userID,
			Text:            req.Text,
		}
		if err := s.commentRepo.Create(ctx, tx, comment); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "コメントの投稿に失敗しました。", "", err)
		}
		if err := s.communityRepo.IncrementCommentsCount(ctx, tx, communityPathID); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "コメント数の更新に失敗しました。", "", err)
		}

		created = comment
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for AddComment", "error", err, "community_path_id", communityPathID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	logger.Info("Comment added", "comment_id", created.CommentID, "community_path_id", communityPathID)
	return created, nil
}

func (s *communityService) ListComments(ctx context.Context, communityPathID uuid.UUID) ([]*model.Comment, error) {
	logger := middleware.GetLogger(ctx)

	if _, err := s.communityRepo.FindByID(ctx, s.db, communityPathID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("COMMUNITY_PATH_NOT_FOUND", "公開パスが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find community path", "error", err, "community_path_id", communityPathID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "公開パスの取得に失敗しました。", "", err)
	}

	comments, err := s.commentRepo.ListByCommunityPath(ctx, s.db, communityPathID)
	if err != nil {
		logger.Error("Failed to list comments", "error", err, "community_path_id", communityPathID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コメントの取得に失敗しました。", "", err)
	}
	return comments, nil
}

// Fork は公開パスのルート祖先の学習パスを自分のワークスペースへ複製し、
// フォークのコミュニティレコードを作成してフォーク数を加算します。
// 複製は進捗と検索キャッシュをリセットした新しいパスになります。
func (s *communityService) Fork(ctx context.Context, userID, communityPathID uuid.UUID) (*model.ForkResponse, error) {
	logger := middleware.GetLogger(ctx)
	var resp *model.ForkResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		source, err := s.communityRepo.FindByID(ctx, tx, communityPathID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("COMMUNITY_PATH_NOT_FOUND", "公開パスが見つかりません。", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "公開パスの取得に失敗しました。", "", err)
		}

		contentPathID := source.RootPathID
		if contentPathID == uuid.Nil && source.SourceLearningPathID != nil {
			contentPathID = *source.SourceLearningPathID
		}

		rootPath, err := s.pathRepo.FindByID(ctx, tx, contentPathID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SOURCE_PATH_GONE", "元の学習パスが削除されているため、フォークできません。", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習パスの取得に失敗しました。", "", err)
		}

		forkedPath := copyPathForFork(rootPath, userID)
		if err := s.pathRepo.Create(ctx, tx, forkedPath); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習パスの複製に失敗しました。", "", err)
		}

		forkCommunity := &model.CommunityPath{
			CommunityPathID: uuid.New(),
			Goal:            source.Goal,
			Level:           source.Level,
			Duration:        source.Duration,
			ModulesCount:    source.ModulesCount,
			CreatorID:       userID,
			ParentPathID:    &contentPathID,
			RootPathID:      source.RootPathID,
		}
		if err := s.communityRepo.Create(ctx, tx, forkCommunity); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "フォークの登録に失敗しました。", "", err)
		}

		if err := s.communityRepo.IncrementForksCount(ctx, tx, communityPathID); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "フォーク数の更新に失敗しました。", "", err)
		}

		resp = &model.ForkResponse{ForkedPath: forkedPath, CommunityPath: forkCommunity}
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for Fork", "error", err, "community_path_id", communityPathID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	logger.Info("Community path forked",
		"community_path_id", communityPathID,
		"forked_path_id", resp.ForkedPath.PathID,
		"user_id", userID,
	)
	return resp, nil
}

// copyPathForFork は学習パスの深いコピーを作ります。完了フラグと
// 動画・リポジトリのキャッシュは引き継ぎません。
func copyPathForFork(src *model.LearningPath, newOwner uuid.UUID) *model.LearningPath {
	newPathID := uuid.New()
	modules := make([]model.Module, 0, len(src.Modules))
	for _, m := range src.Modules {
		modules = append(modules, model.Module{
			ModuleID: uuid.New(),
			PathID:   newPathID,
			Position: m.Position,
			Title:    m.Title,
			Content:  m.Content,
			Duration: m.Duration,
		})
	}
	return &model.LearningPath{
		PathID:          newPathID,
		UserID:          newOwner,
		Goal:            src.Goal,
		SkillLevel:      src.SkillLevel,
		Duration:        src.Duration,
		DailyCommitment: src.DailyCommitment,
		TotalModules:    len(modules),
		Modules:         modules,
	}
}
