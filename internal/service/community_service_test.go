package service

import (
	"context"
	"errors"
	"testing"

	"go_5_path_gen/internal/model"
	repomocks "go_5_path_gen/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newCommunityServiceForTest(communityRepo *repomocks.CommunityRepository, upvoteRepo *repomocks.UpvoteRepository, commentRepo *repomocks.CommentRepository, pathRepo *repomocks.PathRepository) CommunityService {
	return NewCommunityService(setupTestDB(), communityRepo, upvoteRepo, commentRepo, pathRepo, testConfig())
}

func Test_communityService_Publish(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	pathID := uuid.New()

	ownedPath := &model.LearningPath{
		PathID:       pathID,
		UserID:       userID,
		Goal:         "Learn Rust",
		SkillLevel:   model.SkillLevelIntermediate,
		Duration:     "2 months",
		TotalModules: 6,
	}

	t.Run("正常系: スナップショットと系譜が正しく設定される", func(t *testing.T) {
		communityRepo := new(repomocks.CommunityRepository)
		pathRepo := new(repomocks.PathRepository)

		pathRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), pathID).
			Return(ownedPath, nil).Once()
		communityRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.CommunityPath")).
			Run(func(args mock.Arguments) {
				cp := args.Get(2).(*model.CommunityPath)
				assert.Equal(t, "Learn Rust", cp.Goal)
				assert.Equal(t, model.SkillLevelIntermediate, cp.Level)
				assert.Equal(t, "2 months", cp.Duration)
				assert.Equal(t, 6, cp.ModulesCount)
				assert.Equal(t, userID, cp.CreatorID)
				require.NotNil(t, cp.SourceLearningPathID)
				assert.Equal(t, pathID, *cp.SourceLearningPathID)
				assert.Nil(t, cp.ParentPathID)
				assert.Equal(t, pathID, cp.RootPathID)
				assert.Zero(t, cp.UpvotesCount)
				assert.Zero(t, cp.CommentsCount)
				assert.Zero(t, cp.ForksCount)
			}).
			Return(nil).Once()

		svc := newCommunityServiceForTest(communityRepo, new(repomocks.UpvoteRepository), new(repomocks.CommentRepository), pathRepo)

		published, err := svc.Publish(ctx, userID, pathID)

		require.NoError(t, err)
		require.NotNil(t, published)
		assert.Equal(t, model.PublicationOriginal, published.Kind())
		communityRepo.AssertExpectations(t)
		pathRepo.AssertExpectations(t)
	})

	t.Run("異常系: 二重公開はユニーク制約で弾かれる", func(t *testing.T) {
		communityRepo := new(repomocks.CommunityRepository)
		pathRepo := new(repomocks.PathRepository)

		pathRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), pathID).
			Return(ownedPath, nil).Once()
		communityRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.CommunityPath")).
			Return(model.ErrAlreadyPublished).Once()

		svc := newCommunityServiceForTest(communityRepo, new(repomocks.UpvoteRepository), new(repomocks.CommentRepository), pathRepo)

		published, err := svc.Publish(ctx, userID, pathID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrAlreadyPublished)
		assert.Nil(t, published)
	})

	t.Run("異常系: 他人のパスは公開できない", func(t *testing.T) {
		communityRepo := new(repomocks.CommunityRepository)
		pathRepo := new(repomocks.PathRepository)

		other := &model.LearningPath{PathID: pathID, UserID: uuid.New()}
		pathRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), pathID).
			Return(other, nil).Once()

		svc := newCommunityServiceForTest(communityRepo, new(repomocks.UpvoteRepository), new(repomocks.CommentRepository), pathRepo)

		_, err := svc.Publish(ctx, userID, pathID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)
		communityRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func Test_communityService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		page       int
		limit      int
		wantOffset int
		wantLimit  int
	}{
		{name: "正常系: 2ページ目", page: 2, limit: 10, wantOffset: 10, wantLimit: 10},
		{name: "正常系: ページ0は1ページ目に丸める", page: 0, limit: 10, wantOffset: 0, wantLimit: 10},
		{name: "正常系: limit超過はデフォルトに丸める", page: 1, limit: 500, wantOffset: 0, wantLimit: 20},
		{name: "正常系: limit未指定はデフォルト", page: 3, limit: 0, wantOffset: 40, wantLimit: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			communityRepo := new(repomocks.CommunityRepository)
			items := []*model.CommunityPath{{CommunityPathID: uuid.New()}}
			communityRepo.On("List", ctx, mock.AnythingOfType("*gorm.DB"), tt.wantOffset, tt.wantLimit).
				Return(items, int64(41), nil).Once()

			svc := newCommunityServiceForTest(communityRepo, new(repomocks.UpvoteRepository), new(repomocks.CommentRepository), new(repomocks.PathRepository))

			list, err := svc.List(ctx, tt.page, tt.limit)

			require.NoError(t, err)
			assert.Equal(t, items, list.Items)
			assert.Equal(t, int64(41), list.TotalCount)
			assert.Equal(t, tt.wantLimit, list.Limit)
			communityRepo.AssertExpectations(t)
		})
	}
}

func Test_communityService_GetDetails(t *testing.T) {
	ctx := context.Background()
	communityPathID := uuid.New()
	rootPathID := uuid.New()

	community := &model.CommunityPath{CommunityPathID: communityPathID, RootPathID: rootPathID}

	t.Run("正常系: 元パスも一緒に返す", func(t *testing.T) {
		communityRepo := new(repomocks.CommunityRepository)
		pathRepo := new(repomocks.PathRepository)

		communityRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(community, nil).Once()
		original := &model.LearningPath{PathID: rootPathID}
		pathRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), rootPathID).
			Return(original, nil).Once()

		svc := newCommunityServiceForTest(communityRepo, new(repomocks.UpvoteRepository), new(repomocks.CommentRepository), pathRepo)

		details, err := svc.GetDetails(ctx, communityPathID)

		require.NoError(t, err)
		assert.Equal(t, community, details.CommunityPath)
		assert.Equal(t, original, details.OriginalPath)
	})

	t.Run("正常系: 元パスが削除済みでもレコードは返す", func(t *testing.T) {
		communityRepo := new(repomocks.CommunityRepository)
		pathRepo := new(repomocks.PathRepository)

		communityRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(community, nil).Once()
		pathRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), rootPathID).
			Return(nil, model.ErrNotFound).Once()

		svc := newCommunityServiceForTest(communityRepo, new(repomocks.UpvoteRepository), new(repomocks.CommentRepository), pathRepo)

		details, err := svc.GetDetails(ctx, communityPathID)

		require.NoError(t, err)
		assert.Equal(t, community, details.CommunityPath)
		assert.Nil(t, details.OriginalPath)
	})

	t.Run("異常系: 公開パスが存在しない", func(t *testing.T) {
		communityRepo := new(repomocks.CommunityRepository)
		communityRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(nil, model.ErrNotFound).Once()

		svc := newCommunityServiceForTest(communityRepo, new(repomocks.UpvoteRepository), new(repomocks.CommentRepository), new(repomocks.PathRepository))

		_, err := svc.GetDetails(ctx, communityPathID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_communityService_ToggleUpvote(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	communityPathID := uuid.New()

	community := &model.CommunityPath{CommunityPathID: communityPathID, RootPathID: uuid.New()}

	t.Run("正常系: 未評価→評価でカウント加算", func(t *testing.T) {
		communityRepo := new(repomocks.CommunityRepository)
		upvoteRepo := new(repomocks.UpvoteRepository)

		communityRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(community, nil).Once()
		upvoteRepo.On("Exists", ctx, mock.AnythingOfType("*gorm.DB"), userID, communityPathID).
			Return(false, nil).Once()
		upvoteRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Upvote")).
			Return(nil).Once()
		communityRepo.On("IncrementUpvotesCount", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(nil).Once()
		communityRepo.On("GetUpvotesCount", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(5, nil).Once()

		svc := newCommunityServiceForTest(communityRepo, upvoteRepo, new(repomocks.CommentRepository), new(repomocks.PathRepository))

		resp, err := svc.ToggleUpvote(ctx, userID, communityPathID)

		require.NoError(t, err)
		assert.True(t, resp.Upvoted)
		assert.Equal(t, 5, resp.UpvotesCount)
		upvoteRepo.AssertExpectations(t)
		communityRepo.AssertExpectations(t)
	})

	t.Run("正常系: 評価済み→取り消しでカウント減算", func(t *testing.T) {
		communityRepo := new(repomocks.CommunityRepository)
		upvoteRepo := new(repomocks.UpvoteRepository)

		communityRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(community, nil).Once()
		upvoteRepo.On("Exists", ctx, mock.AnythingOfType("*gorm.DB"), userID, communityPathID).
			Return(true, nil).Once()
		upvoteRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), userID, communityPathID).
			Return(nil).Once()
		communityRepo.On("DecrementUpvotesCount", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(nil).Once()
		communityRepo.On("GetUpvotesCount", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(4, nil).Once()

		svc := newCommunityServiceForTest(communityRepo, upvoteRepo, new(repomocks.CommentRepository), new(repomocks.PathRepository))

		resp, err := svc.ToggleUpvote(ctx, userID, communityPathID)

		require.NoError(t, err)
		assert.False(t, resp.Upvoted)
		assert.Equal(t, 4, resp.UpvotesCount)
		upvoteRepo.AssertExpectations(t)
		communityRepo.AssertExpectations(t)
	})

	t.Run("正常系: 並行トグルでの重複INSERTは評価済み扱い", func(t *testing.T) {
		communityRepo := new(repomocks.CommunityRepository)
		upvoteRepo := new(repomocks.UpvoteRepository)

		communityRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(community, nil).Once()
		upvoteRepo.On("Exists", ctx, mock.AnythingOfType("*gorm.DB"), userID, communityPathID).
			Return(false, nil).Once()
		upvoteRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Upvote")).
			Return(model.ErrConflict).Once()
		communityRepo.On("GetUpvotesCount", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(5, nil).Once()

		svc := newCommunityServiceForTest(communityRepo, upvoteRepo, new(repomocks.CommentRepository), new(repomocks.PathRepository))

		resp, err := svc.ToggleUpvote(ctx, userID, communityPathID)

		// 競合後も同一トランザクションでカウント取得まで進み、500にならないこと
		require.NoError(t, err)
		assert.True(t, resp.Upvoted)
		assert.Equal(t, 5, resp.UpvotesCount)
		communityRepo.AssertNotCalled(t, "IncrementUpvotesCount", mock.Anything, mock.Anything, mock.Anything)
		upvoteRepo.AssertExpectations(t)
		communityRepo.AssertExpectations(t)
	})

	t.Run("正常系: 並行トグルでの二重DELETEは未評価扱い", func(t *testing.T) {
		communityRepo := new(repomocks.CommunityRepository)
		upvoteRepo := new(repomocks.UpvoteRepository)

		communityRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(community, nil).Once()
		upvoteRepo.On("Exists", ctx, mock.AnythingOfType("*gorm.DB"), userID, communityPathID).
			Return(true, nil).Once()
		upvoteRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), userID, communityPathID).
			Return(model.ErrConflict).Once()
		communityRepo.On("GetUpvotesCount", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(4, nil).Once()

		svc := newCommunityServiceForTest(communityRepo, upvoteRepo, new(repomocks.CommentRepository), new(repomocks.PathRepository))

		resp, err := svc.ToggleUpvote(ctx, userID, communityPathID)

		require.NoError(t, err)
		assert.False(t, resp.Upvoted)
		assert.Equal(t, 4, resp.UpvotesCount)
		communityRepo.AssertNotCalled(t, "DecrementUpvotesCount", mock.Anything, mock.Anything, mock.Anything)
		upvoteRepo.AssertExpectations(t)
		communityRepo.AssertExpectations(t)
	})
}

func Test_communityService_AddComment(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	communityPathID := uuid.New()

	community := &model.CommunityPath{CommunityPathID: communityPathID, RootPathID: uuid.New()}

	t.Run("正常系: コメント作成とカウント加算が同一トランザクション", func(t *testing.T) {
		communityRepo := new(repomocks.CommunityRepository)
		commentRepo := new(repomocks.CommentRepository)

		communityRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(community, nil).Once()
		commentRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Comment")).
			Run(func(args mock.Arguments) {
				c := args.Get(2).(*model.Comment)
				assert.Equal(t, userID, c.UserID)
				assert.Equal(t, communityPathID, c.CommunityPathID)
				assert.Equal(t, "とても参考になりました", c.Text)
			}).
			Return(nil).Once()
		communityRepo.On("IncrementCommentsCount", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(nil).Once()

		svc := newCommunityServiceForTest(communityRepo, new(repomocks.UpvoteRepository), commentRepo, new(repomocks.PathRepository))

		comment, err := svc.AddComment(ctx, userID, communityPathID, &model.AddCommentRequest{Text: "とても参考になりました"})

		require.NoError(t, err)
		require.NotNil(t, comment)
		assert.NotEqual(t, uuid.Nil, comment.CommentID)
		commentRepo.AssertExpectations(t)
		communityRepo.AssertExpectations(t)
	})

	t.Run("異常系: カウント更新失敗でコメントはロールバックされる", func(t *testing.T) {
		communityRepo := new(repomocks.CommunityRepository)
		commentRepo := new(repomocks.CommentRepository)

		communityRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(community, nil).Once()
		commentRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Comment")).
			Return(nil).Once()
		communityRepo.On("IncrementCommentsCount", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(errors.New("deadlock")).Once()

		svc := newCommunityServiceForTest(communityRepo, new(repomocks.UpvoteRepository), commentRepo, new(repomocks.PathRepository))

		comment, err := svc.AddComment(ctx, userID, communityPathID, &model.AddCommentRequest{Text: "x"})

		require.Error(t, err)
		assert.Nil(t, comment)
	})
}

func Test_communityService_Fork(t *testing.T) {
	ctx := context.Background()
	forker := uuid.New()
	creator := uuid.New()
	communityPathID := uuid.New()
	rootPathID := uuid.New()

	rootPath := &model.LearningPath{
		PathID:           rootPathID,
		UserID:           creator,
		Goal:             "Learn Kubernetes",
		SkillLevel:       model.SkillLevelAdvanced,
		Duration:         "1 month",
		DailyCommitment:  "2 hours",
		TotalModules:     2,
		CompletedModules: 2,
		Modules: []model.Module{
			{
				ModuleID:    uuid.New(),
				PathID:      rootPathID,
				Position:    0,
				Title:       "Pods and Deployments",
				Content:     "Core workloads",
				Duration:    "2 weeks",
				IsCompleted: true,
				Videos:      datatypes.JSONSlice[model.Video]{{Title: "k8s intro"}},
			},
			{
				ModuleID:    uuid.New(),
				PathID:      rootPathID,
				Position:    1,
				Title:       "Networking",
				Content:     "Services and ingress",
				Duration:    "2 weeks",
				IsCompleted: true,
				Repos:       datatypes.JSONSlice[model.Repo]{{Name: "kubernetes/kubernetes"}},
			},
		},
	}

	t.Run("正常系: 深いコピーが進捗とキャッシュをリセットする", func(t *testing.T) {
		sourceID := rootPathID
		source := &model.CommunityPath{
			CommunityPathID:      communityPathID,
			Goal:                 "Learn Kubernetes",
			Level:                model.SkillLevelAdvanced,
			Duration:             "1 month",
			ModulesCount:         2,
			CreatorID:            creator,
			SourceLearningPathID: &sourceID,
			RootPathID:           rootPathID,
		}

		communityRepo := new(repomocks.CommunityRepository)
		pathRepo := new(repomocks.PathRepository)

		communityRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(source, nil).Once()
		pathRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), rootPathID).
			Return(rootPath, nil).Once()
		pathRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.LearningPath")).
			Run(func(args mock.Arguments) {
				p := args.Get(2).(*model.LearningPath)
				assert.NotEqual(t, rootPathID, p.PathID)
				assert.Equal(t, forker, p.UserID)
				assert.Equal(t, 0, p.CompletedModules)
				require.Len(t, p.Modules, 2)
				for i, m := range p.Modules {
					assert.NotEqual(t, rootPath.Modules[i].ModuleID, m.ModuleID)
					assert.Equal(t, p.PathID, m.PathID)
					assert.Equal(t, rootPath.Modules[i].Title, m.Title)
					assert.False(t, m.IsCompleted)
					assert.Empty(t, m.Videos)
					assert.Empty(t, m.Repos)
				}
			}).
			Return(nil).Once()
		communityRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.CommunityPath")).
			Run(func(args mock.Arguments) {
				cp := args.Get(2).(*model.CommunityPath)
				assert.Equal(t, forker, cp.CreatorID)
				assert.Nil(t, cp.SourceLearningPathID)
				require.NotNil(t, cp.ParentPathID)
				assert.Equal(t, rootPathID, *cp.ParentPathID)
				assert.Equal(t, rootPathID, cp.RootPathID)
				assert.Equal(t, model.PublicationFork, cp.Kind())
			}).
			Return(nil).Once()
		communityRepo.On("IncrementForksCount", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(nil).Once()

		svc := newCommunityServiceForTest(communityRepo, new(repomocks.UpvoteRepository), new(repomocks.CommentRepository), pathRepo)

		resp, err := svc.Fork(ctx, forker, communityPathID)

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, rootPathID, resp.CommunityPath.RootPathID)
		assert.NotEqual(t, resp.ForkedPath.PathID, rootPathID)
		communityRepo.AssertExpectations(t)
		pathRepo.AssertExpectations(t)
	})

	t.Run("正常系: フォークのフォークもルート祖先を複製する", func(t *testing.T) {
		parentID := rootPathID
		forkRecord := &model.CommunityPath{
			CommunityPathID: communityPathID,
			Goal:            "Learn Kubernetes",
			Level:           model.SkillLevelAdvanced,
			CreatorID:       creator,
			ParentPathID:    &parentID,
			RootPathID:      rootPathID,
		}

		communityRepo := new(repomocks.CommunityRepository)
		pathRepo := new(repomocks.PathRepository)

		communityRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(forkRecord, nil).Once()
		pathRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), rootPathID).
			Return(rootPath, nil).Once()
		pathRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.LearningPath")).
			Return(nil).Once()
		communityRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.CommunityPath")).
			Run(func(args mock.Arguments) {
				cp := args.Get(2).(*model.CommunityPath)
				assert.Equal(t, rootPathID, cp.RootPathID)
			}).
			Return(nil).Once()
		communityRepo.On("IncrementForksCount", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(nil).Once()

		svc := newCommunityServiceForTest(communityRepo, new(repomocks.UpvoteRepository), new(repomocks.CommentRepository), pathRepo)

		resp, err := svc.Fork(ctx, forker, communityPathID)

		require.NoError(t, err)
		require.NotNil(t, resp)
		communityRepo.AssertExpectations(t)
	})

	t.Run("異常系: ルートの学習パスが削除済み", func(t *testing.T) {
		sourceID := rootPathID
		source := &model.CommunityPath{
			CommunityPathID:      communityPathID,
			CreatorID:            creator,
			SourceLearningPathID: &sourceID,
			RootPathID:           rootPathID,
		}

		communityRepo := new(repomocks.CommunityRepository)
		pathRepo := new(repomocks.PathRepository)

		communityRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), communityPathID).
			Return(source, nil).Once()
		pathRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), rootPathID).
			Return(nil, model.ErrNotFound).Once()

		svc := newCommunityServiceForTest(communityRepo, new(repomocks.UpvoteRepository), new(repomocks.CommentRepository), pathRepo)

		resp, err := svc.Fork(ctx, forker, communityPathID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, resp)
		pathRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		communityRepo.AssertNotCalled(t, "IncrementForksCount", mock.Anything, mock.Anything, mock.Anything)
	})
}
