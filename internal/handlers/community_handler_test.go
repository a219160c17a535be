package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_path_gen/internal/handlers"
	"go_5_path_gen/internal/middleware"
	"go_5_path_gen/internal/model"
	"go_5_path_gen/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCommunityRouter(h *handlers.CommunityHandler) *chi.Mux {
	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(middleware.DevUserContextMiddleware)
		r.Post("/api/v1/paths/{path_id}/publish", h.Publish)
		r.Get("/api/v1/community", h.List)
		r.Get("/api/v1/community/{community_path_id}", h.GetDetails)
		r.Get("/api/v1/community/{community_path_id}/comments", h.ListComments)
		r.Post("/api/v1/community/{community_path_id}/upvote", h.ToggleUpvote)
		r.Post("/api/v1/community/{community_path_id}/comments", h.AddComment)
		r.Post("/api/v1/community/{community_path_id}/fork", h.Fork)
	})
	return router
}

func TestCommunityHandler_Publish(t *testing.T) {
	userID := uuid.New()
	pathID := uuid.New()

	tests := []struct {
		name           string
		userID         *uuid.UUID
		pathIDParam    string
		setupMock      func(svc *mocks.CommunityService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:        "Success - Publish own path",
			userID:      &userID,
			pathIDParam: pathID.String(),
			setupMock: func(svc *mocks.CommunityService) {
				community := &model.CommunityPath{
					CommunityPathID:      uuid.New(),
					CreatorID:            userID,
					SourceLearningPathID: &pathID,
					RootPathID:           pathID,
				}
				svc.On("Publish", mock.AnythingOfType("*context.valueCtx"), userID, pathID).
					Return(community, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "Fail - Already published",
			userID:      &userID,
			pathIDParam: pathID.String(),
			setupMock: func(svc *mocks.CommunityService) {
				appErr := model.NewAppError("ALREADY_PUBLISHED", "この学習パスは既に公開されています。", "", model.ErrAlreadyPublished)
				svc.On("Publish", mock.AnythingOfType("*context.valueCtx"), userID, pathID).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "ALREADY_PUBLISHED",
		},
		{
			name:           "Fail - Invalid UUID format",
			userID:         &userID,
			pathIDParam:    "not-a-uuid",
			setupMock:      func(svc *mocks.CommunityService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_PATH_PARAM",
		},
		{
			name:           "Fail - Missing user ID",
			userID:         nil,
			pathIDParam:    pathID.String(),
			setupMock:      func(svc *mocks.CommunityService) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewCommunityService(t)
			tc.setupMock(mockService)
			router := newCommunityRouter(handlers.NewCommunityHandler(mockService))

			url := fmt.Sprintf("/api/v1/paths/%s/publish", tc.pathIDParam)
			req := createRequest(t, "POST", url, nil, tc.userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				assertErrorResponse(t, rr.Body.Bytes(), tc.expectedCode)
			}
		})
	}
}

func TestCommunityHandler_List(t *testing.T) {
	userID := uuid.New()

	t.Run("Success - Pagination params are forwarded", func(t *testing.T) {
		mockService := mocks.NewCommunityService(t)
		list := &model.CommunityPathList{
			Items:      []*model.CommunityPath{{CommunityPathID: uuid.New()}},
			TotalCount: 21,
			Page:       2,
			Limit:      10,
		}
		mockService.On("List", mock.AnythingOfType("*context.valueCtx"), 2, 10).
			Return(list, nil).Once()
		router := newCommunityRouter(handlers.NewCommunityHandler(mockService))

		req := createRequest(t, "GET", "/api/v1/community?page=2&limit=10", nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got model.CommunityPathList
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, int64(21), got.TotalCount)
		assert.Len(t, got.Items, 1)
	})

	t.Run("Success - Missing params default to zero values", func(t *testing.T) {
		mockService := mocks.NewCommunityService(t)
		list := &model.CommunityPathList{Items: nil, TotalCount: 0, Page: 1, Limit: 20}
		mockService.On("List", mock.AnythingOfType("*context.valueCtx"), 0, 0).
			Return(list, nil).Once()
		router := newCommunityRouter(handlers.NewCommunityHandler(mockService))

		req := createRequest(t, "GET", "/api/v1/community", nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got struct {
			Items []json.RawMessage `json:"items"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.NotNil(t, got.Items, "items should be an empty array, not null")
	})

	t.Run("Fail - Unauthenticated read is rejected", func(t *testing.T) {
		mockService := mocks.NewCommunityService(t)
		router := newCommunityRouter(handlers.NewCommunityHandler(mockService))

		req := createRequest(t, "GET", "/api/v1/community", nil, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestCommunityHandler_GetDetails(t *testing.T) {
	userID := uuid.New()
	communityPathID := uuid.New()

	t.Run("Success - Returns details", func(t *testing.T) {
		mockService := mocks.NewCommunityService(t)
		details := &model.CommunityPathDetails{
			CommunityPath: &model.CommunityPath{CommunityPathID: communityPathID, RootPathID: uuid.New()},
		}
		mockService.On("GetDetails", mock.AnythingOfType("*context.valueCtx"), communityPathID).
			Return(details, nil).Once()
		router := newCommunityRouter(handlers.NewCommunityHandler(mockService))

		req := createRequest(t, "GET", fmt.Sprintf("/api/v1/community/%s", communityPathID), nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Fail - Not found", func(t *testing.T) {
		mockService := mocks.NewCommunityService(t)
		appErr := model.NewAppError("COMMUNITY_PATH_NOT_FOUND", "公開パスが見つかりません。", "", model.ErrNotFound)
		mockService.On("GetDetails", mock.AnythingOfType("*context.valueCtx"), communityPathID).
			Return(nil, appErr).Once()
		router := newCommunityRouter(handlers.NewCommunityHandler(mockService))

		req := createRequest(t, "GET", fmt.Sprintf("/api/v1/community/%s", communityPathID), nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assertErrorResponse(t, rr.Body.Bytes(), "COMMUNITY_PATH_NOT_FOUND")
	})
}

func TestCommunityHandler_ToggleUpvote(t *testing.T) {
	userID := uuid.New()
	communityPathID := uuid.New()

	t.Run("Success - Returns the new state and count", func(t *testing.T) {
		mockService := mocks.NewCommunityService(t)
		mockService.On("ToggleUpvote", mock.AnythingOfType("*context.valueCtx"), userID, communityPathID).
			Return(&model.ToggleUpvoteResponse{Upvoted: true, UpvotesCount: 5}, nil).Once()
		router := newCommunityRouter(handlers.NewCommunityHandler(mockService))

		url := fmt.Sprintf("/api/v1/community/%s/upvote", communityPathID)
		req := createRequest(t, "POST", url, nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got model.ToggleUpvoteResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.True(t, got.Upvoted)
		assert.Equal(t, 5, got.UpvotesCount)
	})

	t.Run("Fail - Missing user ID", func(t *testing.T) {
		mockService := mocks.NewCommunityService(t)
		router := newCommunityRouter(handlers.NewCommunityHandler(mockService))

		url := fmt.Sprintf("/api/v1/community/%s/upvote", communityPathID)
		req := createRequest(t, "POST", url, nil, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestCommunityHandler_AddComment(t *testing.T) {
	userID := uuid.New()
	communityPathID := uuid.New()

	validReqBody := model.AddCommentRequest{Text: "とても参考になりました"}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(svc *mocks.CommunityService)
		expectedStatus int
	}{
		{
			name: "Success - Valid comment",
			body: validReqBody,
			setupMock: func(svc *mocks.CommunityService) {
				comment := &model.Comment{
					CommentID:       uuid.New(),
					CommunityPathID: communityPathID,
					UserID:          userID,
					Text:            validReqBody.Text,
				}
				svc.On("AddComment", mock.AnythingOfType("*context.valueCtx"), userID, communityPathID, &validReqBody).
					Return(comment, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Fail - Empty comment text",
			body:           model.AddCommentRequest{Text: ""},
			setupMock:      func(svc *mocks.CommunityService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail - Invalid JSON body",
			body:           `{"text": "bad json`,
			setupMock:      func(svc *mocks.CommunityService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewCommunityService(t)
			tc.setupMock(mockService)
			router := newCommunityRouter(handlers.NewCommunityHandler(mockService))

			url := fmt.Sprintf("/api/v1/community/%s/comments", communityPathID)
			req := createRequest(t, "POST", url, tc.body, &userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestCommunityHandler_Fork(t *testing.T) {
	userID := uuid.New()
	communityPathID := uuid.New()

	t.Run("Success - Returns forked path and community record", func(t *testing.T) {
		mockService := mocks.NewCommunityService(t)
		rootPathID := uuid.New()
		resp := &model.ForkResponse{
			ForkedPath: &model.LearningPath{PathID: uuid.New(), UserID: userID},
			CommunityPath: &model.CommunityPath{
				CommunityPathID: uuid.New(),
				CreatorID:       userID,
				ParentPathID:    &rootPathID,
				RootPathID:      rootPathID,
			},
		}
		mockService.On("Fork", mock.AnythingOfType("*context.valueCtx"), userID, communityPathID).
			Return(resp, nil).Once()
		router := newCommunityRouter(handlers.NewCommunityHandler(mockService))

		url := fmt.Sprintf("/api/v1/community/%s/fork", communityPathID)
		req := createRequest(t, "POST", url, nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var got model.ForkResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, resp.ForkedPath.PathID, got.ForkedPath.PathID)
	})

	t.Run("Fail - Root path deleted", func(t *testing.T) {
		mockService := mocks.NewCommunityService(t)
		appErr := model.NewAppError("SOURCE_PATH_GONE", "元の学習パスが削除されているため、フォークできません。", "", model.ErrNotFound)
		mockService.On("Fork", mock.AnythingOfType("*context.valueCtx"), userID, communityPathID).
			Return(nil, appErr).Once()
		router := newCommunityRouter(handlers.NewCommunityHandler(mockService))

		url := fmt.Sprintf("/api/v1/community/%s/fork", communityPathID)
		req := createRequest(t, "POST", url, nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assertErrorResponse(t, rr.Body.Bytes(), "SOURCE_PATH_GONE")
	})
}
