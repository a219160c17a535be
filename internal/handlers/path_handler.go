package handlers

import (
	"errors"
	"net/http"

	"go_5_path_gen/internal/middleware"
	"go_5_path_gen/internal/model"
	"go_5_path_gen/internal/service"
	"go_5_path_gen/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type PathHandler struct {
	service service.PathService
}

func NewPathHandler(s service.PathService) *PathHandler {
	return &PathHandler{service: s}
}

// GeneratePath は目標からAIで学習パスを生成して保存します
func (h *PathHandler) GeneratePath(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		logger.Error("User ID not found in context")
		webutil.HandleError(w, logger, model.ErrInternalServer)
		return
	}

	var req model.GeneratePathRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for path generation", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for path generation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	path, err := h.service.GeneratePath(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Path generation failed in service", "error", err, "goal", req.Goal)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Path generated successfully", "path_id", path.PathID)
	webutil.RespondWithJSON(w, http.StatusCreated, path, logger)
}

// ListPaths は自分の学習パス一覧を返します
func (h *PathHandler) ListPaths(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		logger.Error("User ID not found in context")
		webutil.HandleError(w, logger, model.ErrInternalServer)
		return
	}

	paths, err := h.service.ListPaths(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if paths == nil {
		paths = []*model.LearningPath{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, paths, logger)
}

// GetPath はモジュール込みの学習パス詳細を返します
func (h *PathHandler) GetPath(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		logger.Error("User ID not found in context")
		webutil.HandleError(w, logger, model.ErrInternalServer)
		return
	}

	pathID, err := parseUUIDParam(r, "path_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	path, err := h.service.GetPath(r.Context(), userID, pathID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, path, logger)
}

// DeletePath は学習パスを削除します
func (h *PathHandler) DeletePath(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		logger.Error("User ID not found in context")
		webutil.HandleError(w, logger, model.ErrInternalServer)
		return
	}

	pathID, err := parseUUIDParam(r, "path_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeletePath(r.Context(), userID, pathID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Path deleted successfully", "path_id", pathID)
	w.WriteHeader(http.StatusNoContent)
}

// ToggleModuleCompletion はモジュールの完了状態を反転し、最新の進捗を返します
func (h *PathHandler) ToggleModuleCompletion(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		logger.Error("User ID not found in context")
		webutil.HandleError(w, logger, model.ErrInternalServer)
		return
	}

	pathID, err := parseUUIDParam(r, "path_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	moduleID, err := parseUUIDParam(r, "module_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.ToggleModuleCompletion(r.Context(), userID, pathID, moduleID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetModuleVideos はモジュールの参考動画 (キャッシュ優先) を返します
func (h *PathHandler) GetModuleVideos(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		logger.Error("User ID not found in context")
		webutil.HandleError(w, logger, model.ErrInternalServer)
		return
	}

	pathID, err := parseUUIDParam(r, "path_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	moduleID, err := parseUUIDParam(r, "module_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	videos, err := h.service.FetchModuleVideos(r.Context(), userID, pathID, moduleID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if videos == nil {
		videos = []model.Video{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, videos, logger)
}

// GetModuleRepos はモジュールの参考リポジトリ (キャッシュ優先) を返します
func (h *PathHandler) GetModuleRepos(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		logger.Error("User ID not found in context")
		webutil.HandleError(w, logger, model.ErrInternalServer)
		return
	}

	pathID, err := parseUUIDParam(r, "path_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	moduleID, err := parseUUIDParam(r, "module_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	repos, err := h.service.FetchModuleRepos(r.Context(), userID, pathID, moduleID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if repos == nil {
		repos = []model.Repo{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, repos, logger)
}

// parseUUIDParam はURLパラメータをUUIDとして解釈します
func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_PATH_PARAM", "URLパラメータの形式が正しくありません。", name, model.ErrInvalidInput)
	}
	return id, nil
}
