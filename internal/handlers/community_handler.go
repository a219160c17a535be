package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go_5_path_gen/internal/middleware"
	"go_5_path_gen/internal/model"
	"go_5_path_gen/internal/service"
	"go_5_path_gen/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type CommunityHandler struct {
	service service.CommunityService
}

func NewCommunityHandler(s service.CommunityService) *CommunityHandler {
	return &CommunityHandler{service: s}
}

// Publish は自分の学習パスをコミュニティに公開します
func (h *CommunityHandler) Publish(w http.ResponseWriter, r *http.Request) {
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

	community, err := h.service.Publish(r.Context(), userID, pathID)
	if err != nil {
		logger.Error("Publish failed in service", "error", err, "path_id", pathID)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Path published successfully", "community_path_id", community.CommunityPathID)
	webutil.RespondWithJSON(w, http.StatusCreated, community, logger)
}

// List は公開パスの一覧をページネーション付きで返します
func (h *CommunityHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	list, err := h.service.List(r.Context(), page, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if list.Items == nil {
		list.Items = []*model.CommunityPath{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, list, logger)
}

// GetDetails は公開パスの詳細 (元の学習パス本体込み) を返します
func (h *CommunityHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	communityPathID, err := parseUUIDParam(r, "community_path_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	details, err := h.service.GetDetails(r.Context(), communityPathID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, details, logger)
}

// ToggleUpvote は高評価のオン/オフを切り替えます
func (h *CommunityHandler) ToggleUpvote(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		logger.Error("User ID not found in context")
		webutil.HandleError(w, logger, model.ErrInternalServer)
		return
	}

	communityPathID, err := parseUUIDParam(r, "community_path_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.ToggleUpvote(r.Context(), userID, communityPathID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// AddComment は公開パスへコメントを投稿します
func (h *CommunityHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		logger.Error("User ID not found in context")
		webutil.HandleError(w, logger, model.ErrInternalServer)
		return
	}

	communityPathID, err := parseUUIDParam(r, "community_path_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.AddCommentRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for comment", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for comment", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	comment, err := h.service.AddComment(r.Context(), userID, communityPathID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, comment, logger)
}

// ListComments は公開パスのコメント一覧を返します
func (h *CommunityHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	communityPathID, err := parseUUIDParam(r, "community_path_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	comments, err := h.service.ListComments(r.Context(), communityPathID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if comments == nil {
		comments = []*model.Comment{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, comments, logger)
}

// Fork は公開パスを自分のワークスペースへ複製します
func (h *CommunityHandler) Fork(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		logger.Error("User ID not found in context")
		webutil.HandleError(w, logger, model.ErrInternalServer)
		return
	}

	communityPathID, err := parseUUIDParam(r, "community_path_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Fork(r.Context(), userID, communityPathID)
	if err != nil {
		logger.Error("Fork failed in service", "error", err, "community_path_id", communityPathID)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Path forked successfully",
		"community_path_id", communityPathID,
		"forked_path_id", resp.ForkedPath.PathID,
	)
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}
