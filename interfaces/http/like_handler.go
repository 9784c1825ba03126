package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamhub/usecase"
)

type ILikeHandler interface {
	ToggleVideoLike(ctx *gin.Context)
	ToggleCommentLike(ctx *gin.Context)
	GetLikedVideos(ctx *gin.Context)
}

type LikeHandler struct {
	likeUsecase usecase.ILikeUsecase
}

func NewLikeHandler(likeUsecase usecase.ILikeUsecase) ILikeHandler {
	return &LikeHandler{likeUsecase: likeUsecase}
}

func (h *LikeHandler) ToggleVideoLike(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	videoID, ok := parseObjectID(ctx, "videoId")
	if !ok {
		return
	}
	liked, err := h.likeUsecase.ToggleVideoLike(ctx.Request.Context(), userID, videoID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, gin.H{"liked": liked}, "Like toggled successfully")
}

func (h *LikeHandler) ToggleCommentLike(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	commentID, ok := parseObjectID(ctx, "commentId")
	if !ok {
		return
	}
	liked, err := h.likeUsecase.ToggleCommentLike(ctx.Request.Context(), userID, commentID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, gin.H{"liked": liked}, "Like toggled successfully")
}

func (h *LikeHandler) GetLikedVideos(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	videos, err := h.likeUsecase.GetLikedVideos(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, videos, "Liked videos fetched successfully")
}
