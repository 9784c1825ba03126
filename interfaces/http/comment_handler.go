package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamhub/domain/dto"
	"streamhub/usecase"
)

type ICommentHandler interface {
	List(ctx *gin.Context)
	Add(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type CommentHandler struct {
	commentUsecase usecase.ICommentUsecase
}

func NewCommentHandler(commentUsecase usecase.ICommentUsecase) ICommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

func (h *CommentHandler) List(ctx *gin.Context) {
	videoID, ok := parseObjectID(ctx, "videoId")
	if !ok {
		return
	}
	comments, err := h.commentUsecase.ListForVideo(ctx.Request.Context(), videoID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, comments, "Comments fetched successfully")
}

func (h *CommentHandler) Add(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	videoID, ok := parseObjectID(ctx, "videoId")
	if !ok {
		return
	}
	var req dto.ReqComment
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond(ctx, http.StatusBadRequest, nil, "Invalid request body")
		return
	}
	comment, err := h.commentUsecase.Add(ctx.Request.Context(), userID, videoID, req.Content)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, comment, "Comment added successfully")
}

func (h *CommentHandler) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	commentID, ok := parseObjectID(ctx, "commentId")
	if !ok {
		return
	}
	var req dto.ReqComment
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond(ctx, http.StatusBadRequest, nil, "Invalid request body")
		return
	}
	comment, err := h.commentUsecase.Update(ctx.Request.Context(), userID, commentID, req.Content)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, comment, "Comment updated successfully")
}

func (h *CommentHandler) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	commentID, ok := parseObjectID(ctx, "commentId")
	if !ok {
		return
	}
	if err := h.commentUsecase.Delete(ctx.Request.Context(), userID, commentID); err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, nil, "Comment deleted successfully")
}
