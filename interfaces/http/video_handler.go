package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamhub/domain/dto"
	"streamhub/infrastructure/storage"
	"streamhub/usecase"
)

type IVideoHandler interface {
	Publish(ctx *gin.Context)
	Get(ctx *gin.Context)
	ListOwn(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	TogglePublish(ctx *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

// Publish accepts a multipart form with title, description, the video file
// and a thumbnail.
func (h *VideoHandler) Publish(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	req := dto.ReqPublishVideo{
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
	}

	videoPath, ok := saveUploadedFile(ctx, "videoFile")
	if !ok {
		return
	}
	defer storage.Cleanup(videoPath)
	req.VideoPath = videoPath

	thumbnailPath, ok := saveUploadedFile(ctx, "thumbnail")
	if !ok {
		return
	}
	defer storage.Cleanup(thumbnailPath)
	req.ThumbnailPath = thumbnailPath

	video, err := h.videoUsecase.Publish(ctx.Request.Context(), userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, video, "Video published successfully")
}

func (h *VideoHandler) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	videoID, ok := parseObjectID(ctx, "videoId")
	if !ok {
		return
	}
	video, err := h.videoUsecase.Get(ctx.Request.Context(), userID, videoID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, video, "Video fetched successfully")
}

func (h *VideoHandler) ListOwn(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	videos, err := h.videoUsecase.ListOwn(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, videos, "Videos fetched successfully")
}

// Update accepts a multipart form; absent fields keep their stored value.
func (h *VideoHandler) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	videoID, ok := parseObjectID(ctx, "videoId")
	if !ok {
		return
	}
	req := dto.ReqUpdateVideo{
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
	}
	thumbnailPath, ok := saveUploadedFile(ctx, "thumbnail")
	if !ok {
		return
	}
	defer storage.Cleanup(thumbnailPath)
	req.ThumbnailPath = thumbnailPath

	video, err := h.videoUsecase.Update(ctx.Request.Context(), userID, videoID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, video, "Video updated successfully")
}

func (h *VideoHandler) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	videoID, ok := parseObjectID(ctx, "videoId")
	if !ok {
		return
	}
	if err := h.videoUsecase.Delete(ctx.Request.Context(), userID, videoID); err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, nil, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublish(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	videoID, ok := parseObjectID(ctx, "videoId")
	if !ok {
		return
	}
	video, err := h.videoUsecase.TogglePublish(ctx.Request.Context(), userID, videoID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, video, "Publish status toggled successfully")
}
