package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamhub/domain/dto"
	"streamhub/usecase"
)

type IPlaylistHandler interface {
	Create(ctx *gin.Context)
	Get(ctx *gin.Context)
	ListOwn(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	AddVideo(ctx *gin.Context)
	RemoveVideo(ctx *gin.Context)
}

type PlaylistHandler struct {
	playlistUsecase usecase.IPlaylistUsecase
}

func NewPlaylistHandler(playlistUsecase usecase.IPlaylistUsecase) IPlaylistHandler {
	return &PlaylistHandler{playlistUsecase: playlistUsecase}
}

func (h *PlaylistHandler) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req dto.ReqPlaylist
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond(ctx, http.StatusBadRequest, nil, "Invalid request body")
		return
	}
	playlist, err := h.playlistUsecase.Create(ctx.Request.Context(), userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, playlist, "Playlist created successfully")
}

func (h *PlaylistHandler) Get(ctx *gin.Context) {
	playlistID, ok := parseObjectID(ctx, "playlistId")
	if !ok {
		return
	}
	playlist, err := h.playlistUsecase.Get(ctx.Request.Context(), playlistID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, playlist, "Playlist fetched successfully")
}

func (h *PlaylistHandler) ListOwn(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	playlists, err := h.playlistUsecase.ListOwn(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, playlists, "Playlists fetched successfully")
}

func (h *PlaylistHandler) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	playlistID, ok := parseObjectID(ctx, "playlistId")
	if !ok {
		return
	}
	var req dto.ReqPlaylist
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond(ctx, http.StatusBadRequest, nil, "Invalid request body")
		return
	}
	playlist, err := h.playlistUsecase.Update(ctx.Request.Context(), userID, playlistID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, playlist, "Playlist updated successfully")
}

func (h *PlaylistHandler) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	playlistID, ok := parseObjectID(ctx, "playlistId")
	if !ok {
		return
	}
	if err := h.playlistUsecase.Delete(ctx.Request.Context(), userID, playlistID); err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, nil, "Playlist deleted successfully")
}

func (h *PlaylistHandler) AddVideo(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	playlistID, ok := parseObjectID(ctx, "playlistId")
	if !ok {
		return
	}
	videoID, ok := parseObjectID(ctx, "videoId")
	if !ok {
		return
	}
	playlist, err := h.playlistUsecase.AddVideo(ctx.Request.Context(), userID, playlistID, videoID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, playlist, "Video added to playlist")
}

func (h *PlaylistHandler) RemoveVideo(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	playlistID, ok := parseObjectID(ctx, "playlistId")
	if !ok {
		return
	}
	videoID, ok := parseObjectID(ctx, "videoId")
	if !ok {
		return
	}
	playlist, err := h.playlistUsecase.RemoveVideo(ctx.Request.Context(), userID, playlistID, videoID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, playlist, "Video removed from playlist")
}
