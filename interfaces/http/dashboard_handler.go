package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamhub/usecase"
)

type IDashboardHandler interface {
	GetStats(ctx *gin.Context)
	GetVideos(ctx *gin.Context)
}

type DashboardHandler struct {
	dashboardUsecase usecase.IDashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.IDashboardUsecase) IDashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (h *DashboardHandler) GetStats(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	stats, err := h.dashboardUsecase.GetStats(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, stats, "Channel stats fetched successfully")
}

func (h *DashboardHandler) GetVideos(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	videos, err := h.dashboardUsecase.GetVideos(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, videos, "Channel videos fetched successfully")
}
