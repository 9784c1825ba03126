package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamhub/usecase"
)

type IChannelHandler interface {
	GetProfile(ctx *gin.Context)
}

type ChannelHandler struct {
	channelUsecase usecase.IChannelUsecase
}

func NewChannelHandler(channelUsecase usecase.IChannelUsecase) IChannelHandler {
	return &ChannelHandler{channelUsecase: channelUsecase}
}

func (h *ChannelHandler) GetProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	profile, err := h.channelUsecase.GetProfile(ctx.Request.Context(), ctx.Param("username"), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, profile, "Channel profile fetched successfully")
}
