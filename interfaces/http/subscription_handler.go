package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamhub/usecase"
)

type ISubscriptionHandler interface {
	Subscribe(ctx *gin.Context)
	Unsubscribe(ctx *gin.Context)
}

type SubscriptionHandler struct {
	subscriptionUsecase usecase.ISubscriptionUsecase
}

func NewSubscriptionHandler(subscriptionUsecase usecase.ISubscriptionUsecase) ISubscriptionHandler {
	return &SubscriptionHandler{subscriptionUsecase: subscriptionUsecase}
}

func (h *SubscriptionHandler) Subscribe(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	channelID, ok := parseObjectID(ctx, "channelId")
	if !ok {
		return
	}
	sub, err := h.subscriptionUsecase.Subscribe(ctx.Request.Context(), userID, channelID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, sub, "Subscribed successfully")
}

func (h *SubscriptionHandler) Unsubscribe(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	channelID, ok := parseObjectID(ctx, "channelId")
	if !ok {
		return
	}
	if err := h.subscriptionUsecase.Unsubscribe(ctx.Request.Context(), userID, channelID); err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, nil, "Unsubscribed successfully")
}
