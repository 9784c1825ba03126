package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamhub/domain/dto"
	"streamhub/infrastructure/storage"
	"streamhub/usecase"
)

type IUserHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	RefreshToken(ctx *gin.Context)
	Logout(ctx *gin.Context)
	GetCurrentUser(ctx *gin.Context)
	UpdateAccount(ctx *gin.Context)
	ChangePassword(ctx *gin.Context)
	UpdateAvatar(ctx *gin.Context)
	UpdateCoverImage(ctx *gin.Context)
	GetWatchHistory(ctx *gin.Context)
}

type UserHandler struct {
	userUsecase usecase.IUserUsecase
}

func NewUserHandler(userUsecase usecase.IUserUsecase) IUserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

const (
	refreshTokenCookie = "refreshToken"
	accessTokenCookie  = "accessToken"
)

func setAuthCookies(ctx *gin.Context, accessToken, refreshToken string) {
	ctx.SetCookie(accessTokenCookie, accessToken, 0, "/", "", true, true)
	ctx.SetCookie(refreshTokenCookie, refreshToken, 0, "/", "", true, true)
}

func clearAuthCookies(ctx *gin.Context) {
	ctx.SetCookie(accessTokenCookie, "", -1, "/", "", true, true)
	ctx.SetCookie(refreshTokenCookie, "", -1, "/", "", true, true)
}

// Register accepts a multipart form: text fields plus an avatar file and an
// optional cover image.
func (h *UserHandler) Register(ctx *gin.Context) {
	req := dto.ReqRegister{
		Username: ctx.PostForm("username"),
		Fullname: ctx.PostForm("fullname"),
		Email:    ctx.PostForm("email"),
		Password: ctx.PostForm("password"),
	}

	avatarPath, ok := saveUploadedFile(ctx, "avatar")
	if !ok {
		return
	}
	defer storage.Cleanup(avatarPath)
	req.AvatarPath = avatarPath

	coverPath, ok := saveUploadedFile(ctx, "coverImage")
	if !ok {
		return
	}
	defer storage.Cleanup(coverPath)
	req.CoverImagePath = coverPath

	user, err := h.userUsecase.Register(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, user, "User registered successfully")
}

func (h *UserHandler) Login(ctx *gin.Context) {
	var req dto.ReqLogin
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond(ctx, http.StatusBadRequest, nil, "Invalid request body")
		return
	}
	res, err := h.userUsecase.Login(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	setAuthCookies(ctx, res.AccessToken, res.RefreshToken)
	respond(ctx, http.StatusOK, res, "User logged in successfully")
}

// RefreshToken accepts the refresh token from the cookie or the body.
func (h *UserHandler) RefreshToken(ctx *gin.Context) {
	token, _ := ctx.Cookie(refreshTokenCookie)
	if token == "" {
		var req dto.ReqRefreshToken
		if err := ctx.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	res, err := h.userUsecase.RefreshSession(ctx.Request.Context(), token)
	if err != nil {
		respondError(ctx, err)
		return
	}
	setAuthCookies(ctx, res.AccessToken, res.RefreshToken)
	respond(ctx, http.StatusOK, res, "Access token refreshed")
}

func (h *UserHandler) Logout(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	if err := h.userUsecase.Logout(ctx.Request.Context(), userID); err != nil {
		respondError(ctx, err)
		return
	}
	clearAuthCookies(ctx)
	respond(ctx, http.StatusOK, nil, "User logged out successfully")
}

func (h *UserHandler) GetCurrentUser(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	user, err := h.userUsecase.GetCurrentUser(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, user, "Current user fetched successfully")
}

func (h *UserHandler) UpdateAccount(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req dto.ReqUpdateAccount
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond(ctx, http.StatusBadRequest, nil, "Invalid request body")
		return
	}
	user, err := h.userUsecase.UpdateAccount(ctx.Request.Context(), userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, user, "Account details updated successfully")
}

func (h *UserHandler) ChangePassword(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req dto.ReqChangePassword
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respond(ctx, http.StatusBadRequest, nil, "Invalid request body")
		return
	}
	if err := h.userUsecase.ChangePassword(ctx.Request.Context(), userID, req); err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, nil, "Password changed successfully")
}

func (h *UserHandler) UpdateAvatar(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	path, ok := saveUploadedFile(ctx, "avatar")
	if !ok {
		return
	}
	defer storage.Cleanup(path)

	user, err := h.userUsecase.UpdateAvatar(ctx.Request.Context(), userID, path)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, user, "Avatar updated successfully")
}

func (h *UserHandler) UpdateCoverImage(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	path, ok := saveUploadedFile(ctx, "coverImage")
	if !ok {
		return
	}
	defer storage.Cleanup(path)

	user, err := h.userUsecase.UpdateCoverImage(ctx.Request.Context(), userID, path)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, user, "Cover image updated successfully")
}

func (h *UserHandler) GetWatchHistory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	history, err := h.userUsecase.GetWatchHistory(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, history, "Watch history fetched successfully")
}
