package usecase

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/dto"
	"streamhub/domain/model"
	"streamhub/domain/repository"
	"streamhub/infrastructure/logger"
	"streamhub/infrastructure/storage"
	"streamhub/infrastructure/utils"
)

type IUserUsecase interface {
	Register(ctx context.Context, req dto.ReqRegister) (model.User, error)
	Login(ctx context.Context, req dto.ReqLogin) (dto.ResLogin, error)
	// RefreshSession rotates the token pair after comparing the presented
	// refresh token with the one stored on the user record.
	RefreshSession(ctx context.Context, refreshToken string) (dto.ResTokens, error)
	Logout(ctx context.Context, userID bson.ObjectID) error
	GetCurrentUser(ctx context.Context, userID bson.ObjectID) (model.User, error)
	UpdateAccount(ctx context.Context, userID bson.ObjectID, req dto.ReqUpdateAccount) (model.User, error)
	ChangePassword(ctx context.Context, userID bson.ObjectID, req dto.ReqChangePassword) error
	UpdateAvatar(ctx context.Context, userID bson.ObjectID, localPath string) (model.User, error)
	UpdateCoverImage(ctx context.Context, userID bson.ObjectID, localPath string) (model.User, error)
	GetWatchHistory(ctx context.Context, userID bson.ObjectID) (dto.WatchHistory, error)
}

type userUsecase struct {
	userRepo repository.IUser
	viewRepo repository.IDerivedView
	tokens   utils.ITokenManager
	media    storage.IMediaStorage
}

func NewUserUsecase(userRepo repository.IUser, viewRepo repository.IDerivedView, tokens utils.ITokenManager, media storage.IMediaStorage) IUserUsecase {
	return &userUsecase{userRepo: userRepo, viewRepo: viewRepo, tokens: tokens, media: media}
}

func (u *userUsecase) Register(ctx context.Context, req dto.ReqRegister) (model.User, error) {
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Fullname = strings.TrimSpace(req.Fullname)
	if req.Username == "" || req.Email == "" || req.Fullname == "" || req.Password == "" {
		return model.User{}, model.NewValidationError("All fields are required")
	}
	if req.AvatarPath == "" {
		return model.User{}, model.NewValidationError("Avatar file is required")
	}

	if _, err := u.userRepo.GetByUsernameOrEmail(ctx, req.Username, req.Email); err == nil {
		return model.User{}, model.NewConflictError("User with email or username already exists")
	} else if model.AsApiError(err).StatusCode != http.StatusNotFound {
		return model.User{}, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return model.User{}, err
	}

	avatarURL, err := u.media.Upload(ctx, req.AvatarPath)
	if err != nil {
		return model.User{}, err
	}
	coverURL := ""
	if req.CoverImagePath != "" {
		coverURL, err = u.media.Upload(ctx, req.CoverImagePath)
		if err != nil {
			logger.GetLogger().WithField("avatar", avatarURL).
				Warn("cover image upload failed after avatar upload; hosted file orphaned")
			return model.User{}, err
		}
	}

	user := model.User{
		Username:     req.Username,
		Email:        req.Email,
		Fullname:     req.Fullname,
		Password:     hash,
		Avatar:       avatarURL,
		CoverImage:   coverURL,
		WatchHistory: []bson.ObjectID{},
	}
	created, err := u.userRepo.Create(ctx, user)
	if err != nil {
		// The uploads already happened; the hosted files are orphaned now.
		logger.GetLogger().WithField("avatar", avatarURL).WithField("coverImage", coverURL).
			Warn("user create failed after media upload; hosted files orphaned")
		return model.User{}, err
	}
	logger.GetLogger().WithField("username", created.Username).Info("user registered")
	return created, nil
}

func (u *userUsecase) Login(ctx context.Context, req dto.ReqLogin) (dto.ResLogin, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" && email == "" {
		return dto.ResLogin{}, model.NewValidationError("Username or email is required")
	}

	user, err := u.userRepo.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if model.AsApiError(err).StatusCode == http.StatusNotFound {
			return dto.ResLogin{}, model.NewNotFoundError("User does not exist")
		}
		return dto.ResLogin{}, err
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		return dto.ResLogin{}, model.NewUnauthorizedError("Invalid user credentials")
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return dto.ResLogin{}, err
	}
	user.Password = ""
	return dto.ResLogin{User: user, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (u *userUsecase) RefreshSession(ctx context.Context, refreshToken string) (dto.ResTokens, error) {
	if refreshToken == "" {
		return dto.ResTokens{}, model.NewUnauthorizedError("Refresh token is required")
	}
	subject, err := u.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return dto.ResTokens{}, err
	}
	userID, err := bson.ObjectIDFromHex(subject)
	if err != nil {
		return dto.ResTokens{}, model.NewUnauthorizedError("Invalid refresh token")
	}
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return dto.ResTokens{}, model.NewUnauthorizedError("Invalid refresh token")
	}
	// A rotated or cleared credential no longer matches the stored one.
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return dto.ResTokens{}, model.NewUnauthorizedError("Refresh token is expired or used")
	}
	return u.issueTokens(ctx, user)
}

func (u *userUsecase) issueTokens(ctx context.Context, user model.User) (dto.ResTokens, error) {
	accessToken, err := u.tokens.GenerateAccessToken(user)
	if err != nil {
		return dto.ResTokens{}, err
	}
	refreshToken, err := u.tokens.GenerateRefreshToken(user.ID.Hex())
	if err != nil {
		return dto.ResTokens{}, err
	}
	if err := u.userRepo.SetRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return dto.ResTokens{}, err
	}
	return dto.ResTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (u *userUsecase) Logout(ctx context.Context, userID bson.ObjectID) error {
	return u.userRepo.SetRefreshToken(ctx, userID, "")
}

func (u *userUsecase) GetCurrentUser(ctx context.Context, userID bson.ObjectID) (model.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

func (u *userUsecase) UpdateAccount(ctx context.Context, userID bson.ObjectID, req dto.ReqUpdateAccount) (model.User, error) {
	fullname := strings.TrimSpace(req.Fullname)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if fullname == "" || email == "" {
		return model.User{}, model.NewValidationError("Fullname and email are required")
	}
	return u.userRepo.UpdateAccount(ctx, userID, fullname, email)
}

func (u *userUsecase) ChangePassword(ctx context.Context, userID bson.ObjectID, req dto.ReqChangePassword) error {
	if req.OldPassword == "" || req.NewPassword == "" {
		return model.NewValidationError("Old and new passwords are required")
	}
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(user.Password, req.OldPassword) {
		return model.NewBadRequestError("Invalid old password")
	}
	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, userID, hash)
}

func (u *userUsecase) UpdateAvatar(ctx context.Context, userID bson.ObjectID, localPath string) (model.User, error) {
	if localPath == "" {
		return model.User{}, model.NewValidationError("Avatar file is required")
	}
	url, err := u.media.Upload(ctx, localPath)
	if err != nil {
		return model.User{}, err
	}
	return u.userRepo.UpdateAvatar(ctx, userID, url)
}

func (u *userUsecase) UpdateCoverImage(ctx context.Context, userID bson.ObjectID, localPath string) (model.User, error) {
	if localPath == "" {
		return model.User{}, model.NewValidationError("Cover image file is required")
	}
	url, err := u.media.Upload(ctx, localPath)
	if err != nil {
		return model.User{}, err
	}
	return u.userRepo.UpdateCoverImage(ctx, userID, url)
}

func (u *userUsecase) GetWatchHistory(ctx context.Context, userID bson.ObjectID) (dto.WatchHistory, error) {
	return u.viewRepo.WatchHistory(ctx, userID)
}
