package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/dto"
	"streamhub/domain/model"
	"streamhub/infrastructure/utils"
	"streamhub/usecase"
)

func newUserUsecase() (*MockUserRepository, *MockDerivedView, *MockTokenManager, *MockMediaStorage, usecase.IUserUsecase) {
	userRepo := new(MockUserRepository)
	viewRepo := new(MockDerivedView)
	tokens := new(MockTokenManager)
	media := new(MockMediaStorage)
	return userRepo, viewRepo, tokens, media, usecase.NewUserUsecase(userRepo, viewRepo, tokens, media)
}

func TestUserUsecase_Register(t *testing.T) {
	userRepo, _, _, media, uc := newUserUsecase()

	userRepo.On("GetByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").
		Return(model.User{}, model.NewNotFoundError("User not found"))
	media.On("Upload", mock.Anything, "/tmp/avatar.png").Return("https://cdn.example.com/avatar.png", nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Username == "alice" && u.Avatar == "https://cdn.example.com/avatar.png" && u.Password != "secret"
	})).Return(model.User{ID: bson.NewObjectID(), Username: "alice"}, nil)

	created, err := uc.Register(context.Background(), dto.ReqRegister{
		Username:   "Alice",
		Fullname:   "Alice Doe",
		Email:      "Alice@Example.com",
		Password:   "secret",
		AvatarPath: "/tmp/avatar.png",
	})
	assert.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	userRepo.AssertExpectations(t)
	media.AssertExpectations(t)
}

func TestUserUsecase_RegisterDuplicate(t *testing.T) {
	userRepo, _, _, _, uc := newUserUsecase()

	userRepo.On("GetByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").
		Return(model.User{Username: "alice"}, nil)

	_, err := uc.Register(context.Background(), dto.ReqRegister{
		Username:   "alice",
		Fullname:   "Alice Doe",
		Email:      "alice@example.com",
		Password:   "secret",
		AvatarPath: "/tmp/avatar.png",
	})
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, model.AsApiError(err).StatusCode)
}

// A failed cover upload aborts registration without creating the user; the
// already-hosted avatar is orphaned and only logged.
func TestUserUsecase_RegisterCoverUploadFailure(t *testing.T) {
	userRepo, _, _, media, uc := newUserUsecase()

	userRepo.On("GetByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").
		Return(model.User{}, model.NewNotFoundError("User not found"))
	media.On("Upload", mock.Anything, "/tmp/avatar.png").Return("https://cdn.example.com/avatar.png", nil)
	media.On("Upload", mock.Anything, "/tmp/cover.png").
		Return("", model.NewInternalError("File could not be uploaded"))

	_, err := uc.Register(context.Background(), dto.ReqRegister{
		Username:       "alice",
		Fullname:       "Alice Doe",
		Email:          "alice@example.com",
		Password:       "secret",
		AvatarPath:     "/tmp/avatar.png",
		CoverImagePath: "/tmp/cover.png",
	})
	assert.Error(t, err)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserUsecase_RegisterRequiresAvatar(t *testing.T) {
	_, _, _, _, uc := newUserUsecase()

	_, err := uc.Register(context.Background(), dto.ReqRegister{
		Username: "alice",
		Fullname: "Alice Doe",
		Email:    "alice@example.com",
		Password: "secret",
	})
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, model.AsApiError(err).StatusCode)
}

func TestUserUsecase_LoginWrongPassword(t *testing.T) {
	userRepo, _, _, _, uc := newUserUsecase()

	hash, err := utils.HashPassword("right-password")
	assert.NoError(t, err)
	userRepo.On("GetByUsernameOrEmail", mock.Anything, "alice", "").
		Return(model.User{ID: bson.NewObjectID(), Username: "alice", Password: hash}, nil)

	_, err = uc.Login(context.Background(), dto.ReqLogin{Username: "alice", Password: "wrong-password"})
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, model.AsApiError(err).StatusCode)
}

func TestUserUsecase_LoginPersistsRefreshToken(t *testing.T) {
	userRepo, _, tokens, _, uc := newUserUsecase()

	userID := bson.NewObjectID()
	hash, err := utils.HashPassword("secret")
	assert.NoError(t, err)
	user := model.User{ID: userID, Username: "alice", Password: hash}

	userRepo.On("GetByUsernameOrEmail", mock.Anything, "alice", "").Return(user, nil)
	tokens.On("GenerateAccessToken", mock.Anything).Return("access-token", nil)
	tokens.On("GenerateRefreshToken", userID.Hex()).Return("refresh-token", nil)
	userRepo.On("SetRefreshToken", mock.Anything, userID, "refresh-token").Return(nil)

	res, err := uc.Login(context.Background(), dto.ReqLogin{Username: "alice", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, "access-token", res.AccessToken)
	assert.Empty(t, res.User.Password)
	userRepo.AssertExpectations(t)
}

func TestUserUsecase_RefreshSessionRejectsRotatedToken(t *testing.T) {
	userRepo, _, tokens, _, uc := newUserUsecase()

	userID := bson.NewObjectID()
	tokens.On("VerifyRefreshToken", "old-token").Return(userID.Hex(), nil)
	userRepo.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID, RefreshToken: "current-token"}, nil)

	_, err := uc.RefreshSession(context.Background(), "old-token")
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, model.AsApiError(err).StatusCode)
}

func TestUserUsecase_RefreshSessionRotates(t *testing.T) {
	userRepo, _, tokens, _, uc := newUserUsecase()

	userID := bson.NewObjectID()
	user := model.User{ID: userID, Username: "alice", RefreshToken: "presented-token"}
	tokens.On("VerifyRefreshToken", "presented-token").Return(userID.Hex(), nil)
	userRepo.On("GetByID", mock.Anything, userID).Return(user, nil)
	tokens.On("GenerateAccessToken", mock.Anything).Return("new-access", nil)
	tokens.On("GenerateRefreshToken", userID.Hex()).Return("new-refresh", nil)
	userRepo.On("SetRefreshToken", mock.Anything, userID, "new-refresh").Return(nil)

	res, err := uc.RefreshSession(context.Background(), "presented-token")
	assert.NoError(t, err)
	assert.Equal(t, "new-refresh", res.RefreshToken)
	userRepo.AssertExpectations(t)
}

func TestUserUsecase_ChangePasswordInvalidOld(t *testing.T) {
	userRepo, _, _, _, uc := newUserUsecase()

	userID := bson.NewObjectID()
	hash, err := utils.HashPassword("actual-password")
	assert.NoError(t, err)
	userRepo.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID, Password: hash}, nil)

	err = uc.ChangePassword(context.Background(), userID, dto.ReqChangePassword{
		OldPassword: "guessed-password",
		NewPassword: "new-password",
	})
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, model.AsApiError(err).StatusCode)
}

func TestUserUsecase_LogoutClearsRefreshToken(t *testing.T) {
	userRepo, _, _, _, uc := newUserUsecase()

	userID := bson.NewObjectID()
	userRepo.On("SetRefreshToken", mock.Anything, userID, "").Return(nil)

	assert.NoError(t, uc.Logout(context.Background(), userID))
	userRepo.AssertExpectations(t)
}
