package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/model"
	"streamhub/infrastructure/configuration"
	"streamhub/infrastructure/utils"
	"streamhub/interfaces/middleware"
)

type stubUserRepository struct {
	user model.User
}

func (s *stubUserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	return user, nil
}

func (s *stubUserRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	if id != s.user.ID {
		return model.User{}, model.NewNotFoundError("User not found")
	}
	return s.user, nil
}

func (s *stubUserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return s.user, nil
}

func (s *stubUserRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (model.User, error) {
	return s.user, nil
}

func (s *stubUserRepository) UpdateAccount(ctx context.Context, id bson.ObjectID, fullname, email string) (model.User, error) {
	return s.user, nil
}

func (s *stubUserRepository) UpdatePassword(ctx context.Context, id bson.ObjectID, passwordHash string) error {
	return nil
}

func (s *stubUserRepository) UpdateAvatar(ctx context.Context, id bson.ObjectID, url string) (model.User, error) {
	return s.user, nil
}

func (s *stubUserRepository) UpdateCoverImage(ctx context.Context, id bson.ObjectID, url string) (model.User, error) {
	return s.user, nil
}

func (s *stubUserRepository) SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error {
	return nil
}

func (s *stubUserRepository) PushWatchHistory(ctx context.Context, id, videoID bson.ObjectID) error {
	return nil
}

func setupRouter(t *testing.T) (*gin.Engine, utils.ITokenManager, model.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	user := model.User{ID: bson.NewObjectID(), Username: "alice", Email: "alice@example.com"}
	tokens := utils.NewTokenManager(configuration.Token{
		AccessSecret:     "test-access-secret",
		RefreshSecret:    "test-refresh-secret",
		AccessTTLMinutes: 15,
		RefreshTTLDays:   10,
	})

	router := gin.New()
	router.GET("/protected", middleware.Auth(tokens, &stubUserRepository{user: user}), func(ctx *gin.Context) {
		id, _ := ctx.Get(middleware.ContextUserIDKey)
		ctx.JSON(http.StatusOK, gin.H{"id": id.(bson.ObjectID).Hex()})
	})
	return router, tokens, user
}

func TestAuthMissingToken(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthBearerHeader(t *testing.T) {
	router, tokens, user := setupRouter(t)

	accessToken, err := tokens.GenerateAccessToken(user)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.ID.Hex())
}

func TestAuthCookie(t *testing.T) {
	router, tokens, user := setupRouter(t)

	accessToken, err := tokens.GenerateAccessToken(user)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: accessToken})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthGarbageToken(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
