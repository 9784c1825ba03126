package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/dto"
	"streamhub/domain/model"
)

// Mock implementations shared across the usecase tests.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (model.User, error) {
	args := m.Called(ctx, username, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateAccount(ctx context.Context, id bson.ObjectID, fullname, email string) (model.User, error) {
	args := m.Called(ctx, id, fullname, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id bson.ObjectID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, id bson.ObjectID, url string) (model.User, error) {
	args := m.Called(ctx, id, url)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateCoverImage(ctx context.Context, id bson.ObjectID, url string) (model.User, error) {
	args := m.Called(ctx, id, url)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func (m *MockUserRepository) PushWatchHistory(ctx context.Context, id, videoID bson.ObjectID) error {
	args := m.Called(ctx, id, videoID)
	return args.Error(0)
}

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, video model.Video) (model.Video, error) {
	args := m.Called(ctx, video)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Video, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *MockVideoRepository) UpdateDetails(ctx context.Context, id bson.ObjectID, title, description, thumbnail string) (model.Video, error) {
	args := m.Called(ctx, id, title, description, thumbnail)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) SetPublishStatus(ctx context.Context, id bson.ObjectID, published bool) (model.Video, error) {
	args := m.Called(ctx, id, published)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Comment, error) {
	args := m.Called(ctx, id, content)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) ToggleVideoLike(ctx context.Context, userID, videoID bson.ObjectID) (bool, error) {
	args := m.Called(ctx, userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) ToggleCommentLike(ctx context.Context, userID, commentID bson.ObjectID) (bool, error) {
	args := m.Called(ctx, userID, commentID)
	return args.Bool(0), args.Error(1)
}

type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist model.Playlist) (model.Playlist, error) {
	args := m.Called(ctx, playlist)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Playlist, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) GetByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Playlist, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) GetByOwnerAndTitle(ctx context.Context, owner bson.ObjectID, title string) (model.Playlist, error) {
	args := m.Called(ctx, owner, title)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) UpdateDetails(ctx context.Context, id bson.ObjectID, title, description string) (model.Playlist, error) {
	args := m.Called(ctx, id, title, description)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) AddVideo(ctx context.Context, id, videoID bson.ObjectID) (model.Playlist, error) {
	args := m.Called(ctx, id, videoID)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) (model.Playlist, error) {
	args := m.Called(ctx, id, videoID)
	return args.Get(0).(model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub model.Subscription) (model.Subscription, error) {
	args := m.Called(ctx, sub)
	return args.Get(0).(model.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, subscriber, channel bson.ObjectID) error {
	args := m.Called(ctx, subscriber, channel)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Exists(ctx context.Context, subscriber, channel bson.ObjectID) (bool, error) {
	args := m.Called(ctx, subscriber, channel)
	return args.Bool(0), args.Error(1)
}

type MockDerivedView struct {
	mock.Mock
}

func (m *MockDerivedView) ChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (dto.ChannelProfile, error) {
	args := m.Called(ctx, username, viewer)
	return args.Get(0).(dto.ChannelProfile), args.Error(1)
}

func (m *MockDerivedView) ChannelStats(ctx context.Context, owner bson.ObjectID) (dto.ChannelStats, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(dto.ChannelStats), args.Error(1)
}

func (m *MockDerivedView) LikedVideos(ctx context.Context, user bson.ObjectID) ([]dto.LikedVideo, error) {
	args := m.Called(ctx, user)
	return args.Get(0).([]dto.LikedVideo), args.Error(1)
}

func (m *MockDerivedView) WatchHistory(ctx context.Context, user bson.ObjectID) (dto.WatchHistory, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(dto.WatchHistory), args.Error(1)
}

func (m *MockDerivedView) VideoComments(ctx context.Context, videoID bson.ObjectID) ([]dto.CommentView, error) {
	args := m.Called(ctx, videoID)
	return args.Get(0).([]dto.CommentView), args.Error(1)
}

func (m *MockDerivedView) PlaylistWithContents(ctx context.Context, id bson.ObjectID) (dto.PlaylistView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.PlaylistView), args.Error(1)
}

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(user model.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) GenerateRefreshToken(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) VerifyAccessToken(token string) (model.UserClaims, error) {
	args := m.Called(token)
	return args.Get(0).(model.UserClaims), args.Error(1)
}

func (m *MockTokenManager) VerifyRefreshToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

type MockMediaStorage struct {
	mock.Mock
}

func (m *MockMediaStorage) Upload(ctx context.Context, localPath string) (string, error) {
	args := m.Called(ctx, localPath)
	return args.String(0), args.Error(1)
}

type MockViewCache struct {
	mock.Mock
}

func (m *MockViewCache) GetChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (dto.ChannelProfile, bool) {
	args := m.Called(ctx, username, viewer)
	return args.Get(0).(dto.ChannelProfile), args.Bool(1)
}

func (m *MockViewCache) SetChannelProfile(ctx context.Context, username string, viewer bson.ObjectID, profile dto.ChannelProfile) {
	m.Called(ctx, username, viewer, profile)
}

func (m *MockViewCache) InvalidateChannelProfile(ctx context.Context, username string) {
	m.Called(ctx, username)
}

func (m *MockViewCache) GetChannelStats(ctx context.Context, owner bson.ObjectID) (dto.ChannelStats, bool) {
	args := m.Called(ctx, owner)
	return args.Get(0).(dto.ChannelStats), args.Bool(1)
}

func (m *MockViewCache) SetChannelStats(ctx context.Context, owner bson.ObjectID, stats dto.ChannelStats) {
	m.Called(ctx, owner, stats)
}

func (m *MockViewCache) InvalidateChannelStats(ctx context.Context, owner bson.ObjectID) {
	m.Called(ctx, owner)
}
