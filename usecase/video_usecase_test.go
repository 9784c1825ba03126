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
	"streamhub/usecase"
)

func newVideoUsecase() (*MockVideoRepository, *MockUserRepository, *MockMediaStorage, *MockViewCache, usecase.IVideoUsecase) {
	videoRepo := new(MockVideoRepository)
	userRepo := new(MockUserRepository)
	media := new(MockMediaStorage)
	viewCache := new(MockViewCache)
	return videoRepo, userRepo, media, viewCache, usecase.NewVideoUsecase(videoRepo, userRepo, media, viewCache)
}

func TestVideoUsecase_GetRecordsViewAndHistory(t *testing.T) {
	videoRepo, userRepo, _, _, uc := newVideoUsecase()

	viewer := bson.NewObjectID()
	videoID := bson.NewObjectID()
	videoRepo.On("GetByID", mock.Anything, videoID).
		Return(model.Video{ID: videoID, Owner: bson.NewObjectID(), IsPublished: true, Views: 4}, nil)
	videoRepo.On("IncrementViews", mock.Anything, videoID).Return(nil)
	userRepo.On("PushWatchHistory", mock.Anything, viewer, videoID).Return(nil)

	video, err := uc.Get(context.Background(), viewer, videoID)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), video.Views)
	videoRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestVideoUsecase_GetUnpublishedHiddenFromOthers(t *testing.T) {
	videoRepo, _, _, _, uc := newVideoUsecase()

	videoID := bson.NewObjectID()
	videoRepo.On("GetByID", mock.Anything, videoID).
		Return(model.Video{ID: videoID, Owner: bson.NewObjectID(), IsPublished: false}, nil)

	_, err := uc.Get(context.Background(), bson.NewObjectID(), videoID)
	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, model.AsApiError(err).StatusCode)
}

func TestVideoUsecase_GetUnpublishedVisibleToOwner(t *testing.T) {
	videoRepo, userRepo, _, _, uc := newVideoUsecase()

	owner := bson.NewObjectID()
	videoID := bson.NewObjectID()
	videoRepo.On("GetByID", mock.Anything, videoID).
		Return(model.Video{ID: videoID, Owner: owner, IsPublished: false}, nil)
	videoRepo.On("IncrementViews", mock.Anything, videoID).Return(nil)
	userRepo.On("PushWatchHistory", mock.Anything, owner, videoID).Return(nil)

	_, err := uc.Get(context.Background(), owner, videoID)
	assert.NoError(t, err)
}

func TestVideoUsecase_UpdateForbiddenForNonOwner(t *testing.T) {
	videoRepo, _, _, _, uc := newVideoUsecase()

	videoID := bson.NewObjectID()
	videoRepo.On("GetByID", mock.Anything, videoID).
		Return(model.Video{ID: videoID, Owner: bson.NewObjectID()}, nil)

	_, err := uc.Update(context.Background(), bson.NewObjectID(), videoID, dto.ReqUpdateVideo{Title: "New title"})
	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, model.AsApiError(err).StatusCode)
}

func TestVideoUsecase_TogglePublishFlips(t *testing.T) {
	videoRepo, _, _, viewCache, uc := newVideoUsecase()

	owner := bson.NewObjectID()
	videoID := bson.NewObjectID()
	videoRepo.On("GetByID", mock.Anything, videoID).
		Return(model.Video{ID: videoID, Owner: owner, IsPublished: true}, nil)
	videoRepo.On("SetPublishStatus", mock.Anything, videoID, false).
		Return(model.Video{ID: videoID, Owner: owner, IsPublished: false}, nil)
	viewCache.On("InvalidateChannelStats", mock.Anything, owner).Return()

	video, err := uc.TogglePublish(context.Background(), owner, videoID)
	assert.NoError(t, err)
	assert.False(t, video.IsPublished)
	videoRepo.AssertExpectations(t)
	viewCache.AssertExpectations(t)
}

func TestVideoUsecase_UpdateInvalidatesStats(t *testing.T) {
	videoRepo, _, _, viewCache, uc := newVideoUsecase()

	owner := bson.NewObjectID()
	videoID := bson.NewObjectID()
	videoRepo.On("GetByID", mock.Anything, videoID).
		Return(model.Video{ID: videoID, Owner: owner}, nil)
	videoRepo.On("UpdateDetails", mock.Anything, videoID, "New title", "", "").
		Return(model.Video{ID: videoID, Owner: owner, Title: "New title"}, nil)
	viewCache.On("InvalidateChannelStats", mock.Anything, owner).Return()

	video, err := uc.Update(context.Background(), owner, videoID, dto.ReqUpdateVideo{Title: "New title"})
	assert.NoError(t, err)
	assert.Equal(t, "New title", video.Title)
	viewCache.AssertExpectations(t)
}

func TestVideoUsecase_DeleteInvalidatesStats(t *testing.T) {
	videoRepo, _, _, viewCache, uc := newVideoUsecase()

	owner := bson.NewObjectID()
	videoID := bson.NewObjectID()
	videoRepo.On("GetByID", mock.Anything, videoID).
		Return(model.Video{ID: videoID, Owner: owner}, nil)
	videoRepo.On("Delete", mock.Anything, videoID).Return(nil)
	viewCache.On("InvalidateChannelStats", mock.Anything, owner).Return()

	assert.NoError(t, uc.Delete(context.Background(), owner, videoID))
	viewCache.AssertExpectations(t)
}

// A failed thumbnail upload aborts publishing without creating the video; the
// already-hosted video file is orphaned and only logged.
func TestVideoUsecase_PublishThumbnailUploadFailure(t *testing.T) {
	videoRepo, _, media, _, uc := newVideoUsecase()

	media.On("Upload", mock.Anything, "/tmp/clip.mp4").Return("https://cdn.example.com/clip.mp4", nil)
	media.On("Upload", mock.Anything, "/tmp/thumb.png").
		Return("", model.NewInternalError("File could not be uploaded"))

	_, err := uc.Publish(context.Background(), bson.NewObjectID(), dto.ReqPublishVideo{
		Title:         "My video",
		Description:   "About things",
		VideoPath:     "/tmp/clip.mp4",
		ThumbnailPath: "/tmp/thumb.png",
	})
	assert.Error(t, err)
	videoRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVideoUsecase_PublishRequiresFiles(t *testing.T) {
	_, _, _, _, uc := newVideoUsecase()

	_, err := uc.Publish(context.Background(), bson.NewObjectID(), dto.ReqPublishVideo{
		Title:       "My video",
		Description: "About things",
	})
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, model.AsApiError(err).StatusCode)
}
