package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/dto"
	"streamhub/domain/model"
	"streamhub/domain/repository"
	"streamhub/infrastructure/cache"
	"streamhub/infrastructure/logger"
	"streamhub/infrastructure/storage"
)

type IVideoUsecase interface {
	Publish(ctx context.Context, owner bson.ObjectID, req dto.ReqPublishVideo) (model.Video, error)
	// Get records a view and pushes the video to the front of the viewer's
	// watch history. Unpublished videos are visible only to their owner.
	Get(ctx context.Context, viewer, videoID bson.ObjectID) (model.Video, error)
	ListOwn(ctx context.Context, owner bson.ObjectID) ([]model.Video, error)
	Update(ctx context.Context, caller, videoID bson.ObjectID, req dto.ReqUpdateVideo) (model.Video, error)
	Delete(ctx context.Context, caller, videoID bson.ObjectID) error
	TogglePublish(ctx context.Context, caller, videoID bson.ObjectID) (model.Video, error)
}

type videoUsecase struct {
	videoRepo repository.IVideo
	userRepo  repository.IUser
	media     storage.IMediaStorage
	viewCache cache.IViewCache
}

func NewVideoUsecase(videoRepo repository.IVideo, userRepo repository.IUser, media storage.IMediaStorage, viewCache cache.IViewCache) IVideoUsecase {
	return &videoUsecase{videoRepo: videoRepo, userRepo: userRepo, media: media, viewCache: viewCache}
}

func (u *videoUsecase) Publish(ctx context.Context, owner bson.ObjectID, req dto.ReqPublishVideo) (model.Video, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || strings.TrimSpace(req.Description) == "" {
		return model.Video{}, model.NewValidationError("Title and description are required")
	}
	if req.VideoPath == "" {
		return model.Video{}, model.NewValidationError("Video file is required")
	}
	if req.ThumbnailPath == "" {
		return model.Video{}, model.NewValidationError("Thumbnail file is required")
	}

	videoURL, err := u.media.Upload(ctx, req.VideoPath)
	if err != nil {
		return model.Video{}, err
	}
	thumbnailURL, err := u.media.Upload(ctx, req.ThumbnailPath)
	if err != nil {
		logger.GetLogger().WithField("videoFile", videoURL).
			Warn("thumbnail upload failed after video upload; hosted file orphaned")
		return model.Video{}, err
	}

	video := model.Video{
		Owner:       owner,
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Title:       title,
		Description: req.Description,
		IsPublished: true,
	}
	created, err := u.videoRepo.Create(ctx, video)
	if err != nil {
		logger.GetLogger().WithField("videoFile", videoURL).WithField("thumbnail", thumbnailURL).
			Warn("video create failed after media upload; hosted files orphaned")
		return model.Video{}, err
	}
	u.viewCache.InvalidateChannelStats(ctx, owner)
	return created, nil
}

func (u *videoUsecase) Get(ctx context.Context, viewer, videoID bson.ObjectID) (model.Video, error) {
	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return model.Video{}, err
	}
	if !video.IsPublished && video.Owner != viewer {
		return model.Video{}, model.NewNotFoundError("Video with the given ID not found")
	}

	if err := u.videoRepo.IncrementViews(ctx, videoID); err != nil {
		return model.Video{}, err
	}
	video.Views++
	if err := u.userRepo.PushWatchHistory(ctx, viewer, videoID); err != nil {
		// The video itself was served; losing the history entry is not worth
		// failing the request.
		logger.GetLogger().WithField("error", err).Error("push watch history failed")
	}
	return video, nil
}

func (u *videoUsecase) ListOwn(ctx context.Context, owner bson.ObjectID) ([]model.Video, error) {
	return u.videoRepo.GetByOwner(ctx, owner)
}

func (u *videoUsecase) Update(ctx context.Context, caller, videoID bson.ObjectID, req dto.ReqUpdateVideo) (model.Video, error) {
	if err := u.requireOwner(ctx, caller, videoID); err != nil {
		return model.Video{}, err
	}
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Description) == "" && req.ThumbnailPath == "" {
		return model.Video{}, model.NewValidationError("Nothing to update")
	}
	thumbnailURL := ""
	if req.ThumbnailPath != "" {
		var err error
		thumbnailURL, err = u.media.Upload(ctx, req.ThumbnailPath)
		if err != nil {
			return model.Video{}, err
		}
	}
	updated, err := u.videoRepo.UpdateDetails(ctx, videoID, strings.TrimSpace(req.Title), strings.TrimSpace(req.Description), thumbnailURL)
	if err != nil {
		return model.Video{}, err
	}
	u.viewCache.InvalidateChannelStats(ctx, caller)
	return updated, nil
}

// Delete removes only the video document. Comments, likes and playlist
// references keep pointing at the gone id; the views tolerate that and
// surface the missing video as null.
func (u *videoUsecase) Delete(ctx context.Context, caller, videoID bson.ObjectID) error {
	if err := u.requireOwner(ctx, caller, videoID); err != nil {
		return err
	}
	if err := u.videoRepo.Delete(ctx, videoID); err != nil {
		return err
	}
	u.viewCache.InvalidateChannelStats(ctx, caller)
	return nil
}

func (u *videoUsecase) TogglePublish(ctx context.Context, caller, videoID bson.ObjectID) (model.Video, error) {
	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return model.Video{}, err
	}
	if video.Owner != caller {
		return model.Video{}, model.NewForbiddenError("Only the owner may modify this video")
	}
	toggled, err := u.videoRepo.SetPublishStatus(ctx, videoID, !video.IsPublished)
	if err != nil {
		return model.Video{}, err
	}
	u.viewCache.InvalidateChannelStats(ctx, caller)
	return toggled, nil
}

func (u *videoUsecase) requireOwner(ctx context.Context, caller, videoID bson.ObjectID) error {
	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if video.Owner != caller {
		return model.NewForbiddenError("Only the owner may modify this video")
	}
	return nil
}
