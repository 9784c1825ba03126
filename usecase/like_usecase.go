package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/dto"
	"streamhub/domain/repository"
)

type ILikeUsecase interface {
	// ToggleVideoLike reports whether the video ends up liked by the caller.
	ToggleVideoLike(ctx context.Context, caller, videoID bson.ObjectID) (bool, error)
	ToggleCommentLike(ctx context.Context, caller, commentID bson.ObjectID) (bool, error)
	GetLikedVideos(ctx context.Context, caller bson.ObjectID) ([]dto.LikedVideo, error)
}

type likeUsecase struct {
	likeRepo    repository.ILike
	videoRepo   repository.IVideo
	commentRepo repository.IComment
	viewRepo    repository.IDerivedView
}

func NewLikeUsecase(likeRepo repository.ILike, videoRepo repository.IVideo, commentRepo repository.IComment, viewRepo repository.IDerivedView) ILikeUsecase {
	return &likeUsecase{likeRepo: likeRepo, videoRepo: videoRepo, commentRepo: commentRepo, viewRepo: viewRepo}
}

func (u *likeUsecase) ToggleVideoLike(ctx context.Context, caller, videoID bson.ObjectID) (bool, error) {
	if _, err := u.videoRepo.GetByID(ctx, videoID); err != nil {
		return false, err
	}
	return u.likeRepo.ToggleVideoLike(ctx, caller, videoID)
}

func (u *likeUsecase) ToggleCommentLike(ctx context.Context, caller, commentID bson.ObjectID) (bool, error) {
	if _, err := u.commentRepo.GetByID(ctx, commentID); err != nil {
		return false, err
	}
	return u.likeRepo.ToggleCommentLike(ctx, caller, commentID)
}

func (u *likeUsecase) GetLikedVideos(ctx context.Context, caller bson.ObjectID) ([]dto.LikedVideo, error) {
	return u.viewRepo.LikedVideos(ctx, caller)
}
