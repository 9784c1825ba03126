package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/dto"
	"streamhub/domain/model"
	"streamhub/domain/repository"
)

type ICommentUsecase interface {
	ListForVideo(ctx context.Context, videoID bson.ObjectID) ([]dto.CommentView, error)
	Add(ctx context.Context, caller, videoID bson.ObjectID, content string) (model.Comment, error)
	Update(ctx context.Context, caller, commentID bson.ObjectID, content string) (model.Comment, error)
	Delete(ctx context.Context, caller, commentID bson.ObjectID) error
}

type commentUsecase struct {
	commentRepo repository.IComment
	videoRepo   repository.IVideo
	viewRepo    repository.IDerivedView
}

func NewCommentUsecase(commentRepo repository.IComment, videoRepo repository.IVideo, viewRepo repository.IDerivedView) ICommentUsecase {
	return &commentUsecase{commentRepo: commentRepo, videoRepo: videoRepo, viewRepo: viewRepo}
}

func (u *commentUsecase) ListForVideo(ctx context.Context, videoID bson.ObjectID) ([]dto.CommentView, error) {
	if _, err := u.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	return u.viewRepo.VideoComments(ctx, videoID)
}

func (u *commentUsecase) Add(ctx context.Context, caller, videoID bson.ObjectID, content string) (model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return model.Comment{}, model.NewValidationError("Comment content is required")
	}
	if _, err := u.videoRepo.GetByID(ctx, videoID); err != nil {
		return model.Comment{}, err
	}
	return u.commentRepo.Create(ctx, model.Comment{
		Owner:   caller,
		Video:   videoID,
		Content: content,
	})
}

func (u *commentUsecase) Update(ctx context.Context, caller, commentID bson.ObjectID, content string) (model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return model.Comment{}, model.NewValidationError("Comment content is required")
	}
	comment, err := u.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return model.Comment{}, err
	}
	if comment.Owner != caller {
		return model.Comment{}, model.NewForbiddenError("Only the owner may modify this comment")
	}
	return u.commentRepo.UpdateContent(ctx, commentID, content)
}

func (u *commentUsecase) Delete(ctx context.Context, caller, commentID bson.ObjectID) error {
	comment, err := u.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.Owner != caller {
		return model.NewForbiddenError("Only the owner may modify this comment")
	}
	return u.commentRepo.Delete(ctx, commentID)
}
