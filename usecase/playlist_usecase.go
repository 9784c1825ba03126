package usecase

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/dto"
	"streamhub/domain/model"
	"streamhub/domain/repository"
)

type IPlaylistUsecase interface {
	// Create enforces title uniqueness per owner; two owners may reuse a
	// title.
	Create(ctx context.Context, owner bson.ObjectID, req dto.ReqPlaylist) (model.Playlist, error)
	Get(ctx context.Context, id bson.ObjectID) (dto.PlaylistView, error)
	ListOwn(ctx context.Context, owner bson.ObjectID) ([]model.Playlist, error)
	Update(ctx context.Context, caller, id bson.ObjectID, req dto.ReqPlaylist) (model.Playlist, error)
	Delete(ctx context.Context, caller, id bson.ObjectID) error
	AddVideo(ctx context.Context, caller, id, videoID bson.ObjectID) (model.Playlist, error)
	RemoveVideo(ctx context.Context, caller, id, videoID bson.ObjectID) (model.Playlist, error)
}

type playlistUsecase struct {
	playlistRepo repository.IPlaylist
	videoRepo    repository.IVideo
	viewRepo     repository.IDerivedView
}

func NewPlaylistUsecase(playlistRepo repository.IPlaylist, videoRepo repository.IVideo, viewRepo repository.IDerivedView) IPlaylistUsecase {
	return &playlistUsecase{playlistRepo: playlistRepo, videoRepo: videoRepo, viewRepo: viewRepo}
}

func (u *playlistUsecase) Create(ctx context.Context, owner bson.ObjectID, req dto.ReqPlaylist) (model.Playlist, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return model.Playlist{}, model.NewValidationError("Playlist title is required")
	}
	if _, err := u.playlistRepo.GetByOwnerAndTitle(ctx, owner, title); err == nil {
		return model.Playlist{}, model.NewConflictError("Playlist with this title already exists")
	} else if model.AsApiError(err).StatusCode != http.StatusNotFound {
		return model.Playlist{}, err
	}
	return u.playlistRepo.Create(ctx, model.Playlist{
		Owner:       owner,
		Title:       title,
		Description: req.Description,
	})
}

func (u *playlistUsecase) Get(ctx context.Context, id bson.ObjectID) (dto.PlaylistView, error) {
	return u.viewRepo.PlaylistWithContents(ctx, id)
}

func (u *playlistUsecase) ListOwn(ctx context.Context, owner bson.ObjectID) ([]model.Playlist, error) {
	return u.playlistRepo.GetByOwner(ctx, owner)
}

func (u *playlistUsecase) Update(ctx context.Context, caller, id bson.ObjectID, req dto.ReqPlaylist) (model.Playlist, error) {
	playlist, err := u.requireOwner(ctx, caller, id)
	if err != nil {
		return model.Playlist{}, err
	}
	title := strings.TrimSpace(req.Title)
	if title == "" && strings.TrimSpace(req.Description) == "" {
		return model.Playlist{}, model.NewValidationError("Nothing to update")
	}
	if title != "" && title != playlist.Title {
		if _, err := u.playlistRepo.GetByOwnerAndTitle(ctx, caller, title); err == nil {
			return model.Playlist{}, model.NewConflictError("Playlist with this title already exists")
		} else if model.AsApiError(err).StatusCode != http.StatusNotFound {
			return model.Playlist{}, err
		}
	}
	return u.playlistRepo.UpdateDetails(ctx, id, title, strings.TrimSpace(req.Description))
}

func (u *playlistUsecase) Delete(ctx context.Context, caller, id bson.ObjectID) error {
	if _, err := u.requireOwner(ctx, caller, id); err != nil {
		return err
	}
	return u.playlistRepo.Delete(ctx, id)
}

func (u *playlistUsecase) AddVideo(ctx context.Context, caller, id, videoID bson.ObjectID) (model.Playlist, error) {
	if _, err := u.requireOwner(ctx, caller, id); err != nil {
		return model.Playlist{}, err
	}
	if _, err := u.videoRepo.GetByID(ctx, videoID); err != nil {
		return model.Playlist{}, err
	}
	return u.playlistRepo.AddVideo(ctx, id, videoID)
}

func (u *playlistUsecase) RemoveVideo(ctx context.Context, caller, id, videoID bson.ObjectID) (model.Playlist, error) {
	if _, err := u.requireOwner(ctx, caller, id); err != nil {
		return model.Playlist{}, err
	}
	return u.playlistRepo.RemoveVideo(ctx, id, videoID)
}

func (u *playlistUsecase) requireOwner(ctx context.Context, caller, id bson.ObjectID) (model.Playlist, error) {
	playlist, err := u.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return model.Playlist{}, err
	}
	if playlist.Owner != caller {
		return model.Playlist{}, model.NewForbiddenError("Only the owner may modify this playlist")
	}
	return playlist, nil
}
