package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/model"
	"streamhub/infrastructure/configuration"
	"streamhub/infrastructure/storage"
	"streamhub/interfaces/middleware"
)

func respond(ctx *gin.Context, statusCode int, data interface{}, message string) {
	ctx.JSON(statusCode, model.NewApiResponse(statusCode, data, message))
}

func respondError(ctx *gin.Context, err error) {
	apiErr := model.AsApiError(err)
	ctx.JSON(apiErr.StatusCode, model.NewApiResponse(apiErr.StatusCode, nil, apiErr.Message))
}

// currentUserID reads the id the auth middleware stored on the context.
func currentUserID(ctx *gin.Context) (bson.ObjectID, bool) {
	raw, ok := ctx.Get(middleware.ContextUserIDKey)
	if !ok {
		respond(ctx, http.StatusUnauthorized, nil, "Unauthorized request")
		return bson.ObjectID{}, false
	}
	id, ok := raw.(bson.ObjectID)
	if !ok {
		respond(ctx, http.StatusUnauthorized, nil, "Unauthorized request")
		return bson.ObjectID{}, false
	}
	return id, true
}

// parseObjectID validates a path parameter; malformed ids are a validation
// failure, not a not-found.
func parseObjectID(ctx *gin.Context, param string) (bson.ObjectID, bool) {
	id, err := bson.ObjectIDFromHex(ctx.Param(param))
	if err != nil {
		respond(ctx, http.StatusUnprocessableEntity, nil, "Invalid "+param)
		return bson.ObjectID{}, false
	}
	return id, true
}

// saveUploadedFile persists a multipart form file to the temp dir and returns
// its path. A missing file returns ok with an empty path so callers decide
// whether the field is required.
func saveUploadedFile(ctx *gin.Context, field string) (string, bool) {
	file, err := ctx.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", true
		}
		respond(ctx, http.StatusBadRequest, nil, "Invalid multipart form")
		return "", false
	}
	path := storage.TempFilePath(configuration.C.Media.TempDir, file.Filename)
	if err := ctx.SaveUploadedFile(file, path); err != nil {
		respond(ctx, http.StatusInternalServerError, nil, "Uploaded file could not be stored")
		return "", false
	}
	return path, true
}
