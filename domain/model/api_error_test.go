package model_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"streamhub/domain/model"
)

func TestAsApiErrorPassesThrough(t *testing.T) {
	err := model.NewNotFoundError("Video with the given ID not found")
	apiErr := model.AsApiError(err)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Video with the given ID not found", apiErr.Message)
}

func TestAsApiErrorHidesUnknownErrors(t *testing.T) {
	apiErr := model.AsApiError(errors.New("connection reset by peer"))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.NotContains(t, apiErr.Message, "connection reset")
}

func TestNewApiResponseSuccessFlag(t *testing.T) {
	ok := model.NewApiResponse(http.StatusCreated, nil, "created")
	assert.True(t, ok.Success)

	failed := model.NewApiResponse(http.StatusForbidden, nil, "forbidden")
	assert.False(t, failed.Success)
}
