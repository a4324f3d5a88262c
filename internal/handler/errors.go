package handler

import (
	"errors"
	"net/http"

	"github.com/chiekin/CW2-social-networking-website/internal/dto"
	"github.com/chiekin/CW2-social-networking-website/internal/service"
	"github.com/gin-gonic/gin"
)

var (
	errMissingFields      = errors.New("Please fill in all required fields.")
	errAllFieldsRequired  = errors.New("All fields are required.")
	errQueryRequired      = errors.New("Query parameter 'q' is required.")
	errFollowedIDRequired = errors.New("followedId is required.")
	errInvalidID          = errors.New("Provided an invalid ID.")
	errInvalidToken       = errors.New("Invalid or expired token.")
	errInvalidInput       = errors.New("Invalid input data")
	errCommentFields      = errors.New("Username and comment text are required.")
)

func statusFromError(err error) int {
	switch err {
	case service.ErrUsernameTaken, service.ErrEmailTaken:
		return http.StatusConflict
	case service.ErrInvalidCredentials:
		return http.StatusUnauthorized
	case service.ErrUserNotFound, service.ErrPostNotFound:
		return http.StatusNotFound
	case service.ErrEmptyPost,
		service.ErrInvalidUsernameFormat,
		service.ErrInvalidEmailFormat,
		service.ErrAlreadyFollowing,
		service.ErrNotFollowing,
		service.ErrSelfFollow:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError && err != service.ErrInvalidImage {
		message = service.ErrInternal.Error()
	}

	c.JSON(status, dto.NewError(message))
}
