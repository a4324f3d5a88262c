package handler

import (
	"net/http"

	"github.com/chiekin/CW2-social-networking-website/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) follow(c *gin.Context) {
	var input dto.FollowRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(errFollowedIDRequired.Error()))
		return
	}

	followedID, err := uuid.Parse(input.FollowedID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(errInvalidID.Error()))
		return
	}

	if err := h.services.Follow.Follow(c.Request.Context(), h.getUserID(c), followedID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewMessage("Successfully followed the user."))
}

func (h *Handler) unfollow(c *gin.Context) {
	var input dto.FollowRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(errFollowedIDRequired.Error()))
		return
	}

	followedID, err := uuid.Parse(input.FollowedID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(errInvalidID.Error()))
		return
	}

	if err := h.services.Follow.Unfollow(c.Request.Context(), h.getUserID(c), followedID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessage("Successfully unfollowed the user."))
}
