package handler

import (
	"net/http"
	"strings"

	"github.com/chiekin/CW2-social-networking-website/internal/dto"
	"github.com/gin-gonic/gin"
)

const (
	defaultSearchLimit  = 50
	defaultSearchOffset = 0
)

// userByUsername also dispatches /users/search, which cannot be registered
// next to the :username parameter in the same method tree.
func (h *Handler) userByUsername(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	if username == "search" {
		h.searchUsers(c)
		return
	}

	profile, err := h.services.User.FindProfile(c.Request.Context(), username)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *Handler) searchUsers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, dto.NewError(errQueryRequired.Error()))
		return
	}

	users, err := h.services.User.Search(c.Request.Context(), query, defaultSearchLimit, defaultSearchOffset)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if len(users) == 0 {
		c.JSON(http.StatusNotFound, dto.NewMessage("No users found."))
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) editProfile(c *gin.Context) {
	var input dto.EditProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(errInvalidInput.Error()))
		return
	}

	if err := h.services.User.Update(c.Request.Context(), h.getUserID(c), input); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessage("Profile updated successfully"))
}
