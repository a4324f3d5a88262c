package handler

import (
	"net/http"
	"strings"

	"github.com/chiekin/CW2-social-networking-website/internal/dto"
	"github.com/chiekin/CW2-social-networking-website/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) createPost(c *gin.Context) {
	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(errInvalidInput.Error()))
		return
	}

	post, err := h.services.Post.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreatePostResponse{
		Success: true,
		Post:    post,
	})
}

func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.services.Post.FindAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) searchPosts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, dto.NewError(errQueryRequired.Error()))
		return
	}

	posts, err := h.services.Post.Search(c.Request.Context(), query, defaultSearchLimit, defaultSearchOffset)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) createComment(c *gin.Context) {
	postID, err := uuid.Parse(strings.TrimSpace(c.Param("postId")))
	if err != nil {
		h.respondError(c, service.ErrPostNotFound)
		return
	}

	var input dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(errCommentFields.Error()))
		return
	}

	comment, err := h.services.Post.CreateComment(c.Request.Context(), postID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateCommentResponse{
		Message: "Comment created successfully",
		Comment: comment,
	})
}
