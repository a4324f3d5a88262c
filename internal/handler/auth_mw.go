package handler

import (
	"net/http"
	"os"
	"strings"

	"github.com/chiekin/CW2-social-networking-website/internal/dto"
	"github.com/chiekin/CW2-social-networking-website/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// authMiddleware decodes an optional bearer token. Requests without a token
// pass through unauthenticated; a token that is present but invalid is
// rejected. Routes that need an identity add requireAuth after this.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.Next()
		return
	}

	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusForbidden, dto.NewError(errInvalidToken.Error()))
		c.Abort()
		return
	}

	accessToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("SECRET_KEY")))
	if err != nil {
		c.JSON(http.StatusForbidden, dto.NewError(errInvalidToken.Error()))
		c.Abort()
		return
	}

	idString, _ := claims["userId"].(string)
	userID, err := uuid.Parse(idString)
	if err != nil {
		c.JSON(http.StatusForbidden, dto.NewError(errInvalidToken.Error()))
		c.Abort()
		return
	}

	username, _ := claims["username"].(string)

	c.Set("userId", userID)
	c.Set("username", username)

	c.Next()
}

func (h *Handler) requireAuth(c *gin.Context) {
	if _, exists := c.Get("userId"); !exists {
		c.JSON(http.StatusForbidden, dto.NewError(errInvalidToken.Error()))
		c.Abort()
		return
	}

	c.Next()
}

func (h *Handler) getUserID(c *gin.Context) uuid.UUID {
	userID, _ := c.MustGet("userId").(uuid.UUID)
	return userID
}
