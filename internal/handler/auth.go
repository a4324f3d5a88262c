package handler

import (
	"net/http"
	"os"
	"strings"

	"github.com/chiekin/CW2-social-networking-website/internal/dto"
	"github.com/chiekin/CW2-social-networking-website/pkg/utils"
	"github.com/gin-gonic/gin"
)

func (h *Handler) register(c *gin.Context) {
	var input dto.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(errMissingFields.Error()))
		return
	}

	token, err := h.services.Auth.Register(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "User registered successfully.",
		Token:   token,
	})
}

func (h *Handler) login(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError(errAllFieldsRequired.Error()))
		return
	}

	user, token, err := h.services.Auth.Login(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message:   "Login successful.",
		Token:     token,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
}

// sessionCheck reports whether the caller holds a valid token; it answers
// 200 in every case.
func (h *Handler) sessionCheck(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusOK, dto.SessionResponse{IsLoggedIn: false})
		return
	}

	accessToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("SECRET_KEY")))
	if err != nil {
		c.JSON(http.StatusOK, dto.SessionResponse{IsLoggedIn: false})
		return
	}

	userID, _ := claims["userId"].(string)
	username, _ := claims["username"].(string)

	c.JSON(http.StatusOK, dto.SessionResponse{
		IsLoggedIn: true,
		UserID:     userID,
		Username:   username,
	})
}

// logout is stateless: the token stays valid until expiry, the client is
// only asked to discard it.
func (h *Handler) logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewMessage("Logged out successfully"))
}
