package handler

import (
	"github.com/chiekin/CW2-social-networking-website/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.StaticFile("/", "./public/index.html")
	r.Static("/public", "./public")

	r.POST("/users", h.register)
	// gin keeps one routing tree per method, and /users/search cannot
	// coexist with /users/:username in it; the param handler dispatches.
	r.GET("/users/:username", h.userByUsername)
	r.POST("/users/editProfile", h.authMiddleware, h.requireAuth, h.editProfile)

	r.POST("/login", h.login)
	r.GET("/login", h.sessionCheck)
	r.DELETE("/login", h.logout)

	r.POST("/contents", h.createPost)
	r.GET("/contents", h.listPosts)
	r.GET("/contents/search", h.searchPosts)
	r.POST("/contents/:postId/comments", h.createComment)

	r.POST("/follow", h.authMiddleware, h.requireAuth, h.follow)
	r.DELETE("/follow", h.authMiddleware, h.requireAuth, h.unfollow)

	return r
}
