package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bensedjadrafik-ux/vitube-app/internal/middleware"
)

type RouterDeps struct {
	Auth      *AuthHandler
	Videos    *VideoHandler
	Files     *FileHandler
	JWTSecret []byte
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.POST("/register", deps.Auth.Register)
	api.POST("/login", deps.Auth.Login)

	api.GET("/videos", deps.Videos.List)
	api.PUT("/videos/:id/views", deps.Videos.IncrementViews)
	api.GET("/health", Health)
	api.GET("/files/:key", deps.Files.Get)

	authGroup := api.Group("")
	authGroup.Use(middleware.JWTAuth(deps.JWTSecret))
	authGroup.POST("/videos", deps.Videos.Create)
	authGroup.POST("/videos/:id/comments", deps.Videos.AddComment)
	authGroup.POST("/uploads", deps.Files.Upload)
}
