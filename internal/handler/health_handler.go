package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bensedjadrafik-ux/vitube-app/internal/pkg/response"
)

func Health(c *gin.Context) {
	response.Success(c, gin.H{
		"message":   "ViTube server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
