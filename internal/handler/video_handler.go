package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bensedjadrafik-ux/vitube-app/internal/pkg/response"
	"github.com/bensedjadrafik-ux/vitube-app/internal/service"
)

type VideoHandler struct {
	videos *service.VideoService
}

func NewVideoHandler(videos *service.VideoService) *VideoHandler {
	return &VideoHandler{videos: videos}
}

type createVideoRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Channel      string `json:"channel"`
}

type addCommentRequest struct {
	Text string `json:"text"`
}

func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.videos.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"data": videos})
}

func (h *VideoHandler) Create(c *gin.Context) {
	var req createVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "missing or invalid fields")
		return
	}
	video, err := h.videos.Create(c.Request.Context(), service.CreateVideoInput{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Channel:      req.Channel,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{
		"message": "video uploaded",
		"data":    video,
	})
}

func (h *VideoHandler) AddComment(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "missing or invalid fields")
		return
	}
	comments, err := h.videos.AddComment(c.Request.Context(), c.Param("id"), getUserID(c), req.Text)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{
		"message": "comment added",
		"data":    comments,
	})
}

func (h *VideoHandler) IncrementViews(c *gin.Context) {
	views, err := h.videos.IncrementViews(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"data": gin.H{"views": views}})
}
