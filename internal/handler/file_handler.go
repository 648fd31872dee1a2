package handler

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bensedjadrafik-ux/vitube-app/internal/filestore"
	"github.com/bensedjadrafik-ux/vitube-app/internal/model"
	"github.com/bensedjadrafik-ux/vitube-app/internal/pkg/response"
)

// UploadRecorder tracks stored assets so unattached ones can be
// cleaned up later.
type UploadRecorder interface {
	Create(ctx context.Context, upload *model.Upload) error
}

type FileHandler struct {
	store   filestore.Store
	uploads UploadRecorder
}

func NewFileHandler(store filestore.Store, uploads UploadRecorder) *FileHandler {
	return &FileHandler{store: store, uploads: uploads}
}

// Upload stores a video or thumbnail asset and returns the URL to put
// on a video record.
func (h *FileHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "file is required")
		return
	}
	opened, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to open file")
		return
	}
	reader, contentType, err := sniffContentType(opened)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to read file")
		return
	}
	defer reader.Close()

	key := buildFileKey(file.Filename)
	ctx := c.Request.Context()
	if err := h.store.Save(ctx, key, reader, file.Size); err != nil {
		handleError(c, err)
		return
	}
	if err := h.uploads.Create(ctx, &model.Upload{
		Key:    key,
		UserID: getUserID(c),
		Ctime:  time.Now().Unix(),
	}); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{
		"data": gin.H{
			"url":         h.buildFileURL(c, key),
			"name":        file.Filename,
			"contentType": contentType,
		},
	})
}

// Get serves locally stored assets. S3-backed deployments serve assets
// straight from the bucket URL instead.
func (h *FileHandler) Get(c *gin.Context) {
	if h.store.Type() != "local" {
		c.Status(http.StatusNotFound)
		return
	}
	key := c.Param("key")
	if key == "" || strings.Contains(key, "/") || strings.Contains(key, "\\") {
		c.Status(http.StatusBadRequest)
		return
	}
	file, err := h.store.Open(c.Request.Context(), key)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	defer file.Close()
	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	_, _ = file.Seek(0, io.SeekStart)
	_, _ = io.Copy(c.Writer, file)
}

func (h *FileHandler) buildFileURL(c *gin.Context, key string) string {
	base := strings.TrimSuffix(h.store.PublicURL(), "/")
	if base == "" {
		base = requestBaseURL(c) + "/api/files"
	}
	return base + "/" + strings.TrimPrefix(key, "/")
}

func requestBaseURL(c *gin.Context) string {
	proto := c.GetHeader("X-Forwarded-Proto")
	if proto == "" {
		if c.Request.TLS != nil {
			proto = "https"
		} else {
			proto = "http"
		}
	}
	host := c.GetHeader("X-Forwarded-Host")
	if host == "" {
		host = c.Request.Host
	}
	return proto + "://" + host
}

func sniffContentType(file filestore.ReadSeekCloser) (filestore.ReadSeekCloser, string, error) {
	buf := make([]byte, 512)
	read, err := file.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, "", err
	}
	contentType := http.DetectContentType(buf[:read])
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, "", err
	}
	return file, contentType, nil
}

func buildFileKey(filename string) string {
	buf := make([]byte, 12)
	_, _ = rand.Read(buf)
	key := hex.EncodeToString(buf)
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		key += ext
	}
	return key
}
