package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/terry1921/stickerstore/pkg/response"
	"github.com/terry1921/stickerstore/pkg/storage"
)

// maxUploadBytes caps product image uploads at 5 MB.
const maxUploadBytes = 5 << 20

var allowedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".svg":  true,
}

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// Image handles POST /dashboard/products/image: multipart upload of a
// product image onto the configured disk, returning its public URL.
func (c *UploadController) Image(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "image exceeds the 5 MB limit")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "missing image field")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExt[ext] {
		response.Error(w, http.StatusUnprocessableEntity, "unsupported image type")
		return
	}

	path := fmt.Sprintf("products/%d%s", time.Now().UnixNano(), ext)
	if err := storage.PutStream(path, file); err != nil {
		response.Error(w, http.StatusInternalServerError, "could not store image")
		return
	}

	response.Created(w, map[string]string{
		"path": path,
		"url":  storage.URL(path),
	})
}
