package handlers

import (
	"net/http"

	"github.com/stayvista/stayvista-api/internal/http/response"
	"github.com/stayvista/stayvista-api/internal/platform/storage"
	"github.com/stayvista/stayvista-api/pkg/logger"
)

// maxUploadBytes bounds a single multipart upload.
const maxUploadBytes = 32 << 20

type UploadsHandler struct {
	Files storage.Store
}

func NewUploadsHandler(files storage.Store) *UploadsHandler {
	return &UploadsHandler{Files: files}
}

// Upload stores the avatar form file and returns its serving path.
func (h *UploadsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.BadRequest(w, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		response.BadRequest(w, "missing avatar file")
		return
	}
	defer file.Close()

	path, err := h.Files.Save(file, header.Filename)
	if err != nil {
		logger.ErrorContext(r.Context(), "file save failed", "error", err, "filename", header.Filename)
		response.InternalError(w, "error saving file")
		return
	}
	response.JSON(w, http.StatusOK, path)
}
