package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

type SettingsHandler struct {
	settings  services.SettingsService
	uploads   *services.UploadService
	maxSizeMB int64
}

func NewSettingsHandler(settings services.SettingsService, uploads *services.UploadService, maxSizeMB int64) *SettingsHandler {
	return &SettingsHandler{
		settings:  settings,
		uploads:   uploads,
		maxSizeMB: maxSizeMB,
	}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	settings, err := h.settings.Get(ctx)
	if err != nil {
		log.Printf("[GetSettings] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to load settings"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(settings))
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	settings, err := h.settings.Update(ctx, &req)
	if err != nil {
		log.Printf("[UpdateSettings] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to update settings"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewMessageResponse("Settings updated", settings))
}

func (h *SettingsHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	file, header, err := formFile(w, r, "logo", h.maxSizeMB)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Logo file is required"))
		return
	}
	defer file.Close()

	saved, err := h.uploads.SaveImage(header.Header.Get("Content-Type"), header.Filename, file)
	if err != nil {
		if err == services.ErrInvalidFileType {
			writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid image type. Allowed: PNG, JPG, JPEG, WebP"))
			return
		}
		log.Printf("[UploadLogo] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Upload failed"))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	settings, err := h.settings.SetLogo(ctx, saved.Path)
	if err != nil {
		log.Printf("[UploadLogo] save error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Upload failed"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewMessageResponse("Logo uploaded", settings))
}
