package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

type ProfileHandler struct {
	profiles  services.ProfileService
	uploads   *services.UploadService
	maxSizeMB int64
}

func NewProfileHandler(profiles services.ProfileService, uploads *services.UploadService, maxSizeMB int64) *ProfileHandler {
	return &ProfileHandler{
		profiles:  profiles,
		uploads:   uploads,
		maxSizeMB: maxSizeMB,
	}
}

// Get always returns one document, creating the default profile if needed.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	prof, err := h.profiles.Get(ctx)
	if err != nil {
		log.Printf("[GetProfile] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to load profile"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(prof))
}

// Update merges the supplied fields onto the profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	prof, err := h.profiles.Update(ctx, &req)
	if err != nil {
		log.Printf("[UpdateProfile] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to update profile"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewMessageResponse("Profile updated", prof))
}

// UploadImage stores a new profile image and points the profile at it.
// The previous file, if any, stays on disk.
func (h *ProfileHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	file, header, err := formFile(w, r, "image", h.maxSizeMB)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Image file is required"))
		return
	}
	defer file.Close()

	saved, err := h.uploads.SaveImage(header.Header.Get("Content-Type"), header.Filename, file)
	if err != nil {
		if err == services.ErrInvalidFileType {
			writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid image type. Allowed: PNG, JPG, JPEG, WebP"))
			return
		}
		log.Printf("[UploadProfileImage] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Upload failed"))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	prof, err := h.profiles.SetImage(ctx, saved.Path)
	if err != nil {
		log.Printf("[UploadProfileImage] save error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Upload failed"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewMessageResponse("Image uploaded", prof))
}

// UploadResume stores a new resume PDF and points the profile at it.
func (h *ProfileHandler) UploadResume(w http.ResponseWriter, r *http.Request) {
	file, header, err := formFile(w, r, "resume", h.maxSizeMB)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Resume PDF is required"))
		return
	}
	defer file.Close()

	saved, err := h.uploads.SavePDF(header.Header.Get("Content-Type"), header.Filename, file)
	if err != nil {
		if err == services.ErrInvalidFileType {
			writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Resume must be a PDF"))
			return
		}
		log.Printf("[UploadResume] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Upload failed"))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	prof, err := h.profiles.SetResume(ctx, saved.Path)
	if err != nil {
		log.Printf("[UploadResume] save error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Upload failed"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewMessageResponse("Resume uploaded", prof))
}
