package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/devfolio/backend/internal/models"
)

type AdminHandler struct {
	adminKey  string
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAdminHandler(adminKey, jwtSecret string, tokenTTL time.Duration) *AdminHandler {
	return &AdminHandler{
		adminKey:  adminKey,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Unlock exchanges the shared admin key for a signed session token.
func (h *AdminHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	var req models.UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}
	if req.Key == "" {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Admin key is required"))
		return
	}

	if h.adminKey == "" || subtle.ConstantTimeCompare([]byte(req.Key), []byte(h.adminKey)) != 1 {
		writeJSON(w, http.StatusUnauthorized, models.NewErrorResponse("Invalid admin key"))
		return
	}

	token, err := h.generateToken()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to generate token"))
		return
	}

	writeJSON(w, http.StatusOK, models.NewMessageResponse("Dashboard unlocked", models.UnlockResponse{
		Token: token,
	}))
}

func (h *AdminHandler) generateToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(h.tokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
