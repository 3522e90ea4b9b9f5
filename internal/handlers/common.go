package handlers

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"time"
)

const dbTimeout = 10 * time.Second

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), dbTimeout)
}

// formFile pulls the single uploaded file out of a multipart request,
// capping the body at maxSizeMB.
func formFile(w http.ResponseWriter, r *http.Request, field string, maxSizeMB int64) (multipart.File, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSizeMB*1024*1024)
	if err := r.ParseMultipartForm(maxSizeMB * 1024 * 1024); err != nil {
		return nil, nil, err
	}
	return r.FormFile(field)
}
