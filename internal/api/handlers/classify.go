package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/services"
)

const maxImageBytes = 10 << 20

type ClassifyHandler struct {
	Svc *services.ClassifyService
	// Fallback position when the form carries no usable lat/lng.
	Default domain.Point
}

// Classify accepts a multipart form with an "image" file and optional "lat"/"lng".
func (h *ClassifyHandler) Classify(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes+(1<<20))
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			writeError(w, r, http.StatusBadRequest, "No image provided")
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid image upload")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid image upload")
		return
	}
	if len(image) == 0 {
		writeError(w, r, http.StatusBadRequest, "No image provided")
		return
	}

	from := domain.Point{
		Lat: formFloat(r, "lat", h.Default.Lat),
		Lng: formFloat(r, "lng", h.Default.Lng),
	}

	res, err := h.Svc.Classify(r.Context(), image, from)
	if err != nil {
		writeServiceError(w, r, "classify", err)
		return
	}

	writeJSON(w, r, http.StatusOK, res)
}

// formFloat parses a form value, falling back on missing, malformed or zero input.
func formFloat(r *http.Request, key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue(key)), 64)
	if err != nil || v == 0 {
		return fallback
	}
	return v
}
