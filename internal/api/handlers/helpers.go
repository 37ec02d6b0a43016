package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"waste-route-service/internal/domain"

	"github.com/go-playground/validator/v10"
)

const maxJSONBody = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps domain errors to HTTP statuses; anything else is a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrHouseholdNotFound), errors.Is(err, domain.ErrPickupNotFound),
		errors.Is(err, domain.ErrOverflowNotFound):
		writeError(w, r, http.StatusNotFound, rootMessage(err))
	case errors.Is(err, domain.ErrInvalidWasteType), errors.Is(err, domain.ErrLocationRequired):
		writeError(w, r, http.StatusBadRequest, rootMessage(err))
	case errors.Is(err, domain.ErrNoPendingPickups), errors.Is(err, domain.ErrNoActiveRoute):
		writeError(w, r, http.StatusConflict, rootMessage(err))
	default:
		log.Printf("%s failed: %v", op, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func rootMessage(err error) string {
	for _, sentinel := range []error{
		domain.ErrHouseholdNotFound,
		domain.ErrPickupNotFound,
		domain.ErrOverflowNotFound,
		domain.ErrInvalidWasteType,
		domain.ErrLocationRequired,
		domain.ErrNoPendingPickups,
		domain.ErrNoActiveRoute,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

// decodeJSON reads exactly one JSON object from the body into v and validates it.
// When allowEmpty is set an empty body leaves v untouched.
// It writes the error response itself and reports whether the caller may continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return true
		}
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}

	if err := validate.Struct(v); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err))
		return false
	}

	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return "invalid field " + fe.Namespace() + ": failed " + fe.Tag()
	}
	return "invalid request"
}
