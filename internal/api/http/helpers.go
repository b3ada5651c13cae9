package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bamdoliro/marugo/internal/form"
	"github.com/bamdoliro/marugo/internal/notice"
	"github.com/bamdoliro/marugo/internal/question"
	"github.com/bamdoliro/marugo/internal/user"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps domain errors onto HTTP statuses. Band exhaustion is an
// operational failure, not a client mistake, so it surfaces as a 500.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, form.ErrDuplicateSubmission):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, form.ErrInvalidTrack),
		errors.Is(err, question.ErrInvalidCategory),
		errors.Is(err, user.ErrPhoneTaken):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, form.ErrNotFound),
		errors.Is(err, notice.ErrNotFound),
		errors.Is(err, question.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, form.ErrBandExhausted):
		http.Error(w, "examination number allocation failed", http.StatusInternalServerError)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
