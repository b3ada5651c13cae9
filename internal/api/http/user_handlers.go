package http

import (
	"encoding/json"
	"net/http"

	"github.com/bamdoliro/marugo/internal/auth"
	"github.com/bamdoliro/marugo/internal/user"
)

// SignUpHandler: POST /users — public applicant registration.
func SignUpHandler(svc *user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req user.SignUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.PhoneNumber == "" || req.Name == "" || req.Password == "" {
			http.Error(w, "phone_number, name and password required", http.StatusBadRequest)
			return
		}
		if err := svc.SignUp(r.Context(), req); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}

// MeHandler: GET /users/me.
func MeHandler(svc *user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := auth.SubjectFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		resp, err := svc.Get(r.Context(), sub)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// DeleteMeHandler: DELETE /users/me — removes the account and, by
// cascade, any application it submitted.
func DeleteMeHandler(svc *user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := auth.SubjectFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if err := svc.Delete(r.Context(), sub); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
