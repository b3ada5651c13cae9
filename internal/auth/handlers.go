package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/bamdoliro/marugo/internal/user"
)

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginHandler: POST { "phone_number": "...", "password": "..." }.
func LoginHandler(a *AuthService, users *user.Service, tokens TokenStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PhoneNumber string `json:"phone_number"`
			Password    string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		u, err := users.Authenticate(r.Context(), req.PhoneNumber, req.Password)
		if err != nil {
			if errors.Is(err, user.ErrBadPassword) {
				http.Error(w, "wrong phone number or password", http.StatusUnauthorized)
				return
			}
			http.Error(w, "login failed", http.StatusInternalServerError)
			return
		}
		issueTokens(w, r, a, tokens, u.UUID, u.Name, u.Authority.Role())
	}
}

// RefreshHandler rotates the refresh token presented in the
// Refresh-Token header and returns a new pair.
func RefreshHandler(a *AuthService, tokens TokenStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Refresh-Token")
		if raw == "" {
			http.Error(w, "missing Refresh-Token header", http.StatusUnauthorized)
			return
		}
		claims, err := a.Parse(raw)
		if err != nil || claims.Kind != "refresh" {
			http.Error(w, "bad token", http.StatusUnauthorized)
			return
		}
		sub, err := uuid.Parse(claims.Subject)
		if err != nil {
			http.Error(w, "bad token", http.StatusUnauthorized)
			return
		}
		stored, err := tokens.Get(r.Context(), sub)
		if err != nil || stored != raw {
			http.Error(w, "refresh token revoked", http.StatusUnauthorized)
			return
		}
		issueTokens(w, r, a, tokens, sub, claims.Name, claims.Role)
	}
}

// LogoutHandler revokes the caller's refresh token.
func LogoutHandler(tokens TokenStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := SubjectFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if err := tokens.Delete(r.Context(), sub); err != nil {
			http.Error(w, "logout failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func issueTokens(w http.ResponseWriter, r *http.Request, a *AuthService, tokens TokenStore, sub uuid.UUID, name, role string) {
	access, err := a.IssueAccess(sub, name, role)
	if err != nil {
		http.Error(w, "issue token", http.StatusInternalServerError)
		return
	}
	refresh, err := a.IssueRefresh(sub, name, role)
	if err != nil {
		http.Error(w, "issue token", http.StatusInternalServerError)
		return
	}
	if err := tokens.Save(r.Context(), sub, refresh, a.RefreshTTL()); err != nil {
		http.Error(w, "issue token", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: access, RefreshToken: refresh})
}
