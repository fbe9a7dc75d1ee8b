package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Akhand0ps/SIH-tests/internal/anonid"
	"github.com/Akhand0ps/SIH-tests/internal/config"
)

// AdminLoginHandler checks credentials against the configured bcrypt hash
// and issues a short-lived admin token.
// POST /api/v1/auth/login  { "username": "...", "password": "..." }
func AdminLoginHandler(a *AuthService, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// No hash configured means no admin account exists.
		if cfg.AdminPassHash == "" {
			http.Error(w, "admin login disabled", http.StatusForbidden)
			return
		}
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Username != cfg.AdminUser ||
			bcrypt.CompareHashAndPassword([]byte(cfg.AdminPassHash), []byte(req.Password)) != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		tok, err := a.IssueJWT(req.Username, RoleAdmin, 8*time.Hour)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": tok})
	}
}

// SessionHandler starts (or resumes) an anonymous session. The anonymous id
// is persisted in a cookie so a returning browser keeps its pseudonymous
// history; the token itself only proves the id was minted here.
// POST /api/v1/session
func SessionHandler(a *AuthService) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		AnonymousID string `json:"anonymousId"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		// Reuse an existing anonymous id from the cookie when it still
		// validates.
		id := ""
		if c, err := r.Cookie("sih_anon_id"); err == nil && anonid.Valid(c.Value) {
			id = c.Value
		}
		if id == "" {
			id = anonid.New()
		}

		tok, err := a.IssueJWT(id, RoleAnonymous, 30*24*time.Hour)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     "sih_anon_id",
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
			Expires:  time.Now().Add(30 * 24 * time.Hour),
		})
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, AnonymousID: id})
	}
}
