package httpapi

import (
	"net/http"
	"time"

	"github.com/taskflowhq/taskflow/internal/domain"
	"github.com/taskflowhq/taskflow/internal/service"
)

const refreshCookieName = "refreshToken"

const refreshCookieMaxAge = 7 * 24 * 60 * 60 // 7 days, matching token lifetime at the provider

type loginRequest struct {
	Email        string  `json:"email"`
	DisplayName  string  `json:"displayName"`
	UID          string  `json:"uid"`
	PhotoURL     *string `json:"photoURL,omitempty"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
	AccessToken  string  `json:"accessToken,omitempty"`
	RefreshToken string  `json:"refreshToken,omitempty"`
}

type loginResponse struct {
	User        *domain.User `json:"user"`
	AccessToken string       `json:"accessToken,omitempty"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[loginRequest](s, w, r)
	if !ok {
		return
	}

	user, err := s.auth.Login(r.Context(), service.LoginInput{
		UID:         req.UID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if req.RefreshToken != "" {
		s.setRefreshCookie(w, req.RefreshToken)
	}

	s.writeJSON(w, http.StatusCreated, loginResponse{
		User:        user,
		AccessToken: req.AccessToken,
	})
}

type refreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

func (s *Server) handleRefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		s.writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized: No refresh token provided")
		return
	}

	pair, err := s.auth.Refresh(r.Context(), cookie.Value)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if pair.RefreshToken != "" {
		s.setRefreshCookie(w, pair.RefreshToken)
	}

	s.writeJSON(w, http.StatusOK, refreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Unix(0, 0),
	})
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (s *Server) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   refreshCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   !s.dev,
	})
}
