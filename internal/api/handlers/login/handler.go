package login

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/Hayzedd-A/appointment-booking/internal/api/handlers"
	"github.com/Hayzedd-A/appointment-booking/internal/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCredentials = "invalid username or password"

	// CookieName имя cookie с JWT токеном админа
	CookieName = "token"
)

type Handler struct {
	issuer       TokenIssuer
	username     string
	passwordHash string
	logger       Logger
}

func NewHandler(issuer TokenIssuer, username, passwordHash string, logger Logger) *Handler {
	return &Handler{
		issuer:       issuer,
		username:     username,
		passwordHash: passwordHash,
		logger:       logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Сравниваем и имя пользователя, и пароль до ответа,
	// чтобы не раскрывать, какое из полей неверно
	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
	passwordOK := auth.ComparePassword(h.passwordHash, req.Password) == nil

	if !usernameOK || !passwordOK {
		h.logger.Warn("POST /auth/login - Invalid credentials: username=%s", req.Username)
		handlers.RespondUnauthorized(w, msgInvalidCredentials)
		return
	}

	token, expiresAt, err := h.issuer.NewAdminToken()
	if err != nil {
		h.logger.Error("POST /auth/login - Failed to issue token: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /auth/login - Admin logged in: username=%s", req.Username)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}
