package handlers

import (
	"errors"
	"net/http"
	"time"

	request "github.com/IgorSouzaLima/rjlima/internal/adapter/http/dto/request"
	response "github.com/IgorSouzaLima/rjlima/internal/adapter/http/dto/response"
	"github.com/IgorSouzaLima/rjlima/internal/usecase"
	"github.com/IgorSouzaLima/rjlima/pkg"

	"github.com/gin-gonic/gin"
)

// SessionHandler signs admins in and out of the API.

type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// SignIn accepts JSON or form credentials, sets the session cookie and returns
// the token for bearer use.
func (h *SessionHandler) SignIn(c *gin.Context) {
	var payload request.SignInRequest
	if err := c.ShouldBind(&payload); err != nil {
		writeAppError(c, mapSessionError(usecase.ErrMissingCredentials))
		return
	}

	s, err := h.usecase.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeAppError(c, mapSessionError(err))
		return
	}

	setSessionCookie(c, s.Token, int(time.Until(s.ExpiresAt).Seconds()))
	c.JSON(http.StatusOK, response.FromSession(s, true))
}

func (h *SessionHandler) SignOut(c *gin.Context) {
	if err := h.usecase.SignOut(c.Request.Context(), sessionToken(c)); err != nil {
		writeAppError(c, mapSessionError(err))
		return
	}
	clearSessionCookie(c)
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.GetSession(c.Request.Context(), sessionToken(c))
	if err != nil || s.ID == "" {
		writeAppError(c, errUnauthenticated)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s, false))
}

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sessao expirada. Faca login novamente.", http.StatusUnauthorized)

// UnauthenticatedError is the body returned to API clients without a session.
type UnauthenticatedError struct {
	pkg.HTTPError
	LoginURL string `json:"login_url"`
}

// RequireSession aborts requests without a live session: browsers are
// redirected to the login page, API clients get 401.
func RequireSession(uc usecase.ISessionUseCase) gin.HandlerFunc {
	return sessionGuard(uc, false)
}

// RequirePageSession always redirects to the login page when no session exists.
func RequirePageSession(uc usecase.ISessionUseCase) gin.HandlerFunc {
	return sessionGuard(uc, true)
}

func sessionGuard(uc usecase.ISessionUseCase, alwaysRedirect bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if !uc.RequireAuth(c.Request.Context(), token) {
			if alwaysRedirect || wantsHTML(c) {
				c.Redirect(http.StatusSeeOther, LoginPath)
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, UnauthenticatedError{
				HTTPError: errUnauthenticated.ToHTTPError(),
				LoginURL:  LoginPath,
			})
			return
		}
		c.Set(sessionTokenKey, token)
		c.Next()
	}
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCredentials):
		return pkg.NewDomainErrorSimple("MISSING_CREDENTIALS", "Preencha todos os campos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Email ou senha incorretos", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSignOutFailed):
		return pkg.NewDomainError("SIGN_OUT_FAILED", "Erro ao sair. Tente novamente.", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("SIGN_IN_FAILED", "Erro ao fazer login. Tente novamente.", err, http.StatusInternalServerError)
	}
}
