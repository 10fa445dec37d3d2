package handlers

import (
	"errors"
	"net/http"

	"bookmarks_backend/internal/repository"
	"bookmarks_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for both signup and signin.
type authCredentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  authCredentials  true  "Credentials"
// @Success      201  {object}  models.User
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /auth/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.Authorization.SignUp(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "email is already taken"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to sign up", "sign_up_failed", err, "email", input.Email)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  authCredentials  true  "Credentials"
// @Success      200  {object}  map[string]string  "access_token"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/signin [post]
func (h *Handler) signIn(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	accessToken, err := h.services.Authorization.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		// Unknown email and wrong password answer identically.
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to sign in", "sign_in_failed", err, "email", input.Email)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(requestIDHeader)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}
