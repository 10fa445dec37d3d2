package handlers

import (
	"errors"
	"net/http"
	"strings"

	"bookmarks_backend/internal/models"
	"bookmarks_backend/internal/service"
	"bookmarks_backend/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ctxUserKey is the gin context key under which authRequired stores the
// resolved user. Only the guard writes it.
const ctxUserKey = "authUser"

const requestIDHeader = "X-Request-Id"

// Every auth rejection uses the same body: the client never learns whether
// the token was missing from the store, expired or tampered with.
const (
	errMissingAuthHeader = "missing Authorization header"
	errBadAuthHeader     = "invalid Authorization header format"
	errBadToken          = "invalid or expired token"
	errAuthInternal      = "failed to authenticate request"
)

// requestID tags each request with a uuid, echoed in the response header
// and attached to guard logs.
func (h *Handler) requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDHeader, id)
	c.Writer.Header().Set(requestIDHeader, id)
	c.Next()
}

// authRequired guards protected routes. It extracts the bearer token,
// validates it and resolves the subject to a stored user before the handler
// runs; any failure aborts with 401 and the handler never executes.
func (h *Handler) authRequired(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": errMissingAuthHeader,
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": errBadAuthHeader,
		})
		return
	}

	user, err := h.services.Authorization.Authenticate(c.Request.Context(), parts[1])
	if err != nil {
		// A storage fault is not an auth rejection: it is unexpected for
		// this request and answers as a server error, logged with detail.
		if !isAuthFailure(err) {
			if h.log != nil {
				h.log.Errorw("authenticate_failed", "err", err, "request_id", c.GetString(requestIDHeader))
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": errAuthInternal,
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": errBadToken,
		})
		return
	}

	c.Set(ctxUserKey, user)
	c.Next()
}

// isAuthFailure separates expected rejections, which answer 401, from
// storage faults, which answer 500.
func isAuthFailure(err error) bool {
	return errors.Is(err, service.ErrUserNotFound) ||
		errors.Is(err, token.ErrMissing) ||
		errors.Is(err, token.ErrExpired) ||
		errors.Is(err, token.ErrInvalid)
}

// currentUser returns the identity attached by authRequired. Calling it on
// a route that is not wrapped by the guard is a programming error and
// panics via MustGet.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(ctxUserKey).(*models.User)
}

// currentUserID is a shorthand for handlers that only need the subject id.
func currentUserID(c *gin.Context) int {
	return currentUser(c).ID
}
