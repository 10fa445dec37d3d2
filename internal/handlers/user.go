package handlers

import (
	"errors"
	"net/http"

	"bookmarks_backend/internal/models"
	"bookmarks_backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *Handler) getMe(c *gin.Context) {
	// The guard already resolved the identity; no second lookup needed.
	c.JSON(http.StatusOK, currentUser(c))
}

// @Summary      Edit profile
// @Description  Edits the user bound to the bearer token. Any id in the body is ignored.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  models.UserPatch  true  "Fields to change"
// @Success      200  {object}  models.User
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users [patch]
// @Security     BearerAuth
func (h *Handler) editUser(c *gin.Context) {
	var patch models.UserPatch
	if ok := h.bindJSONOrBadRequest(c, &patch); !ok {
		return
	}

	user, err := h.services.Users.Edit(c.Request.Context(), currentUserID(c), patch)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "email is already taken"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to edit user", "edit_user_failed", err, "user_id", currentUserID(c))
		return
	}

	c.JSON(http.StatusOK, user)
}
