package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bookmarks_backend/internal/models"
	"bookmarks_backend/internal/service"

	"github.com/gin-gonic/gin"
)

const errBookmarkNotFound = "bookmark not found"

// Request DTO for creating a bookmark.
type createBookmarkRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Link        string `json:"link" binding:"required"`
}

// bookmarkIDOrBadRequest parses the :id path param. Returns false if the
// request was already handled.
func (h *Handler) bookmarkIDOrBadRequest(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bookmark id"})
		return 0, false
	}
	return id, true
}

// @Summary      Create bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        body  body  createBookmarkRequest  true  "Bookmark"
// @Success      201  {object}  models.Bookmark
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /bookmarks [post]
// @Security     BearerAuth
func (h *Handler) createBookmark(c *gin.Context) {
	var req createBookmarkRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	b, err := h.services.Bookmarks.Create(c.Request.Context(), currentUserID(c), req.Title, req.Description, req.Link)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to create bookmark", "bookmark_create_failed", err, "user_id", currentUserID(c))
		return
	}

	c.JSON(http.StatusCreated, b)
}

// @Summary      List bookmarks
// @Tags         bookmarks
// @Produce      json
// @Success      200  {array}  models.Bookmark
// @Failure      401  {object}  map[string]string
// @Router       /bookmarks [get]
// @Security     BearerAuth
func (h *Handler) listBookmarks(c *gin.Context) {
	bs, err := h.services.Bookmarks.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to list bookmarks", "bookmark_list_failed", err, "user_id", currentUserID(c))
		return
	}

	c.JSON(http.StatusOK, bs)
}

// @Summary      Get bookmark
// @Tags         bookmarks
// @Produce      json
// @Param        id  path  int  true  "Bookmark id"
// @Success      200  {object}  models.Bookmark
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /bookmarks/{id} [get]
// @Security     BearerAuth
func (h *Handler) getBookmark(c *gin.Context) {
	id, ok := h.bookmarkIDOrBadRequest(c)
	if !ok {
		return
	}

	b, err := h.services.Bookmarks.GetByID(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		if errors.Is(err, service.ErrBookmarkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errBookmarkNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load bookmark", "bookmark_get_failed", err, "id", id)
		return
	}

	c.JSON(http.StatusOK, b)
}

// @Summary      Edit bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "Bookmark id"
// @Param        body  body  models.BookmarkPatch  true  "Fields to change"
// @Success      200  {object}  models.Bookmark
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /bookmarks/{id} [patch]
// @Security     BearerAuth
func (h *Handler) editBookmark(c *gin.Context) {
	id, ok := h.bookmarkIDOrBadRequest(c)
	if !ok {
		return
	}

	var patch models.BookmarkPatch
	if ok := h.bindJSONOrBadRequest(c, &patch); !ok {
		return
	}

	b, err := h.services.Bookmarks.Edit(c.Request.Context(), currentUserID(c), id, patch)
	if err != nil {
		if errors.Is(err, service.ErrBookmarkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errBookmarkNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to edit bookmark", "bookmark_edit_failed", err, "id", id)
		return
	}

	c.JSON(http.StatusOK, b)
}

// @Summary      Delete bookmark
// @Tags         bookmarks
// @Param        id  path  int  true  "Bookmark id"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /bookmarks/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteBookmark(c *gin.Context) {
	id, ok := h.bookmarkIDOrBadRequest(c)
	if !ok {
		return
	}

	if err := h.services.Bookmarks.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		if errors.Is(err, service.ErrBookmarkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errBookmarkNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to delete bookmark", "bookmark_delete_failed", err, "id", id)
		return
	}

	c.Status(http.StatusNoContent)
}
