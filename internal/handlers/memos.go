package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"memoapp/internal/services"

	"github.com/gin-gonic/gin"
)

type CreateMemoRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required,max=1000"`
}

// UpdateMemoRequest distinguishes an omitted field (nil) from a supplied
// one, so a PUT can change title and content independently.
type UpdateMemoRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=100"`
	Content *string `json:"content" binding:"omitempty,max=1000"`
}

func (h *Handler) CreateMemo(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req CreateMemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	memo, err := h.memoService.Create(c.Request.Context(), user.ID, req.Title, req.Content)
	if err != nil {
		h.logger.Error("Failed to create memo", "user_id", user.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create memo"})
		return
	}

	c.JSON(http.StatusCreated, memo)
}

func (h *Handler) ListMemos(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	memos, err := h.memoService.List(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("Failed to list memos", "user_id", user.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list memos"})
		return
	}

	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		c.JSON(http.StatusOK, memos)
		return
	}

	c.HTML(http.StatusOK, "memos.html", gin.H{
		"Username": user.Username,
		"Memos":    memos,
	})
}

func (h *Handler) UpdateMemo(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	memoID, ok := parseMemoID(c)
	if !ok {
		return
	}

	var req UpdateMemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := services.MemoPatch{Title: req.Title, Content: req.Content}
	memo, err := h.memoService.Update(c.Request.Context(), user.ID, memoID, patch)
	if err != nil {
		if errors.Is(err, services.ErrMemoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Memo not found"})
			return
		}
		h.logger.Error("Failed to update memo", "user_id", user.ID, "memo_id", memoID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update memo"})
		return
	}

	c.JSON(http.StatusOK, memo)
}

func (h *Handler) DeleteMemo(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	memoID, ok := parseMemoID(c)
	if !ok {
		return
	}

	err := h.memoService.Delete(c.Request.Context(), user.ID, memoID)
	if err != nil {
		if errors.Is(err, services.ErrMemoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Memo not found"})
			return
		}
		h.logger.Error("Failed to delete memo", "user_id", user.ID, "memo_id", memoID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete memo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Memo deleted"})
}

// parseMemoID treats a malformed id the same as a missing memo.
func parseMemoID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("memo_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Memo not found"})
		return 0, false
	}
	return uint(id), true
}
