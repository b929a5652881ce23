package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"serenity-backend/internal/service"
)

type JournalController struct {
	JournalService service.JournalService
}

func NewJournalController(journalService service.JournalService) *JournalController {
	return &JournalController{JournalService: journalService}
}

// CreateEntry handles POST /journals
func (jc *JournalController) CreateEntry(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var req struct {
		Entry string `json:"entry"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	entry, err := jc.JournalService.Create(uid, req.Entry)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetEntries handles GET /journals
func (jc *JournalController) GetEntries(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	entries, err := jc.JournalService.List(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GetLatest handles GET /journals/latest
func (jc *JournalController) GetLatest(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	entry, err := jc.JournalService.Latest(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /journals/:id
func (jc *JournalController) DeleteEntry(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := jc.JournalService.Delete(uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Export handles GET /journals/export
func (jc *JournalController) Export(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	page, err := jc.JournalService.ExportHTML(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
