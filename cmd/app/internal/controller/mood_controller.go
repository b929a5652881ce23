package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"serenity-backend/internal/service"
)

type MoodController struct {
	MoodService service.MoodService
}

func NewMoodController(moodService service.MoodService) *MoodController {
	return &MoodController{MoodService: moodService}
}

// GetQuestions handles GET /mood/questions
func (mc *MoodController) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": mc.MoodService.Questions()})
}

// CheckIn handles POST /mood/check-ins
func (mc *MoodController) CheckIn(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var req struct {
		Answers []string `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	result, err := mc.MoodService.CheckIn(uid, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GetHistory handles GET /mood/check-ins
func (mc *MoodController) GetHistory(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	history, err := mc.MoodService.History(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"check_ins": history})
}

// GetCheckIn handles GET /mood/check-ins/:session_id
func (mc *MoodController) GetCheckIn(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	result, err := mc.MoodService.GetCheckIn(uid, c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Classify handles POST /mood/classify
func (mc *MoodController) Classify(c *gin.Context) {
	var req struct {
		Score *int `json:"score" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "score is required"})
		return
	}
	c.JSON(http.StatusOK, mc.MoodService.Classify(*req.Score))
}
