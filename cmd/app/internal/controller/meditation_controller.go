package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"serenity-backend/internal/exercise"
	"serenity-backend/internal/service"
)

// timeNow is swapped in tests.
var timeNow = time.Now

type MeditationController struct {
	MeditationService service.MeditationService
}

func NewMeditationController(meditationService service.MeditationService) *MeditationController {
	return &MeditationController{MeditationService: meditationService}
}

// RecordSession handles POST /meditations
func (mc *MeditationController) RecordSession(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var req struct {
		DurationSeconds int        `json:"duration_seconds"`
		StartedAt       *time.Time `json:"started_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	session, err := mc.MeditationService.Record(uid, req.DurationSeconds, req.StartedAt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetStats handles GET /meditations/stats
func (mc *MeditationController) GetStats(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	stats, err := mc.MeditationService.Stats(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

type ExerciseController struct{}

func NewExerciseController() *ExerciseController {
	return &ExerciseController{}
}

// GetBreathing handles GET /exercises/breathing?cycles=N
func (ec *ExerciseController) GetBreathing(c *gin.Context) {
	cycles := exercise.DefaultCycles
	if v := c.Query("cycles"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cycles must be a number"})
			return
		}
		cycles = n
	}
	schedule, err := exercise.Breathing(cycles)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, schedule)
}
