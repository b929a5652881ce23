package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"serenity-backend/internal/service"
)

type ProgressController struct {
	ProgressService service.ProgressService
	ReportService   service.ReportService
}

func NewProgressController(progressService service.ProgressService, reportService service.ReportService) *ProgressController {
	return &ProgressController{ProgressService: progressService, ReportService: reportService}
}

// GetProgress handles GET /progress
func (pc *ProgressController) GetProgress(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	progressData, err := pc.ProgressService.GenerateProgressData(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"initial_progress": progressData.InitialProgress,
		"current_progress": progressData.CurrentProgress,
	})
}

// DownloadReport handles GET /reports/mood
func (pc *ProgressController) DownloadReport(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	pdfContent, err := pc.ReportService.MoodReport(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("mood_report_%s.pdf", timeNow().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", pdfContent)
}
