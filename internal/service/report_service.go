package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"serenity-backend/internal/repository"
)

type ReportService interface {
	// MoodReport renders the user's check-in history as a PDF.
	MoodReport(userID uint) ([]byte, error)
}

type reportService struct {
	userRepo repository.UserRepository
	moodRepo repository.MoodRepository
	now      func() time.Time
}

func NewReportService(userRepo repository.UserRepository, moodRepo repository.MoodRepository) ReportService {
	return &reportService{userRepo: userRepo, moodRepo: moodRepo, now: time.Now}
}

func (s *reportService) MoodReport(userID uint) ([]byte, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	checkIns, err := s.moodRepo.GetCheckIns(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch check-ins: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Serenity mood report", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Mood Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, tr(fmt.Sprintf("%s %s", user.FirstName, user.LastName)))
	pdf.Ln(6)
	pdf.Cell(0, 8, "Generated "+s.now().Format("2 January 2006"))
	pdf.Ln(12)

	if len(checkIns) == 0 {
		pdf.Cell(0, 8, "No check-ins recorded yet.")
	} else {
		widths := []float64{60, 30, 60}
		pdf.SetFont("Arial", "B", 11)
		for i, h := range []string{"Date", "Score", "Mood"} {
			pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 11)
		for _, c := range checkIns {
			pdf.CellFormat(widths[0], 8, c.CreatedAt.Format("2006-01-02 15:04"), "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[1], 8, fmt.Sprintf("%d", c.Score), "1", 0, "R", false, 0, "")
			pdf.CellFormat(widths[2], 8, tr(c.Label), "1", 0, "L", false, 0, "")
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}
