package controller

import (
	"github.com/gin-gonic/gin"

	"serenity-backend/internal/realtime"
	"serenity-backend/internal/service"
	"serenity-backend/utilities"
)

// Services bundles everything the routes depend on.
type Services struct {
	Auth       service.AuthService
	User       service.UserService
	Mood       service.MoodService
	Chat       service.ChatService
	Journal    service.JournalService
	Therapist  service.TherapistService
	Meditation service.MeditationService
	Progress   service.ProgressService
	Report     service.ReportService
	Hub        *realtime.Hub
	Checks     map[string]Check
}

func RegisterRoutes(r *gin.Engine, s Services) {
	r.Use(utilities.AuthMiddleware())

	healthCtrl := NewHealthController(s.Checks)
	r.GET("/health", healthCtrl.Health)

	// Auth routes.
	authCtrl := NewAuthController(s.Auth)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authCtrl.Register)
		authRoutes.POST("/login", authCtrl.Login)
		authRoutes.POST("/refresh", authCtrl.Refresh)
	}

	// User routes.
	userCtrl := NewUserController(s.User)
	meRoutes := r.Group("/me")
	{
		meRoutes.GET("", userCtrl.GetMe)
		meRoutes.DELETE("", userCtrl.DeleteMe)
		meRoutes.PUT("/profile", userCtrl.UpdateProfile)
		meRoutes.POST("/profile/image", userCtrl.UploadImage)
	}

	// Mood routes.
	moodCtrl := NewMoodController(s.Mood)
	moodRoutes := r.Group("/mood")
	{
		moodRoutes.GET("/questions", moodCtrl.GetQuestions)
		moodRoutes.POST("/check-ins", moodCtrl.CheckIn)
		moodRoutes.GET("/check-ins", moodCtrl.GetHistory)
		moodRoutes.GET("/check-ins/:session_id", moodCtrl.GetCheckIn)
		moodRoutes.POST("/classify", moodCtrl.Classify)
	}

	// Chat routes.
	chatCtrl := NewChatController(s.Chat)
	chatRoutes := r.Group("/chat")
	{
		chatRoutes.POST("/messages", chatCtrl.SendMessage)
		chatRoutes.GET("/messages", chatCtrl.GetMessages)
		chatRoutes.DELETE("/messages", chatCtrl.ClearMessages)
		chatRoutes.GET("/reply", chatCtrl.Reply)
	}

	// Journal routes.
	journalCtrl := NewJournalController(s.Journal)
	journalRoutes := r.Group("/journals")
	{
		journalRoutes.POST("", journalCtrl.CreateEntry)
		journalRoutes.GET("", journalCtrl.GetEntries)
		journalRoutes.GET("/latest", journalCtrl.GetLatest)
		journalRoutes.GET("/export", journalCtrl.Export)
		journalRoutes.DELETE("/:id", journalCtrl.DeleteEntry)
	}
	if s.Hub != nil {
		r.GET("/ws/journals", realtime.NewHandler(s.Hub).Serve)
	}

	// Therapist routes.
	therapistCtrl := NewTherapistController(s.Therapist)
	r.GET("/therapists", therapistCtrl.GetTherapists)
	r.GET("/therapists/:id", therapistCtrl.GetTherapist)
	adminRoutes := r.Group("/admin", utilities.AdminOnly())
	{
		adminRoutes.GET("/therapists", therapistCtrl.GetAllTherapists)
		adminRoutes.POST("/therapists", therapistCtrl.CreateTherapist)
		adminRoutes.PUT("/therapists/:id", therapistCtrl.UpdateTherapist)
		adminRoutes.DELETE("/therapists/:id", therapistCtrl.DeleteTherapist)
		adminRoutes.POST("/therapists/:id/suspend", therapistCtrl.SuspendTherapist)
	}

	// Meditation and exercise routes.
	meditationCtrl := NewMeditationController(s.Meditation)
	r.POST("/meditations", meditationCtrl.RecordSession)
	r.GET("/meditations/stats", meditationCtrl.GetStats)
	exerciseCtrl := NewExerciseController()
	r.GET("/exercises/breathing", exerciseCtrl.GetBreathing)

	// Progress routes.
	progressCtrl := NewProgressController(s.Progress, s.Report)
	r.GET("/progress", progressCtrl.GetProgress)
	r.GET("/reports/mood", progressCtrl.DownloadReport)
}
