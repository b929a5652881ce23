package model

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"first_name" gorm:"not null"`
	LastName  string    `json:"last_name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	Password  string    `json:"password,omitempty"` // Exclude from JSON responses
	IsAdmin   bool      `json:"is_admin" gorm:"default:false"`
	Username  string    `json:"username"`
	Bio       string    `json:"bio"`
	Age       string    `json:"age"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MoodCheckIn is one completed questionnaire.
type MoodCheckIn struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	SessionID   string    `json:"session_id" gorm:"not null;unique"`
	Answers     string    `json:"-" gorm:"type:jsonb"` // JSON array of answers
	Score       int       `json:"score" gorm:"not null"`
	Label       string    `json:"label"`
	Emoji       string    `json:"emoji"`
	Suggestions string    `json:"-"` // newline separated
	CreatedAt   time.Time `json:"created_at"`
}

type JournalEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Entry     string    `json:"entry" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatMessage is one line of a user's conversation with the companion.
type ChatMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Role      string    `json:"role"` // user, assistant
	Content   string    `json:"content" gorm:"type:text"`
	Intent    string    `json:"intent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Therapist struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Name           string     `json:"name" gorm:"not null"`
	Experience     string     `json:"experience"`
	Gender         string     `json:"gender" gorm:"index"`
	Age            string     `json:"age"`
	Location       string     `json:"location" gorm:"index"`
	Description    string     `json:"description" gorm:"type:text"`
	Contact        string     `json:"contact"`
	Email          string     `json:"email"`
	ImageURL       string     `json:"image_url"`
	SuspendedUntil *time.Time `json:"suspended_until,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// IsSuspended reports whether the therapist is suspended at now.
func (t *Therapist) IsSuspended(now time.Time) bool {
	return t.SuspendedUntil != nil && now.Before(*t.SuspendedUntil)
}

type MeditationSession struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"not null;index"`
	DurationSeconds int       `json:"duration_seconds" gorm:"not null"`
	StartedAt       time.Time `json:"started_at" gorm:"index"`
	CreatedAt       time.Time `json:"created_at"`
}
