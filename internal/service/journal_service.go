package service

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"serenity-backend/internal/model"
	"serenity-backend/internal/repository"
	"serenity-backend/utilities"
)

type JournalService interface {
	Create(userID uint, entry string) (*model.JournalEntry, error)
	List(userID uint) ([]model.JournalEntry, error)
	Latest(userID uint) (*model.JournalEntry, error)
	Delete(userID, id uint) error
	// ExportHTML renders every entry as Markdown into one sanitised page.
	ExportHTML(userID uint) ([]byte, error)
}

type journalService struct {
	journalRepo repository.JournalRepository
	bus         *utilities.EventBus
	strict      *bluemonday.Policy
	ugc         *bluemonday.Policy
	md          goldmark.Markdown
	now         func() time.Time
}

func NewJournalService(journalRepo repository.JournalRepository, bus *utilities.EventBus) JournalService {
	return &journalService{
		journalRepo: journalRepo,
		bus:         bus,
		strict:      bluemonday.StrictPolicy(),
		ugc:         bluemonday.UGCPolicy(),
		md:          goldmark.New(goldmark.WithExtensions(extension.GFM)),
		now:         time.Now,
	}
}

// cleanText strips markup and returns plain text.
func cleanText(p *bluemonday.Policy, s string) string {
	return strings.TrimSpace(html.UnescapeString(p.Sanitize(s)))
}

func (s *journalService) Create(userID uint, entry string) (*model.JournalEntry, error) {
	text := cleanText(s.strict, entry)
	if text == "" {
		return nil, ErrEmptyEntry
	}
	e := &model.JournalEntry{UserID: userID, Entry: text, Timestamp: s.now()}
	if err := s.journalRepo.CreateEntry(e); err != nil {
		return nil, fmt.Errorf("save journal entry: %w", err)
	}
	s.publish(utilities.EventJournalSaved, userID, e)
	return e, nil
}

func (s *journalService) List(userID uint) ([]model.JournalEntry, error) {
	return s.journalRepo.GetEntries(userID)
}

func (s *journalService) Latest(userID uint) (*model.JournalEntry, error) {
	return s.journalRepo.GetLatestEntry(userID)
}

func (s *journalService) Delete(userID, id uint) error {
	if err := s.journalRepo.DeleteEntry(userID, id); err != nil {
		return err
	}
	s.publish(utilities.EventJournalDeleted, userID, map[string]uint{"id": id})
	return nil
}

func (s *journalService) ExportHTML(userID uint) ([]byte, error) {
	entries, err := s.journalRepo.GetEntries(userID)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	body.WriteString("<h1>My Journal</h1>\n")
	for _, e := range entries {
		fmt.Fprintf(&body, "<article>\n<h2>%s</h2>\n", e.Timestamp.Format("Monday, 2 January 2006 15:04"))
		if err := s.md.Convert([]byte(e.Entry), &body); err != nil {
			return nil, fmt.Errorf("render entry %d: %w", e.ID, err)
		}
		body.WriteString("</article>\n")
	}
	return s.ugc.SanitizeBytes(body.Bytes()), nil
}

func (s *journalService) publish(event string, userID uint, data interface{}) {
	if s.bus != nil {
		s.bus.Publish(event, utilities.UserEvent{UserID: userID, Data: data})
	}
}
