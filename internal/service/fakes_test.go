package service

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"serenity-backend/internal/model"
	"serenity-backend/internal/repository"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*model.User)}
}

func (r *fakeUserRepo) CreateUser(u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetUserByID(id uint) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdateUser(u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) EmailExists(email string) (bool, error) {
	_, err := r.GetUserByEmail(email)
	return err == nil, nil
}

func (r *fakeUserRepo) CountAdmins() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.IsAdmin {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) DeleteUserWithData(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeMoodRepo struct {
	mu       sync.Mutex
	checkIns []model.MoodCheckIn
	clock    time.Time
}

func (r *fakeMoodRepo) CreateCheckIn(c *model.MoodCheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = uint(len(r.checkIns) + 1)
	if c.CreatedAt.IsZero() {
		r.clock = r.clock.Add(time.Hour)
		c.CreatedAt = r.clock
	}
	r.checkIns = append(r.checkIns, *c)
	return nil
}

func (r *fakeMoodRepo) GetCheckIns(userID uint) ([]model.MoodCheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.MoodCheckIn
	for i := len(r.checkIns) - 1; i >= 0; i-- {
		if r.checkIns[i].UserID == userID {
			out = append(out, r.checkIns[i])
		}
	}
	return out, nil
}

func (r *fakeMoodRepo) GetCheckInBySessionID(userID uint, sessionID string) (*model.MoodCheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.checkIns {
		if c.UserID == userID && c.SessionID == sessionID {
			cp := c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeJournalRepo struct {
	mu      sync.Mutex
	entries []model.JournalEntry
}

func (r *fakeJournalRepo) CreateEntry(e *model.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = uint(len(r.entries) + 1)
	r.entries = append(r.entries, *e)
	return nil
}

func (r *fakeJournalRepo) GetEntries(userID uint) ([]model.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.JournalEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *fakeJournalRepo) GetLatestEntry(userID uint) (*model.JournalEntry, error) {
	entries, _ := r.GetEntries(userID)
	if len(entries) == 0 {
		return nil, repository.ErrNotFound
	}
	return &entries[len(entries)-1], nil
}

func (r *fakeJournalRepo) DeleteEntry(userID, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.ID == id && e.UserID == userID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeChatRepo struct {
	mu       sync.Mutex
	messages []model.ChatMessage
}

func (r *fakeChatRepo) SaveMessages(messages ...*model.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range messages {
		m.ID = uint(len(r.messages) + 1)
		r.messages = append(r.messages, *m)
	}
	return nil
}

func (r *fakeChatRepo) GetMessages(userID uint) ([]model.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.ChatMessage
	for _, m := range r.messages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) ClearMessages(userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.messages[:0]
	for _, m := range r.messages {
		if m.UserID != userID {
			kept = append(kept, m)
		}
	}
	r.messages = kept
	return nil
}

type fakeTherapistRepo struct {
	mu       sync.Mutex
	list     map[uint]*model.Therapist
	nextID   uint
	searches int

	// afterSearch runs once a search has its rows, before they are returned.
	afterSearch func()
}

func newFakeTherapistRepo() *fakeTherapistRepo {
	return &fakeTherapistRepo{list: make(map[uint]*model.Therapist)}
}

func (r *fakeTherapistRepo) CreateTherapist(t *model.Therapist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	t.ID = r.nextID
	cp := *t
	r.list[t.ID] = &cp
	return nil
}

func (r *fakeTherapistRepo) GetTherapistByID(id uint) (*model.Therapist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.list[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTherapistRepo) GetAllTherapists() ([]model.Therapist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Therapist
	for _, t := range r.list {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeTherapistRepo) SearchActive(f repository.TherapistFilter, now time.Time) ([]model.Therapist, error) {
	all, _ := r.GetAllTherapists()
	r.mu.Lock()
	r.searches++
	r.mu.Unlock()
	var out []model.Therapist
	for _, t := range all {
		if t.IsSuspended(now) {
			continue
		}
		if f.Location != "" && !strings.Contains(strings.ToLower(t.Location), strings.ToLower(f.Location)) {
			continue
		}
		if f.Gender != "" && !strings.EqualFold(t.Gender, f.Gender) {
			continue
		}
		out = append(out, t)
	}
	if r.afterSearch != nil {
		r.afterSearch()
	}
	return out, nil
}

func (r *fakeTherapistRepo) UpdateTherapist(t *model.Therapist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.list[t.ID] = &cp
	return nil
}

func (r *fakeTherapistRepo) SuspendTherapist(id uint, until, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.list[id]
	if !ok || t.IsSuspended(now) {
		return repository.ErrNotFound
	}
	t.SuspendedUntil = &until
	return nil
}

func (r *fakeTherapistRepo) DeleteTherapist(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.list[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.list, id)
	return nil
}

type fakeMeditationRepo struct {
	mu       sync.Mutex
	sessions []model.MeditationSession
}

func (r *fakeMeditationRepo) CreateSession(s *model.MeditationSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = uint(len(r.sessions) + 1)
	r.sessions = append(r.sessions, *s)
	return nil
}

func (r *fakeMeditationRepo) GetSessions(userID uint) ([]model.MeditationSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.MeditationSession
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeUploader struct {
	link  string
	err   error
	calls int
	got   string
}

func (u *fakeUploader) Upload(_ context.Context, filename string, image io.Reader) (string, error) {
	u.calls++
	data, _ := io.ReadAll(image)
	u.got = filename + ":" + string(data)
	return u.link, u.err
}
