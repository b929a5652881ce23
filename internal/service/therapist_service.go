package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"serenity-backend/internal/cache"
	"serenity-backend/internal/imgur"
	"serenity-backend/internal/model"
	"serenity-backend/internal/repository"
	"serenity-backend/utilities"
)

// SuspensionPeriod is how long a suspended therapist stays hidden.
const SuspensionPeriod = 30 * 24 * time.Hour

// TherapistInput is the editable part of a directory listing.
type TherapistInput struct {
	Name        string `json:"name" form:"name"`
	Experience  string `json:"experience" form:"experience"`
	Gender      string `json:"gender" form:"gender"`
	Age         string `json:"age" form:"age"`
	Location    string `json:"location" form:"location"`
	Description string `json:"description" form:"description"`
	Contact     string `json:"contact" form:"contact"`
	Email       string `json:"email" form:"email"`
	ImageURL    string `json:"image_url" form:"image_url"`
}

// Upload is an optional image sent with a listing.
type Upload struct {
	Filename string
	Body     io.Reader
}

type TherapistService interface {
	// ListActive returns the public directory, hiding suspended therapists.
	ListActive(ctx context.Context, filter repository.TherapistFilter) ([]model.Therapist, error)
	ListAll() ([]model.Therapist, error)
	// Get returns a public listing; suspended therapists are not found.
	Get(id uint) (*model.Therapist, error)
	Create(ctx context.Context, input TherapistInput, image *Upload) (*model.Therapist, error)
	Update(ctx context.Context, id uint, input TherapistInput, image *Upload) (*model.Therapist, error)
	Delete(ctx context.Context, id uint) error
	Suspend(ctx context.Context, id uint) (*model.Therapist, error)
}

type therapistService struct {
	repo     repository.TherapistRepository
	cache    cache.TherapistCache
	uploader imgur.Uploader
	policy   *bluemonday.Policy
	now      func() time.Time
}

// NewTherapistService wires the directory. cache may be nil.
func NewTherapistService(repo repository.TherapistRepository, c cache.TherapistCache, uploader imgur.Uploader) TherapistService {
	return &therapistService{
		repo:     repo,
		cache:    c,
		uploader: uploader,
		policy:   bluemonday.StrictPolicy(),
		now:      time.Now,
	}
}

func cacheKey(f repository.TherapistFilter) string {
	return "location=" + strings.ToLower(f.Location) + "|gender=" + strings.ToLower(f.Gender)
}

func (s *therapistService) ListActive(ctx context.Context, filter repository.TherapistFilter) ([]model.Therapist, error) {
	filter.Location = strings.TrimSpace(filter.Location)
	filter.Gender = strings.TrimSpace(filter.Gender)
	key := cacheKey(filter)

	// The generation is read before the query so a change that lands in
	// between retires the listing this call writes back.
	gen, cached := s.generation(ctx)
	if cached {
		list, err := s.cache.Get(ctx, gen, key)
		if err == nil {
			return list, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			utilities.Warn("therapist cache read: %v", err)
		}
	}

	list, err := s.repo.SearchActive(filter, s.now())
	if err != nil {
		return nil, err
	}
	if cached {
		if err := s.cache.Set(ctx, gen, key, list); err != nil {
			utilities.Warn("therapist cache write: %v", err)
		}
	}
	return list, nil
}

func (s *therapistService) generation(ctx context.Context) (int64, bool) {
	if s.cache == nil {
		return 0, false
	}
	gen, err := s.cache.Generation(ctx)
	if err != nil {
		utilities.Warn("therapist cache generation: %v", err)
		return 0, false
	}
	return gen, true
}

func (s *therapistService) ListAll() ([]model.Therapist, error) {
	return s.repo.GetAllTherapists()
}

func (s *therapistService) Get(id uint) (*model.Therapist, error) {
	t, err := s.repo.GetTherapistByID(id)
	if err != nil {
		return nil, err
	}
	if t.IsSuspended(s.now()) {
		return nil, ErrNotFound
	}
	return t, nil
}

func (s *therapistService) Create(ctx context.Context, input TherapistInput, image *Upload) (*model.Therapist, error) {
	t := &model.Therapist{}
	if err := s.apply(ctx, t, input, image); err != nil {
		return nil, err
	}
	if err := s.repo.CreateTherapist(t); err != nil {
		return nil, fmt.Errorf("save therapist: %w", err)
	}
	s.changed(ctx)
	utilities.Info("added therapist %d", t.ID)
	return t, nil
}

func (s *therapistService) Update(ctx context.Context, id uint, input TherapistInput, image *Upload) (*model.Therapist, error) {
	t, err := s.activeByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, t, input, image); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateTherapist(t); err != nil {
		return nil, fmt.Errorf("update therapist: %w", err)
	}
	s.changed(ctx)
	return t, nil
}

func (s *therapistService) Delete(ctx context.Context, id uint) error {
	if _, err := s.activeByID(id); err != nil {
		return err
	}
	if err := s.repo.DeleteTherapist(id); err != nil {
		return err
	}
	s.changed(ctx)
	utilities.Info("removed therapist %d", id)
	return nil
}

func (s *therapistService) Suspend(ctx context.Context, id uint) (*model.Therapist, error) {
	t, err := s.activeByID(id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	until := now.Add(SuspensionPeriod)
	if err := s.repo.SuspendTherapist(id, until, now); err != nil {
		if errors.Is(err, ErrNotFound) {
			// Suspended or removed since it was loaded.
			return nil, ErrTherapistSuspended
		}
		return nil, fmt.Errorf("suspend therapist: %w", err)
	}
	t.SuspendedUntil = &until
	s.changed(ctx)
	utilities.Info("suspended therapist %d until %s", id, until.Format(time.RFC3339))
	return t, nil
}

// activeByID loads a therapist that may be modified.
func (s *therapistService) activeByID(id uint) (*model.Therapist, error) {
	t, err := s.repo.GetTherapistByID(id)
	if err != nil {
		return nil, err
	}
	if t.IsSuspended(s.now()) {
		return nil, ErrTherapistSuspended
	}
	return t, nil
}

func (s *therapistService) apply(ctx context.Context, t *model.Therapist, in TherapistInput, image *Upload) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return ErrMissingFields
	}
	t.Name = name
	t.Experience = strings.TrimSpace(in.Experience)
	t.Gender = strings.TrimSpace(in.Gender)
	t.Age = strings.TrimSpace(in.Age)
	t.Location = strings.TrimSpace(in.Location)
	t.Description = cleanText(s.policy, in.Description)
	t.Contact = strings.TrimSpace(in.Contact)
	t.Email = normalizeEmail(in.Email)
	if in.ImageURL != "" {
		t.ImageURL = strings.TrimSpace(in.ImageURL)
	}
	if image != nil {
		link, err := s.uploader.Upload(ctx, image.Filename, image.Body)
		if err != nil {
			return err
		}
		t.ImageURL = link
	}
	return nil
}

// changed drops cached listings before a write returns, so the next public
// read sees it.
func (s *therapistService) changed(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		utilities.Warn("therapist cache invalidation failed: %v", err)
	}
}
