package repository

import (
	"strings"
	"time"

	"serenity-backend/internal/db"
	"serenity-backend/internal/db/query"
	"serenity-backend/internal/model"
)

// TherapistFilter narrows the public directory. Empty fields match anything.
type TherapistFilter struct {
	Location string
	Gender   string
}

type TherapistRepository interface {
	CreateTherapist(t *model.Therapist) error
	GetTherapistByID(id uint) (*model.Therapist, error)
	GetAllTherapists() ([]model.Therapist, error)
	// SearchActive returns therapists not suspended at now that match filter.
	SearchActive(filter TherapistFilter, now time.Time) ([]model.Therapist, error)
	UpdateTherapist(t *model.Therapist) error
	// SuspendTherapist sets suspended_until on a therapist that is not
	// suspended at now; ErrNotFound otherwise.
	SuspendTherapist(id uint, until, now time.Time) error
	DeleteTherapist(id uint) error
}

type therapistRepository struct{}

func NewTherapistRepository() TherapistRepository {
	return &therapistRepository{}
}

func (r *therapistRepository) CreateTherapist(t *model.Therapist) error {
	return db.GetDB().Create(t).Error
}

func (r *therapistRepository) GetTherapistByID(id uint) (*model.Therapist, error) {
	var t model.Therapist
	if err := db.GetDB().First(&t, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *therapistRepository) GetAllTherapists() ([]model.Therapist, error) {
	var list []model.Therapist
	err := db.GetDB().Order("name ASC").Find(&list).Error
	return list, err
}

func (r *therapistRepository) SearchActive(filter TherapistFilter, now time.Time) ([]model.Therapist, error) {
	var list []model.Therapist
	err := db.NewQueryExecutor(db.GetDB()).Find(SearchQuery(filter, now), &list)
	return list, err
}

// SearchQuery builds the directory lookup for filter.
func SearchQuery(filter TherapistFilter, now time.Time) *query.QueryBuilder {
	fp := query.NewFilterPredicate()
	if filter.Location != "" {
		fp.Like("location", filter.Location)
	}
	if filter.Gender != "" {
		if !fp.Empty() {
			fp.And()
		}
		fp.Equal("LOWER(gender)", strings.ToLower(filter.Gender))
	}
	return query.NewQueryBuilder().
		Select("*").
		From("therapists").
		WherePredicate(fp).
		WherePredicate(activeAt(query.NewFilterPredicate(), now)).
		OrderBy("name ASC")
}

// SuspendQuery builds the update that suspends therapist id until the given
// time, guarded so an already suspended therapist is left untouched.
func SuspendQuery(id uint, until, now time.Time) *query.QueryBuilder {
	fp := query.NewFilterPredicate().Equal("id", id).And().Open()
	activeAt(fp, now).Close()
	return query.NewQueryBuilder().
		Update("therapists").
		Set(map[string]interface{}{"suspended_until": until, "updated_at": now}).
		WherePredicate(fp)
}

// activeAt appends "not suspended at now" to fp.
func activeAt(fp *query.FilterPredicate, now time.Time) *query.FilterPredicate {
	return fp.IsNull("suspended_until").Or().Not().GreaterThan("suspended_until", now)
}

func (r *therapistRepository) UpdateTherapist(t *model.Therapist) error {
	return db.GetDB().Save(t).Error
}

func (r *therapistRepository) SuspendTherapist(id uint, until, now time.Time) error {
	n, err := db.NewQueryExecutor(db.GetDB()).Exec(SuspendQuery(id, until, now))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *therapistRepository) DeleteTherapist(id uint) error {
	result := db.GetDB().Delete(&model.Therapist{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
