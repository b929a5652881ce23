package repository

import (
	"serenity-backend/internal/db"
	"serenity-backend/internal/db/query"
	"serenity-backend/internal/model"
)

type JournalRepository interface {
	CreateEntry(entry *model.JournalEntry) error
	// GetEntries returns the user's entries ordered by timestamp.
	GetEntries(userID uint) ([]model.JournalEntry, error)
	GetLatestEntry(userID uint) (*model.JournalEntry, error)
	// DeleteEntry removes an entry owned by userID; ErrNotFound otherwise.
	DeleteEntry(userID, id uint) error
}

type journalRepository struct{}

func NewJournalRepository() JournalRepository {
	return &journalRepository{}
}

func (r *journalRepository) CreateEntry(entry *model.JournalEntry) error {
	return db.GetDB().Create(entry).Error
}

func (r *journalRepository) GetEntries(userID uint) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	err := db.GetDB().Where("user_id = ?", userID).Order("timestamp ASC, id ASC").Find(&entries).Error
	return entries, err
}

func (r *journalRepository) GetLatestEntry(userID uint) (*model.JournalEntry, error) {
	var entries []model.JournalEntry
	if err := db.NewQueryExecutor(db.GetDB()).Find(LatestEntryQuery(userID), &entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return &entries[0], nil
}

// LatestEntryQuery selects the user's most recent journal entry.
func LatestEntryQuery(userID uint) *query.QueryBuilder {
	return query.NewQueryBuilder().
		Select("*").
		From("journal_entries").
		Where("user_id = ?", userID).
		OrderBy("timestamp DESC", "id DESC").
		Limit(1)
}

func (r *journalRepository) DeleteEntry(userID, id uint) error {
	result := db.GetDB().Where("id = ? AND user_id = ?", id, userID).Delete(&model.JournalEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
