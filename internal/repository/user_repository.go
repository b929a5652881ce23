package repository

import (
	"serenity-backend/internal/db"
	"serenity-backend/internal/db/query"
	"serenity-backend/internal/model"
)

type UserRepository interface {
	CreateUser(user *model.User) error
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id uint) (*model.User, error)
	UpdateUser(user *model.User) error
	EmailExists(email string) (bool, error)
	CountAdmins() (int64, error)
	// DeleteUserWithData removes the user and everything they own.
	DeleteUserWithData(id uint) error
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) CreateUser(user *model.User) error {
	return db.GetDB().Create(user).Error
}

func (r *userRepository) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := db.GetDB().Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(id uint) (*model.User, error) {
	var user model.User
	if err := db.GetDB().First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(user *model.User) error {
	return db.GetDB().Save(user).Error
}

func (r *userRepository) EmailExists(email string) (bool, error) {
	return db.NewQueryExecutor(db.GetDB()).Exists("users", map[string]interface{}{"email": email})
}

func (r *userRepository) CountAdmins() (int64, error) {
	return db.NewQueryExecutor(db.GetDB()).Count("users", map[string]interface{}{"is_admin": true})
}

// owned lists the tables keyed by user_id.
var owned = []string{"mood_check_ins", "journal_entries", "chat_messages", "meditation_sessions"}

func (r *userRepository) DeleteUserWithData(id uint) error {
	return db.NewQueryExecutor(db.GetDB()).Transaction(func(tx *db.QueryExecutor) error {
		for _, table := range owned {
			if _, err := tx.Exec(query.NewQueryBuilder().DeleteFrom(table).Where("user_id = ?", id)); err != nil {
				return err
			}
		}
		n, err := tx.Exec(query.NewQueryBuilder().DeleteFrom("users").Where("id = ?", id))
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}
