package service

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"serenity-backend/internal/model"
	"serenity-backend/internal/repository"
	"serenity-backend/utilities"
)

// Password bounds enforced at registration. bcrypt rejects anything
// longer than MaxPasswordLength bytes.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

var (
	ErrWeakPassword    = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrPasswordTooLong = fmt.Errorf("password must be at most %d bytes", MaxPasswordLength)
)

// AuthService interface
type AuthService interface {
	Register(user *model.User) error
	Login(email, password string) (*model.User, error)
	// EnsureAdmin creates an admin account unless one already exists.
	EnsureAdmin(email, password string) (bool, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService initializes authentication service
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(user *model.User) error {
	user.FirstName = strings.TrimSpace(user.FirstName)
	user.LastName = strings.TrimSpace(user.LastName)
	user.Email = normalizeEmail(user.Email)
	if user.FirstName == "" || user.LastName == "" || user.Email == "" || user.Password == "" {
		return ErrMissingFields
	}
	if len(user.Password) < MinPasswordLength {
		return ErrWeakPassword
	}
	if len(user.Password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}

	exists, err := s.userRepo.EmailExists(user.Email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		return ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hash)
	user.IsAdmin = false

	if err := s.userRepo.CreateUser(user); err != nil {
		return fmt.Errorf("failed to store user in database: %w", err)
	}
	utilities.Info("registered user %d", user.ID)
	return nil
}

// Login function to authenticate user
func (s *authService) Login(email, password string) (*model.User, error) {
	user, err := s.userRepo.GetUserByEmail(normalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		utilities.Warn("failed login for user %d", user.ID)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) EnsureAdmin(email, password string) (bool, error) {
	n, err := s.userRepo.CountAdmins()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	admin := &model.User{FirstName: "Serenity", LastName: "Admin", Email: email, Password: password}
	if err := s.Register(admin); err != nil {
		return false, err
	}
	admin.IsAdmin = true
	if err := s.userRepo.UpdateUser(admin); err != nil {
		return false, err
	}
	return true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
