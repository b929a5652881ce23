package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"serenity-backend/internal/imgur"
	"serenity-backend/internal/model"
	"serenity-backend/internal/repository"
	"serenity-backend/utilities"
)

// ProfileUpdate carries the editable profile extras. Nil fields are left alone.
type ProfileUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Username  *string `json:"username"`
	Bio       *string `json:"bio"`
	Age       *string `json:"age"`
	ImageURL  *string `json:"image_url"`
}

type UserService interface {
	GetProfile(id uint) (*model.User, error)
	UpdateProfile(id uint, update ProfileUpdate) (*model.User, error)
	UploadProfileImage(ctx context.Context, id uint, filename string, image io.Reader) (*model.User, error)
	DeleteAccount(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
	uploader imgur.Uploader
}

func NewUserService(userRepo repository.UserRepository, uploader imgur.Uploader) UserService {
	return &userService{userRepo: userRepo, uploader: uploader}
}

func (s *userService) GetProfile(id uint) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (s *userService) UpdateProfile(id uint, update ProfileUpdate) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		if strings.TrimSpace(*update.FirstName) == "" {
			return nil, ErrMissingFields
		}
		user.FirstName = strings.TrimSpace(*update.FirstName)
	}
	if update.LastName != nil {
		if strings.TrimSpace(*update.LastName) == "" {
			return nil, ErrMissingFields
		}
		user.LastName = strings.TrimSpace(*update.LastName)
	}
	setIfPresent(&user.Username, update.Username)
	setIfPresent(&user.Bio, update.Bio)
	setIfPresent(&user.Age, update.Age)
	setIfPresent(&user.ImageURL, update.ImageURL)

	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	user.Password = ""
	return user, nil
}

func (s *userService) UploadProfileImage(ctx context.Context, id uint, filename string, image io.Reader) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	link, err := s.uploader.Upload(ctx, filename, image)
	if err != nil {
		return nil, err
	}
	user.ImageURL = link
	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, fmt.Errorf("update profile image: %w", err)
	}
	user.Password = ""
	return user, nil
}

func (s *userService) DeleteAccount(id uint) error {
	if err := s.userRepo.DeleteUserWithData(id); err != nil {
		return err
	}
	utilities.Info("deleted account %d", id)
	return nil
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
