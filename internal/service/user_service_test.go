package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serenity-backend/internal/model"
)

func seedUser(t *testing.T, repo *fakeUserRepo) *model.User {
	t.Helper()
	u := &model.User{FirstName: "Ana", LastName: "Silva", Email: "ana@example.com", Password: "hash"}
	require.NoError(t, repo.CreateUser(u))
	return u
}

func strPtr(s string) *string { return &s }

func TestUpdateProfile(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo)
	svc := NewUserService(repo, &fakeUploader{})

	got, err := svc.UpdateProfile(u.ID, ProfileUpdate{Username: strPtr(" ana_s "), Bio: strPtr("likes tea"), Age: strPtr("29")})
	require.NoError(t, err)
	assert.Equal(t, "ana_s", got.Username)
	assert.Equal(t, "likes tea", got.Bio)
	assert.Equal(t, "29", got.Age)
	assert.Equal(t, "Ana", got.FirstName, "untouched fields are kept")
	assert.Empty(t, got.Password)

	_, err = svc.UpdateProfile(u.ID, ProfileUpdate{FirstName: strPtr(" ")})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.UpdateProfile(99, ProfileUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUploadProfileImage(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo)
	up := &fakeUploader{link: "https://i.imgur.com/a.png"}
	svc := NewUserService(repo, up)

	got, err := svc.UploadProfileImage(context.Background(), u.ID, "me.png", strings.NewReader("img"))
	require.NoError(t, err)
	assert.Equal(t, "https://i.imgur.com/a.png", got.ImageURL)
	assert.Equal(t, "me.png:img", up.got)

	stored, _ := repo.GetUserByID(u.ID)
	assert.Equal(t, "https://i.imgur.com/a.png", stored.ImageURL)

	up.err = errors.New("imgur down")
	_, err = svc.UploadProfileImage(context.Background(), u.ID, "me.png", strings.NewReader("img"))
	assert.Error(t, err)
}

func TestDeleteAccount(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo)
	svc := NewUserService(repo, &fakeUploader{})

	require.NoError(t, svc.DeleteAccount(u.ID))
	_, err := svc.GetProfile(u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.DeleteAccount(u.ID), ErrNotFound)
}
