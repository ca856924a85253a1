package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motorent-api/apperrors"
	"motorent-api/models"
)

type fakeAccountStore struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (f *fakeAccountStore) Create(user *models.User) error {
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeAccountStore) GetByID(id string) (*models.User, error) {
	return f.byID[id], nil
}

func (f *fakeAccountStore) GetByEmail(email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeAccountStore) UpdateCNHPhoto(id, objectName string) error {
	if user, ok := f.byID[id]; ok {
		user.CNHPhotoURL = &objectName
	}
	return nil
}

func TestRegisterUser(t *testing.T) {
	store := newFakeAccountStore()
	service := NewUserService(store)

	user, err := service.RegisterUser(RegisterUserInput{
		Name:     "Rider One",
		Email:    "one@example.com",
		Password: "secret123",
		CNHType:  strPtr("A"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")

	_, err = service.RegisterUser(RegisterUserInput{
		Name:     "Impostor",
		Email:    "one@example.com",
		Password: "other456",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthenticate(t *testing.T) {
	store := newFakeAccountStore()
	service := NewUserService(store)

	_, err := service.RegisterUser(RegisterUserInput{
		Name:     "Rider One",
		Email:    "one@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	user, ok := service.Authenticate("one@example.com", "secret123")
	require.True(t, ok)
	assert.Equal(t, "one@example.com", user.Email)

	_, ok = service.Authenticate("one@example.com", "wrong")
	assert.False(t, ok)

	_, ok = service.Authenticate("ghost@example.com", "secret123")
	assert.False(t, ok)
}
