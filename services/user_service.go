package services

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"motorent-api/apperrors"
	"motorent-api/models"
)

type AccountStore interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateCNHPhoto(id, objectName string) error
}

type UserService struct {
	users AccountStore
}

func NewUserService(users AccountStore) *UserService {
	return &UserService{users: users}
}

type RegisterUserInput struct {
	Name      string
	Email     string
	Password  string
	CNPJ      *string
	Birthday  *string
	CNHNumber *string
	CNHType   *string
}

func (s *UserService) RegisterUser(input RegisterUserInput) (*models.User, error) {
	existing, err := s.users.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Password:  string(hashed),
		Role:      models.RoleUser,
		CNPJ:      input.CNPJ,
		Birthday:  input.Birthday,
		CNHNumber: input.CNHNumber,
		CNHType:   input.CNHType,
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials without leaking which part failed.
func (s *UserService) Authenticate(email, password string) (*models.User, bool) {
	user, err := s.users.GetByEmail(email)
	if err != nil || user == nil {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, false
	}
	return user, true
}

func (s *UserService) GetProfile(userID string) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) AttachCNHPhoto(userID, objectName string) error {
	return s.users.UpdateCNHPhoto(userID, objectName)
}
