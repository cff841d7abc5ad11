package services

import (
	"fmt"

	"infohub/internal/apperrors"
	"infohub/internal/auth"
	"infohub/internal/models"
	"infohub/internal/repositories"
	"infohub/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles registration and credential checks.
type UserService struct {
	users repositories.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{users: repositories.NewUserRepository(db)}
}

// Register creates an account. The first account ever created is
// promoted to admin; the returned flag reports that promotion.
func (s *UserService) Register(username, email, password string) (*models.User, bool, error) {
	if username == "" || password == "" {
		return nil, false, fmt.Errorf("%w: username and password are required", apperrors.ErrValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, false, err
	}

	adminExists, err := s.users.AdminExists()
	if err != nil {
		return nil, false, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      !adminExists,
	}
	if email != "" {
		user.Email = &email
	}

	if err := s.users.Create(user); err != nil {
		return nil, false, err
	}

	logger.Log.Info().
		Str("username", username).
		Bool("admin", user.IsAdmin).
		Msg("registered new user")

	return user, user.IsAdmin, nil
}

// Login verifies credentials and returns the account. Both an unknown
// username and a wrong password map to the same error so the response
// does not reveal which half was wrong.
func (s *UserService) Login(username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// Get returns the account for an ID.
func (s *UserService) Get(id uuid.UUID) (*models.User, error) {
	return s.users.FindByID(id)
}
