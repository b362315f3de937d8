package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ruimv/tribunal-backend/internal/database"
	"gorm.io/gorm"
)

var (
	// ErrUsernameTaken is returned when the username is already registered
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidRole is returned for roles outside the known enumeration
	ErrInvalidRole = errors.New("invalid role")
	// ErrNotFound is returned when no active user matches the username
	ErrNotFound = errors.New("user not found or inactive")
	// ErrBadPassword is returned when the password does not match the stored hash
	ErrBadPassword = errors.New("incorrect password")
)

// Service implements user registration, authentication and profile updates
type Service struct {
	db *gorm.DB
}

// NewService creates a credential service backed by the given database
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Register creates a new user with an irreversibly hashed password.
// An empty role defaults to citizen. Username and email must be unique;
// the unique indexes on users back up these checks under concurrent registration.
func (s *Service) Register(username, email, password, role string) (*database.User, error) {
	if role == "" {
		role = database.RoleCitizen
	}
	if !database.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	var count int64
	if err := s.db.Model(&database.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	if err := s.db.Model(&database.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &database.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}

	if err := s.db.Create(user).Error; err != nil {
		// Two requests can pass the application checks at once; the
		// unique index decides the race.
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "email") {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies a username/password pair against the stored hash.
// Inactive and unknown users fail identically with ErrNotFound.
func (s *Service) Authenticate(username, password string) (*database.User, error) {
	var user database.User
	err := s.db.Where("username = ? AND is_active = ?", username, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := CheckPassword(user.PasswordHash, password); err != nil {
		return nil, ErrBadPassword
	}

	return &user, nil
}

// GetByID loads a user by primary key
func (s *Service) GetByID(id uint) (*database.User, error) {
	var user database.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// UpdateProfile changes the user's email and/or password. An email change
// fails with ErrEmailTaken if another user already owns the address.
// The update runs in a transaction and rolls back on any failure.
func (s *Service) UpdateProfile(user *database.User, email, password string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if email != "" && email != user.Email {
			var count int64
			if err := tx.Model(&database.User{}).
				Where("email = ? AND id <> ?", email, user.ID).
				Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check email: %w", err)
			}
			if count > 0 {
				return ErrEmailTaken
			}
			user.Email = email
		}

		if password != "" {
			hash, err := HashPassword(password)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
		}

		if err := tx.Save(user).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrEmailTaken
			}
			return fmt.Errorf("failed to update user: %w", err)
		}
		return nil
	})
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
