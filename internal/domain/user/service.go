// internal/domain/user/service.go
package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/pkg/apperror"
	"github.com/your-org/restaurant-backend/internal/pkg/auth"
)

// Service handles account profile logic
type Service struct {
	db        *gorm.DB
	config    *config.Config
	passwords *auth.PasswordManager
}

// NewService creates a new user service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:        db,
		config:    cfg,
		passwords: auth.NewPasswordManager(cfg),
	}
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	RestaurantName string `json:"restaurant_name,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// ChangePasswordRequest represents a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// GetProfile retrieves the account's profile
func (s *Service) GetProfile(userID uint) (*User, error) {
	var u User
	if err := s.db.First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("user", userID)
		}
		return nil, apperror.NewPersistence("get user", err)
	}
	return &u, nil
}

// UpdateProfile updates the account's profile fields
func (s *Service) UpdateProfile(userID uint, req *UpdateProfileRequest) (*User, error) {
	u, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		u.FirstName = req.FirstName
	}
	if req.LastName != "" {
		u.LastName = req.LastName
	}
	if req.RestaurantName != "" {
		u.RestaurantName = req.RestaurantName
	}
	if req.Phone != "" {
		u.Phone = req.Phone
	}

	if err := s.db.Save(u).Error; err != nil {
		return nil, apperror.NewPersistence("update user", err)
	}
	return u, nil
}

// ChangePassword verifies the current password and stores a new hash
func (s *Service) ChangePassword(userID uint, req *ChangePasswordRequest) error {
	u, err := s.GetProfile(userID)
	if err != nil {
		return err
	}

	if err := s.passwords.VerifyPassword(req.CurrentPassword, u.Password); err != nil {
		return apperror.NewValidation("current_password", "current password is incorrect")
	}

	hash, err := s.passwords.HashPassword(req.NewPassword)
	if err != nil {
		return apperror.NewValidation("new_password", err.Error())
	}

	if err := s.db.Model(u).Update("password", hash).Error; err != nil {
		return apperror.NewPersistence("update password", err)
	}
	return nil
}
