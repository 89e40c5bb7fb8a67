package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"melodee/internal/models"
	"melodee/internal/utils"
)

// ErrInvalidCredentials is returned for any failed login. The same error
// covers unknown users and wrong passwords to prevent username enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUserLocked is returned when a locked account presents valid credentials.
var ErrUserLocked = errors.New("user account is locked")

// AuthService verifies user credentials against stored bcrypt digests.
type AuthService struct {
	db *gorm.DB
}

// NewAuthService creates a new auth service
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Login authenticates a user by name and password. On success it stamps
// LastLoginAt and LastActivityAt and returns the user.
func (a *AuthService) Login(ctx context.Context, userName, password string) (*models.User, error) {
	var user models.User
	err := a.db.WithContext(ctx).
		Where("user_name_normalized = ?", utils.NormalizeName(userName)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.CheckPasswordHash(password, user.PasswordEncrypted); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.IsLocked {
		return nil, ErrUserLocked
	}

	now := time.Now().UTC()
	err = a.db.WithContext(ctx).Model(&user).Updates(map[string]any{
		"last_login_at":    &now,
		"last_activity_at": &now,
	}).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// SetPassword replaces a user's password digest after validating the new
// password against the security requirements.
func (a *AuthService) SetPassword(ctx context.Context, userID int32, password string) error {
	if err := utils.ValidatePassword(password); err != nil {
		return err
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	return a.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"password_encrypted": hash,
			"last_updated_at":    &now,
		}).Error
}

// TouchActivity stamps a user's LastActivityAt.
func (a *AuthService) TouchActivity(ctx context.Context, userID int32) error {
	now := time.Now().UTC()
	return a.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("last_activity_at", &now).Error
}
