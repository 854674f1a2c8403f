package services

import (
	"github.com/terraincognita07/tally/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type SettingsUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateTheme(userID uint, theme string) error
	DeleteAccountAndRelatedData(userID uint) error
}

type SettingsService struct {
	users SettingsUserRepository
}

func NewSettingsService(users SettingsUserRepository) *SettingsService {
	return &SettingsService{users: users}
}

// ToggleTheme flips the stored theme between light and dark and returns the
// persisted value.
func (service *SettingsService) ToggleTheme(userID uint) (string, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return "", err
	}

	theme := models.NextTheme(user.Theme)
	if err := service.users.UpdateTheme(userID, theme); err != nil {
		return "", err
	}
	return theme, nil
}

// DeleteAccount verifies the password and cascades: check-ins, habits, then
// the account row, all in one transaction.
func (service *SettingsService) DeleteAccount(userID uint, password string) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return service.users.DeleteAccountAndRelatedData(userID)
}
