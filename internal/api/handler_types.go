package api

import (
	"html/template"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/tally/internal/db"
	"github.com/terraincognita07/tally/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db              *gorm.DB
	repositories    *db.Repositories
	authService     *services.AuthService
	habitService    *services.HabitService
	checkInService  *services.CheckInService
	settingsService *services.SettingsService
	secretKey       []byte
	location        *time.Location
	cookieSecure    bool
	templates       map[string]*template.Template
}

const (
	authCookieName  = "tally_auth"
	flashCookieName = "tally_flash"
	contextUserKey  = "current_user"

	authTokenTTL = 7 * 24 * time.Hour
)

type credentialsInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type habitInput struct {
	Name  string `json:"name" form:"name"`
	Color string `json:"color" form:"color"`
}

type toggleInput struct {
	HabitID uint   `json:"habit_id" form:"habit_id"`
	Day     string `json:"day" form:"day"`
}

type deleteAccountInput struct {
	Password string `json:"password" form:"password"`
}

type FlashPayload struct {
	AuthError    string `json:"auth_error,omitempty"`
	HabitError   string `json:"habit_error,omitempty"`
	HabitSuccess string `json:"habit_success,omitempty"`
	SignupEmail  string `json:"signup_email,omitempty"`
	LoginEmail   string `json:"login_email,omitempty"`
}

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}
