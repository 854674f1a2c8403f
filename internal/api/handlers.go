package api

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/terraincognita07/tally/internal/db"
	"github.com/terraincognita07/tally/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}

	repositories := db.NewRepositories(database)

	funcMap := template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"hasCheck": func(checked map[uint]map[string]bool, habitID uint, date string) bool {
			return checked[habitID][date]
		},
		"streakOf": func(streaks map[uint]int, habitID uint) int {
			return streaks[habitID]
		},
		"isActiveRoute": func(currentPath string, route string) bool {
			if route == "/" {
				return currentPath == "/"
			}
			return currentPath == route
		},
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"login",
		"signup",
		"dashboard",
		"habits",
		"analytics",
	}
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	handler := &Handler{
		db:              database,
		repositories:    repositories,
		authService:     services.NewAuthService(repositories.Users),
		habitService:    services.NewHabitService(repositories.Habits),
		checkInService:  services.NewCheckInService(repositories.CheckIns, repositories.Habits),
		settingsService: services.NewSettingsService(repositories.Users),
		secretKey:       []byte(secret),
		location:        location,
		cookieSecure:    cookieSecure,
		templates:       templates,
	}
	return handler, nil
}
