package models

import "time"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Theme        string    `gorm:"not null;default:light"`
	CreatedAt    time.Time `gorm:"not null"`
}

// NextTheme flips between the two supported themes. Anything unexpected
// in the column resolves to dark, matching a stored default of light.
func NextTheme(current string) string {
	if current == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
