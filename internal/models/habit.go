package models

import "time"

// DefaultHabitColor is used when the create form omits a color.
const DefaultHabitColor = "#3b82f6"

type Habit struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_user_habit_name"`
	Name      string    `gorm:"not null;uniqueIndex:uidx_user_habit_name"`
	Color     string    `gorm:"not null;default:#3b82f6"`
	CreatedAt time.Time `gorm:"not null"`
}
