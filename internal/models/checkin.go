package models

import "time"

// CheckIn records that a habit was done on a calendar day. Existence of the
// row means "done"; toggling off deletes the row outright.
type CheckIn struct {
	ID      uint      `gorm:"primaryKey"`
	HabitID uint      `gorm:"not null;uniqueIndex:uidx_habit_checkin_date"`
	Date    time.Time `gorm:"type:date;not null;uniqueIndex:uidx_habit_checkin_date"`
}
