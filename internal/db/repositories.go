package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Habits   *HabitRepository
	CheckIns *CheckInRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Habits:   NewHabitRepository(database),
		CheckIns: NewCheckInRepository(database),
	}
}
