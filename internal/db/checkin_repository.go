package db

import (
	"time"

	"github.com/terraincognita07/tally/internal/models"
	"gorm.io/gorm"
)

type CheckInRepository struct {
	database *gorm.DB
}

func NewCheckInRepository(database *gorm.DB) *CheckInRepository {
	return &CheckInRepository{database: database}
}

// HasCheckInOnDay is the streak walk's point lookup: one indexed existence
// query per day, bounded by [dayStart, dayEnd).
func (repo *CheckInRepository) HasCheckInOnDay(habitID uint, dayStart time.Time, dayEnd time.Time) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.CheckIn{}).
		Where("habit_id = ? AND date >= ? AND date < ?", habitID, dayStart, dayEnd).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *CheckInRepository) FindByHabitAndDayRange(habitID uint, dayStart time.Time, dayEnd time.Time) (models.CheckIn, bool, error) {
	entry := models.CheckIn{}
	result := repo.database.
		Where("habit_id = ? AND date >= ? AND date < ?", habitID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.CheckIn{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CheckIn{}, false, nil
	}
	return entry, true, nil
}

func (repo *CheckInRepository) Create(entry *models.CheckIn) error {
	return repo.database.Create(entry).Error
}

func (repo *CheckInRepository) DeleteByHabitAndDayRange(habitID uint, dayStart time.Time, dayEnd time.Time) error {
	return repo.database.
		Where("habit_id = ? AND date >= ? AND date < ?", habitID, dayStart, dayEnd).
		Delete(&models.CheckIn{}).Error
}

func (repo *CheckInRepository) ListByHabitRange(habitID uint, fromStart time.Time, toEnd time.Time) ([]models.CheckIn, error) {
	entries := make([]models.CheckIn, 0)
	if err := repo.database.
		Where("habit_id = ? AND date >= ? AND date < ?", habitID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByUserRange returns every check-in across all of the user's habits
// within [fromStart, toEnd). Feeds the dashboard check map.
func (repo *CheckInRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.CheckIn, error) {
	entries := make([]models.CheckIn, 0)
	if err := repo.database.Model(&models.CheckIn{}).
		Joins("JOIN habits ON habits.id = check_ins.habit_id").
		Where("habits.user_id = ? AND check_ins.date >= ? AND check_ins.date < ?", userID, fromStart, toEnd).
		Order("check_ins.date ASC, check_ins.id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *CheckInRepository) CountForUserOnDay(userID uint, dayStart time.Time, dayEnd time.Time) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.CheckIn{}).
		Joins("JOIN habits ON habits.id = check_ins.habit_id").
		Where("habits.user_id = ? AND check_ins.date >= ? AND check_ins.date < ?", userID, dayStart, dayEnd).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
