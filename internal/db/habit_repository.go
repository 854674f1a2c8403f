package db

import (
	"github.com/terraincognita07/tally/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) ListByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) FindByID(habitID uint) (models.Habit, bool, error) {
	var habit models.Habit
	result := repo.database.Where("id = ?", habitID).Limit(1).Find(&habit)
	if result.Error != nil {
		return models.Habit{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

func (repo *HabitRepository) ExistsByUserAndName(userID uint, name string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Habit{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

// DeleteWithCheckIns removes the habit and every check-in recorded for it.
// The schema declares ON DELETE CASCADE as well, but the explicit
// transactional delete keeps the cascade independent of driver pragmas.
func (repo *HabitRepository) DeleteWithCheckIns(habitID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habitID).Delete(&models.CheckIn{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Habit{}, habitID).Error
	})
}
