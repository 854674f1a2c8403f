package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/terraincognita07/tally/internal/models"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type HabitStore interface {
	ListByUser(userID uint) ([]models.Habit, error)
	FindByID(habitID uint) (models.Habit, bool, error)
	ExistsByUserAndName(userID uint, name string) (bool, error)
	Create(habit *models.Habit) error
	DeleteWithCheckIns(habitID uint) error
}

type HabitService struct {
	habits HabitStore
}

func NewHabitService(habits HabitStore) *HabitService {
	return &HabitService{habits: habits}
}

func (service *HabitService) List(userID uint) ([]models.Habit, error) {
	return service.habits.ListByUser(userID)
}

// Create inserts a habit for the account. The (user, name) unique index is
// the backstop for concurrent creates with the same name, so an insert
// failure after the existence check still reports ErrHabitExists.
func (service *HabitService) Create(userID uint, name string, color string, now time.Time) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, ErrHabitNameRequired
	}

	color = strings.TrimSpace(color)
	if !hexColorPattern.MatchString(color) {
		color = models.DefaultHabitColor
	}

	exists, err := service.habits.ExistsByUserAndName(userID, name)
	if err != nil {
		return models.Habit{}, err
	}
	if exists {
		return models.Habit{}, ErrHabitExists
	}

	habit := models.Habit{
		UserID:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: now,
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, ErrHabitExists
	}
	return habit, nil
}

// RequireOwned loads a habit and verifies it belongs to the account.
func (service *HabitService) RequireOwned(userID uint, habitID uint) (models.Habit, error) {
	habit, found, err := service.habits.FindByID(habitID)
	if err != nil {
		return models.Habit{}, err
	}
	if !found {
		return models.Habit{}, ErrHabitNotFound
	}
	if habit.UserID != userID {
		return models.Habit{}, ErrNotHabitOwner
	}
	return habit, nil
}

func (service *HabitService) Delete(userID uint, habitID uint) error {
	habit, err := service.RequireOwned(userID, habitID)
	if err != nil {
		return err
	}
	return service.habits.DeleteWithCheckIns(habit.ID)
}
