package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/tally/internal/models"
)

func newCheckInServiceFixture(t *testing.T) (*CheckInService, *fakeHabitStore, *fakeCheckInStore, models.Habit) {
	t.Helper()

	habits := newFakeHabitStore()
	checkIns := newFakeCheckInStore()

	habit := models.Habit{UserID: 1, Name: "Read", Color: models.DefaultHabitColor, CreatedAt: time.Now()}
	if err := habits.Create(&habit); err != nil {
		t.Fatalf("create habit: %v", err)
	}
	checkIns.owners[habit.ID] = habit.UserID

	return NewCheckInService(checkIns, habits), habits, checkIns, habit
}

func TestStreakZeroWithoutCheckIns(t *testing.T) {
	service, _, _, habit := newCheckInServiceFixture(t)

	streak, err := service.StreakForHabit(habit.ID, time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC), time.UTC)
	if err != nil {
		t.Fatalf("streak: %v", err)
	}
	if streak != 0 {
		t.Fatalf("expected streak 0, got %d", streak)
	}
}

func TestStreakCountsConsecutiveDaysEndingAtAsOf(t *testing.T) {
	service, _, checkIns, habit := newCheckInServiceFixture(t)

	asOf := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	for offset := 0; offset < 4; offset++ {
		checkIns.check(habit.ID, asOf.AddDate(0, 0, -offset).Format("2006-01-02"))
	}
	// an older run separated by a gap must not count
	checkIns.check(habit.ID, "2024-02-10")
	checkIns.check(habit.ID, "2024-02-09")

	streak, err := service.StreakForHabit(habit.ID, asOf, time.UTC)
	if err != nil {
		t.Fatalf("streak: %v", err)
	}
	if streak != 4 {
		t.Fatalf("expected streak 4, got %d", streak)
	}
}

func TestStreakZeroWhenAsOfDayUnchecked(t *testing.T) {
	service, _, checkIns, habit := newCheckInServiceFixture(t)

	checkIns.check(habit.ID, "2024-02-14")
	checkIns.check(habit.ID, "2024-02-13")

	streak, err := service.StreakForHabit(habit.ID, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), time.UTC)
	if err != nil {
		t.Fatalf("streak: %v", err)
	}
	if streak != 0 {
		t.Fatalf("expected streak 0 after a gap on asOf, got %d", streak)
	}
}

func TestToggleIsIdempotentInverse(t *testing.T) {
	service, _, checkIns, habit := newCheckInServiceFixture(t)
	day := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	checked, err := service.Toggle(habit.UserID, habit.ID, day, time.UTC)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !checked {
		t.Fatalf("expected first toggle to check")
	}
	if !checkIns.days[habit.ID]["2024-02-15"] {
		t.Fatalf("expected stored check-in after first toggle")
	}

	checked, err = service.Toggle(habit.UserID, habit.ID, day, time.UTC)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if checked {
		t.Fatalf("expected second toggle to uncheck")
	}
	if checkIns.days[habit.ID]["2024-02-15"] {
		t.Fatalf("expected check-in removed after second toggle")
	}
}

func TestToggleRejectsUnknownAndForeignHabits(t *testing.T) {
	service, _, _, habit := newCheckInServiceFixture(t)
	day := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	if _, err := service.Toggle(habit.UserID, habit.ID+100, day, time.UTC); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
	if _, err := service.Toggle(habit.UserID+1, habit.ID, day, time.UTC); !errors.Is(err, ErrNotHabitOwner) {
		t.Fatalf("expected ErrNotHabitOwner, got %v", err)
	}
}

func TestStreakForUserEnforcesOwnership(t *testing.T) {
	service, _, _, habit := newCheckInServiceFixture(t)
	asOf := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	if _, err := service.StreakForUser(habit.UserID, habit.ID+100, asOf, time.UTC); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
	if _, err := service.StreakForUser(habit.UserID+1, habit.ID, asOf, time.UTC); !errors.Is(err, ErrNotHabitOwner) {
		t.Fatalf("expected ErrNotHabitOwner, got %v", err)
	}
}

func TestMonthGridForUserMarksCheckedCells(t *testing.T) {
	service, _, checkIns, habit := newCheckInServiceFixture(t)
	checkIns.check(habit.ID, "2024-02-01")
	checkIns.check(habit.ID, "2024-02-29")

	now := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	weeks, err := service.MonthGridForUser(habit.UserID, habit.ID, 2024, time.February, now, time.UTC)
	if err != nil {
		t.Fatalf("month grid: %v", err)
	}

	checkedDates := make(map[string]bool)
	for _, week := range weeks {
		for _, cell := range week {
			if cell.Checked {
				checkedDates[cell.DateString] = true
			}
		}
	}
	if len(checkedDates) != 2 || !checkedDates["2024-02-01"] || !checkedDates["2024-02-29"] {
		t.Fatalf("unexpected checked dates: %v", checkedDates)
	}
}

func TestWeeklyCountsSumMatchesWindowTotal(t *testing.T) {
	service, habits, checkIns, habit := newCheckInServiceFixture(t)

	second := models.Habit{UserID: habit.UserID, Name: "Run", Color: models.DefaultHabitColor}
	if err := habits.Create(&second); err != nil {
		t.Fatalf("create habit: %v", err)
	}
	checkIns.owners[second.ID] = second.UserID

	asOf := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	checkIns.check(habit.ID, "2024-02-15")
	checkIns.check(habit.ID, "2024-02-13")
	checkIns.check(second.ID, "2024-02-13")
	checkIns.check(second.ID, "2024-02-09")
	// outside the window, must not count
	checkIns.check(habit.ID, "2024-02-08")

	counts, err := service.WeeklyCounts(habit.UserID, asOf, time.UTC)
	if err != nil {
		t.Fatalf("weekly counts: %v", err)
	}
	if len(counts) != 7 {
		t.Fatalf("expected 7 counts, got %d", len(counts))
	}

	total := 0
	for _, count := range counts {
		if count < 0 {
			t.Fatalf("negative count %d", count)
		}
		total += count
	}
	if total != 4 {
		t.Fatalf("expected window total 4, got %d", total)
	}
	if counts[6] != 1 || counts[4] != 2 || counts[0] != 1 {
		t.Fatalf("unexpected per-day counts: %v", counts)
	}
}
