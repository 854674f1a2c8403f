package services

import "time"

// CalendarCell is one day of the week-major month grid.
type CalendarCell struct {
	Date       time.Time
	DateString string
	Day        int
	InMonth    bool
	Checked    bool
	IsToday    bool
}

// MonthGridBounds returns the first day shown for the month and the
// exclusive end of the grid. The grid covers full Sunday-start weeks, so it
// includes trailing days of the previous month and leading days of the next.
func MonthGridBounds(year int, month time.Month, location *time.Location) (time.Time, time.Time) {
	if location == nil {
		location = time.UTC
	}
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, location)
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))
	return gridStart, gridEnd.AddDate(0, 0, 1)
}

// BuildMonthGrid assembles the week-major grid for the month. checked is
// keyed by "2006-01-02" date strings. Rows are weeks of exactly seven
// cells; the row count follows how many weeks the month spans.
func BuildMonthGrid(year int, month time.Month, checked map[string]bool, now time.Time, location *time.Location) [][]CalendarCell {
	if location == nil {
		location = time.UTC
	}
	gridStart, gridEndExclusive := MonthGridBounds(year, month, location)
	todayKey := DateAtLocation(now, location).Format("2006-01-02")

	weeks := make([][]CalendarCell, 0, 6)
	week := make([]CalendarCell, 0, 7)
	for day := gridStart; day.Before(gridEndExclusive); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		week = append(week, CalendarCell{
			Date:       day,
			DateString: key,
			Day:        day.Day(),
			InMonth:    day.Month() == month,
			Checked:    checked[key],
			IsToday:    key == todayKey,
		})
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]CalendarCell, 0, 7)
		}
	}

	return weeks
}
