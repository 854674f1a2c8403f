package services

import "time"

// WeekEndingAt returns the seven calendar days ending at asOf (inclusive),
// oldest first, each normalized to midnight in the location.
func WeekEndingAt(asOf time.Time, location *time.Location) []time.Time {
	end := DateAtLocation(asOf, location)
	days := make([]time.Time, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		days = append(days, end.AddDate(0, 0, -offset))
	}
	return days
}

// WeekdayLabels renders short weekday abbreviations for the given days.
func WeekdayLabels(days []time.Time) []string {
	labels := make([]string, 0, len(days))
	for _, day := range days {
		labels = append(labels, day.Format("Mon"))
	}
	return labels
}
