package services

import "time"

// WeekStart returns the most recent Monday at midnight in the given location.
// Every timetable operation is scoped to the week this instant identifies, so
// callers compute it once per request and reuse it for both filters and
// freshly written records.
func WeekStart(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, location)

	daysSinceMonday := int(localized.Weekday()) - 1
	if localized.Weekday() == time.Sunday {
		daysSinceMonday = 6
	}
	return midnight.AddDate(0, 0, -daysSinceMonday)
}
