package attendance

import "time"

// WeeklyOff reports whether date falls on a statutory weekly-off day and,
// when it does, the annotation stored on stamped records. Sundays are
// always off; so are the 1st and 3rd Saturdays of each month.
func WeeklyOff(date time.Time) (bool, string) {
	switch date.Weekday() {
	case time.Sunday:
		return true, "Sunday"
	case time.Saturday:
		first := firstSaturday(date.Year(), date.Month())
		switch date.Day() {
		case first:
			return true, "1st Saturday"
		case first + 14:
			return true, "3rd Saturday"
		}
	}
	return false, ""
}

// firstSaturday returns the day-of-month of the first Saturday.
func firstSaturday(year int, month time.Month) int {
	weekday := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(time.Saturday)-int(weekday)+7)%7 + 1
}
