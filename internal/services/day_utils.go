package services

import "time"

const dateLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// CalendarDay keeps the wall-clock date of value and drops everything else.
// Stored dates always use this form.
func CalendarDay(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween counts calendar days from start to end. It is negative when end
// comes first and ignores DST because both sides are moved to UTC midnight.
// Unix seconds keep the count exact for dates centuries apart, where
// time.Duration would saturate.
func DaysBetween(start time.Time, end time.Time) int {
	return int((CalendarDay(end).Unix() - CalendarDay(start).Unix()) / secondsPerDay)
}

func AddDays(value time.Time, days int) time.Time {
	return CalendarDay(value).AddDate(0, 0, days)
}

func FormatDay(value time.Time) string {
	return value.Format(dateLayout)
}

func ParseDay(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}
