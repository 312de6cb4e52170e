package entity

import "time"

// WeekEnd returns the date of the Sunday of the week containing d, with the
// time component stripped. Stories and leaderboard entries are bucketed by
// this date.
func WeekEnd(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	offset := (7 - int(day.Weekday())) % 7
	return day.AddDate(0, 0, offset)
}
