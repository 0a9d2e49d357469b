package service

import "time"

// streakDateLayout is the calendar-date form stored on the user row.
const streakDateLayout = "2006-01-02"

// NextStreak derives the streak state after a shelf update happening on the
// calendar day of "today". It is pure; persisting the result is the caller's
// job.
//
//   - same day as lastDate: nothing changes (changed is false)
//   - lastDate was exactly yesterday: the streak extends by one
//   - any gap, or no prior date: the streak restarts at 1
//
// Dates are taken from the server clock, not the user's timezone.
func NextStreak(current int, lastDate string, today time.Time) (streak int, date string, changed bool) {
	todayStr := today.Format(streakDateLayout)
	if lastDate == todayStr {
		return current, lastDate, false
	}

	yesterday := today.AddDate(0, 0, -1).Format(streakDateLayout)
	if lastDate == yesterday {
		return current + 1, todayStr, true
	}

	return 1, todayStr, true
}
