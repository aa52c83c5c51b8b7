package pomodoro

// Storage settings shared with the SQLite store.
const (
	Table         = "pomodoros"
	DateFormat    = "2006-01-02 15:04:05"
	DateDayFormat = "2006-01-02"
)
