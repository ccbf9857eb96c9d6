package entity

import "time"

// User is a registered exercise tracker user.
type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
}

// Exercise is a single entry of a user's exercise log.
type Exercise struct {
	ID          int64
	UserID      string
	Description string
	Duration    float64
	Date        time.Time
	CreatedAt   time.Time
}

// LogFilter narrows a user's exercise log to an inclusive date range.
// A zero Limit means no limit.
type LogFilter struct {
	From  time.Time
	To    time.Time
	Limit int
}

// ExerciseLog is the filtered exercise log of a user.
type ExerciseLog struct {
	User
	Log []Exercise
}

// Count returns the number of entries in the log.
func (l *ExerciseLog) Count() int {
	return len(l.Log)
}
