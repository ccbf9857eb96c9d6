package entity

import (
	"net/http"
	"time"
)

// Timestamp is a normalized instant in both machine and human readable forms.
type Timestamp struct {
	Unix int64  // Unix is the number of milliseconds since the epoch.
	UTC  string // UTC is the instant formatted as an HTTP date, e.g. "Fri, 25 Dec 2015 00:00:00 GMT".
}

// NewTimestamp builds a Timestamp from t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{
		Unix: t.UnixMilli(),
		UTC:  t.UTC().Format(http.TimeFormat),
	}
}
