package entity

import "time"

// ShortURL maps a sequential integer code to the original URL.
type ShortURL struct {
	ID          int64     // ID is the unique identifier of the record in the database.
	OriginalURL string    // OriginalURL is the full URL the code redirects to.
	ShortURL    int64     // ShortURL is the sequential code assigned to the URL.
	CreatedAt   time.Time // CreatedAt is the timestamp when the record was created.
}
