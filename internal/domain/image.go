package domain

import "time"

// Image records an uploaded file and its public location.
type Image struct {
	ID          int64
	OwnerID     int64
	Key         string
	URL         string
	ContentType string
	SizeBytes   int64
	CreatedAt   time.Time
}
