package models

import "time"

// Material describes an educational file a psychologist uploaded for a
// client. The file content itself is sealed by the blob codec and lives in
// object storage under StorageKey; the row keeps only metadata.
type Material struct {
	ID           string
	ClientID     string
	Psychologist string
	Filename     string
	ContentType  string
	SizeBytes    int64
	StorageKey   string
	UploadedAt   time.Time
}
