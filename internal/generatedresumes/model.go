// Package generatedresumes renders resume documents to PDF and keeps a record of each file produced.
package generatedresumes

import "time"

// GeneratedResume is a rendered resume kept in the object store.
type GeneratedResume struct {
	ID         string     `json:"id"`
	SessionID  string     `json:"-"`
	OwnerName  string     `json:"ownerName"`
	StorageKey string     `json:"-"`
	MimeType   string     `json:"mimeType"`
	SizeBytes  int64      `json:"sizeBytes"`
	CreatedAt  time.Time  `json:"createdAt"`
	DeletedAt  *time.Time `json:"-"`
}
