package model

import "time"

// Snapshot is a published, static rendering of a profile card.
type Snapshot struct {
	ID          string    `db:"id"`
	ProfileID   string    `db:"profile_id"`
	Handle      string    `db:"handle"`
	Theme       string    `db:"theme"`
	StoragePath string    `db:"storage_path"` // Object key in the snapshot bucket
	URL         string    `db:"url"`
	CreatedAt   time.Time `db:"created_at"`
}
