package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/templui/lenscard/internal/model"
)

type SnapshotRepository interface {
	Create(snapshot *model.Snapshot) error
	Latest(limit int) ([]model.Snapshot, error)
	ByHandle(handle string) ([]model.Snapshot, error)
}

type snapshotRepository struct {
	db *sqlx.DB
}

func NewSnapshotRepository(db *sqlx.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Create(snapshot *model.Snapshot) error {
	if snapshot.ID == "" {
		snapshot.ID = uuid.New().String()
	}
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO snapshots (id, profile_id, handle, theme, storage_path, url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(query,
		snapshot.ID,
		snapshot.ProfileID,
		snapshot.Handle,
		snapshot.Theme,
		snapshot.StoragePath,
		snapshot.URL,
		snapshot.CreatedAt,
	)
	return err
}

func (r *snapshotRepository) Latest(limit int) ([]model.Snapshot, error) {
	snapshots := []model.Snapshot{}
	query := `
		SELECT id, profile_id, handle, theme, storage_path, url, created_at
		FROM snapshots
		ORDER BY created_at DESC
		LIMIT $1
	`
	err := r.db.Select(&snapshots, query, limit)
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (r *snapshotRepository) ByHandle(handle string) ([]model.Snapshot, error) {
	snapshots := []model.Snapshot{}
	query := `
		SELECT id, profile_id, handle, theme, storage_path, url, created_at
		FROM snapshots
		WHERE handle = $1
		ORDER BY created_at DESC
	`
	err := r.db.Select(&snapshots, query, handle)
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}
