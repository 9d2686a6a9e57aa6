package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/lenscard/internal/db"
	"github.com/templui/lenscard/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conn, err := db.Init("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(conn) })
	require.NoError(t, db.RunMigrations(context.Background(), conn.DB, "sqlite"))
	return conn
}

func TestSnapshotCreateAssignsIDAndTimestamp(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))

	s := &model.Snapshot{ProfileID: "0x01", Handle: "stani.lens", Theme: "dark", StoragePath: "cards/stani.lens/dark-x.html", URL: "https://cdn/x"}
	require.NoError(t, repo.Create(s))

	assert.NotEmpty(t, s.ID)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestSnapshotLatestOrdersNewestFirst(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, handle := range []string{"a.lens", "b.lens", "c.lens"} {
		require.NoError(t, repo.Create(&model.Snapshot{
			ProfileID: "0x0" + handle[:1],
			Handle:    handle,
			Theme:     "default",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	got, err := repo.Latest(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c.lens", got[0].Handle)
	assert.Equal(t, "b.lens", got[1].Handle)
}

func TestSnapshotByHandle(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))
	require.NoError(t, repo.Create(&model.Snapshot{Handle: "a.lens", Theme: "default"}))
	require.NoError(t, repo.Create(&model.Snapshot{Handle: "b.lens", Theme: "dark"}))

	got, err := repo.ByHandle("b.lens")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "dark", got[0].Theme)

	none, err := repo.ByHandle("zzz.lens")
	require.NoError(t, err)
	assert.Empty(t, none)
}
