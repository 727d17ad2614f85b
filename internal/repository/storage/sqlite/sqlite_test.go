package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Opens and initializes a fresh database", func(t *testing.T) {
		// Given: a path inside a directory that does not exist yet
		path := filepath.Join(t.TempDir(), "game_stats", "stats.db")

		// When: the storage is opened and initialized
		st, err := New(path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = st.Close() })

		// Then: the stats table exists
		require.NoError(t, st.Init(context.Background()))
		var count int
		require.NoError(t, st.Connection.QueryRow("SELECT COUNT(*) FROM stats").Scan(&count))
		assert.Equal(t, 0, count)
	})

	t.Run("Connection failure returns an error", func(t *testing.T) {
		// Given: a path that is an existing directory
		path := t.TempDir()

		// When: the storage is opened
		st, err := New(path)

		// Then: the connect error is returned and no storage is handed out
		require.ErrorContains(t, err, "can't connect to database")
		assert.Nil(t, st)
	})
}
