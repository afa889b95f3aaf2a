package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

func TestNewBoardDefaults(t *testing.T) {
	params, err := NewBoardDefaults()
	require.NoError(t, err)
	assert.Equal(t, mines.DefaultParams, params)

	t.Setenv("MINES_WIDTH", "30")
	t.Setenv("MINES_HEIGHT", "16")
	t.Setenv("MINES_COUNT", "99")
	params, err = NewBoardDefaults()
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 30, Height: 16, MineCount: 99}, params)

	t.Setenv("MINES_COUNT", "1000")
	_, err = NewBoardDefaults()
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)

	t.Setenv("MINES_COUNT", "many")
	_, err = NewBoardDefaults()
	assert.ErrorContains(t, err, "MINES_COUNT")
}

func TestDbURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")
	t.Setenv("POSTGRES_USER", "ledger")
	t.Setenv("POSTGRES_PASSWORD", "p@ss word")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_DB", "checkbook")

	url, err := DbURL()
	require.NoError(t, err)
	assert.Equal(t, "postgresql://ledger:p%40ss+word@db:5432/checkbook?sslmode=disable", url)

	t.Setenv("DATABASE_URL", "postgres://elsewhere/db")
	url, err = DbURL()
	require.NoError(t, err)
	assert.Equal(t, "postgres://elsewhere/db", url)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CHECKBOOK_DB=from-file.db\n"), 0o600))

	t.Setenv("CHECKBOOK_DB", "")
	os.Unsetenv("CHECKBOOK_DB")
	t.Cleanup(func() { os.Unsetenv("CHECKBOOK_DB") })

	require.NoError(t, LoadEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-file.db", SQLitePath())
}

func TestAddr(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	assert.Equal(t, ":8080", Addr())
	t.Setenv("APP_ADDR", ":9000")
	assert.Equal(t, ":9000", Addr())
}

func TestCorsOrigins(t *testing.T) {
	t.Setenv("APP_CORS_ORIGINS", "")
	assert.Empty(t, CorsOrigins())
	t.Setenv("APP_CORS_ORIGINS", "http://a.local, http://b.local,,")
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, CorsOrigins())
}

func TestSessionTTL(t *testing.T) {
	t.Setenv("SESSION_TTL_MIN", "")
	ttl, err := SessionTTL()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, ttl)

	t.Setenv("SESSION_TTL_MIN", "5")
	ttl, err = SessionTTL()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, ttl)
}

func TestMaxCells(t *testing.T) {
	t.Setenv("MINES_MAX_CELLS", "")
	maxCells, err := MaxCells()
	require.NoError(t, err)
	assert.Equal(t, 1<<20, maxCells)

	t.Setenv("MINES_MAX_CELLS", "400")
	maxCells, err = MaxCells()
	require.NoError(t, err)
	assert.Equal(t, 400, maxCells)

	t.Setenv("MINES_MAX_CELLS", "0")
	_, err = MaxCells()
	assert.ErrorContains(t, err, "MINES_MAX_CELLS")
}
