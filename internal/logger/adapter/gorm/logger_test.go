package gorm_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	adapter "github.com/uefisettings/uefisettings/internal/logger/adapter/gorm"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	previous := log.Logger
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	t.Cleanup(func() { log.Logger = previous })

	return &buf
}

func openDB(t *testing.T, l gormlogger.Interface) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: l})
	require.NoError(t, err)

	return db
}

func TestFailedStatementIsLogged(t *testing.T) {
	buf := captureLog(t)
	db := openDB(t, adapter.New(false))

	require.Error(t, db.Exec("DROP TABLE missing_table").Error)

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "sql statement failed")
	assert.Contains(t, out, "DROP TABLE missing_table")
	assert.Contains(t, out, `"component":"gorm"`)
}

func TestStatementsOnlyWithSQLLogging(t *testing.T) {
	buf := captureLog(t)

	require.NoError(t, openDB(t, adapter.New(false)).Exec("CREATE TABLE quiet (id INTEGER)").Error)
	assert.NotContains(t, buf.String(), "CREATE TABLE quiet")

	require.NoError(t, openDB(t, adapter.New(true)).Exec("CREATE TABLE loud (id INTEGER)").Error)
	assert.Contains(t, buf.String(), "CREATE TABLE loud")
	assert.Contains(t, buf.String(), `"level":"debug"`)
}

func TestSilentMode(t *testing.T) {
	buf := captureLog(t)
	db := openDB(t, adapter.New(true).LogMode(gormlogger.Silent))

	require.Error(t, db.Exec("DROP TABLE missing_table").Error)
	assert.Empty(t, buf.String())
}

func TestRecordNotFoundIsNotAnError(t *testing.T) {
	buf := captureLog(t)
	l := adapter.New(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM uefisettings", 0
	}, gormlogger.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestSlowStatement(t *testing.T) {
	buf := captureLog(t)
	l := adapter.New(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	assert.Contains(t, buf.String(), "slow sql statement")
}

func TestMessages(t *testing.T) {
	buf := captureLog(t)
	ctx := context.Background()
	l := adapter.New(false).LogMode(gormlogger.Info)

	l.Info(ctx, "hello %s", "info")
	l.Warn(ctx, "hello %s", "warn")
	l.Error(ctx, "hello %s", "error")

	out := buf.String()
	assert.Contains(t, out, "hello info")
	assert.Contains(t, out, "hello warn")
	assert.Contains(t, out, "hello error")

	buf.Reset()
	adapter.New(false).Info(ctx, "hidden")
	assert.Empty(t, buf.String(), "info is below the default warn level")
}
