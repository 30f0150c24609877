package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingExecer struct {
	executed []string
	err      error
}

func (r *recordingExecer) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	if r.err != nil {
		return pgconn.CommandTag{}, r.err
	}
	r.executed = append(r.executed, sql)
	return pgconn.CommandTag{}, nil
}

func writeMigration(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestApplyMigrationsLexicalOrder(t *testing.T) {
	dir := t.TempDir()
	// Created out of order on purpose; only the filename decides ordering.
	writeMigration(t, dir, "002_dishes.sql", "CREATE TABLE dishes;")
	writeMigration(t, dir, "010_images.sql", "CREATE TABLE dish_images;")
	writeMigration(t, dir, "001_employees.sql", "CREATE TABLE employees;")

	db := &recordingExecer{}
	require.NoError(t, applyMigrations(context.Background(), db, dir, zap.NewNop()))

	assert.Equal(t, []string{
		"CREATE TABLE employees;",
		"CREATE TABLE dishes;",
		"CREATE TABLE dish_images;",
	}, db.executed)
}

func TestApplyMigrationsSkipsNonSQLEntries(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "001_employees.sql", "CREATE TABLE employees;")
	writeMigration(t, dir, "README.md", "not a migration")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))
	writeMigration(t, filepath.Join(dir, "archive"), "000_old.sql", "DROP TABLE employees;")

	db := &recordingExecer{}
	require.NoError(t, applyMigrations(context.Background(), db, dir, zap.NewNop()))

	assert.Equal(t, []string{"CREATE TABLE employees;"}, db.executed)
}

func TestApplyMigrationsExecError(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "001_employees.sql", "CREATE TABLE employees;")

	db := &recordingExecer{err: errors.New("syntax error")}
	err := applyMigrations(context.Background(), db, dir, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_employees.sql")
}

func TestApplyMigrationsMissingDir(t *testing.T) {
	db := &recordingExecer{}
	err := applyMigrations(context.Background(), db, filepath.Join(t.TempDir(), "absent"), zap.NewNop())
	require.Error(t, err)
}

func TestRunMigrationsNilPool(t *testing.T) {
	require.NoError(t, RunMigrations(context.Background(), nil, zap.NewNop()))
}
