package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/models"
)

var testRetryDelays = []time.Duration{time.Millisecond, time.Millisecond}

// newMockDB returns a PostgreSQL flavoured DB on top of sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := newDB(conn, config.DriverPostgres, NewPostgresErrorClassifier(), logger.Nop())
	db.retryDelays = testRetryDelays
	return db, mock
}

// newSQLiteDB opens a private in-memory SQLite database with the schema
// applied.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	ctx := context.Background()
	db, err := NewConnectSQLite(ctx, config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(ctx))
	db.retryDelays = testRetryDelays
	return db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func seedUser(t *testing.T, db *DB, email string) int64 {
	t.Helper()

	now := time.Now().UTC()
	user, err := NewUserRepository(db, logger.Nop()).CreateUser(context.Background(), models.User{
		Email:        email,
		PasswordHash: "hash",
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	return user.UserID
}

func newTestReport(userID int64, name string, createdAt time.Time) models.Report {
	return models.Report{
		UserID:           userID,
		Name:             name,
		Type:             "pdf",
		ArtifactLocation: "loc/" + name,
		Status:           models.StatusUploaded,
		ReportDate:       models.NewDate(2024, time.January, 15),
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
	}
}
