//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"parking-occupancy/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the password of every operator created by CreateTestOperator.
const TestPassword = "password123"

var (
	hashOnce sync.Once
	testHash string
	hashErr  error
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		password.Cost = bcrypt.MinCost
		testHash, hashErr = password.HashPassword(TestPassword)
	})
	require.NoError(t, hashErr)
	return testHash
}

// CreateTestOperator inserts an active operator, or returns the existing one with that email.
func CreateTestOperator(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	operatorID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO operators (id, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING`,
		operatorID, email, testPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM operators WHERE email = $1", email).Scan(&operatorID))
	}

	return operatorID
}

func DeactivateOperator(t *testing.T, db DBLike, id uuid.UUID) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE operators SET is_active = false WHERE id = $1", id)
	require.NoError(t, err)
}

func CreateTestSpot(t *testing.T, db DBLike, label, class string) uuid.UUID {
	t.Helper()

	spotID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO spots (id, label, class, status) VALUES ($1, $2, $3, 'free')",
		spotID, label, class)
	require.NoError(t, err)
	return spotID
}

// CreateClosedSession inserts finished history directly, bypassing the clock.
func CreateClosedSession(t *testing.T, db DBLike, spotID uuid.UUID, label, plate string, entry, exit time.Time, amount string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO sessions
		(id, spot_id, spot_label, plate, vehicle_class, entry_time, exit_time, amount_due)
		VALUES ($1, $2, $3, $4, 'car', $5, $6, $7::numeric)`,
		id, spotID, label, plate, entry, exit, amount)
	require.NoError(t, err)
	return id
}

// SeedReferenceData inserts the default tariffs every flow depends on.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO tariffs (id, vehicle_class, first_hour_rate, additional_hour_rate, tolerance_minutes) VALUES
		    (gen_random_uuid(), 'car', 10.00, 5.00, 15),
		    (gen_random_uuid(), 'motorcycle', 5.00, 2.50, 15)
		ON CONFLICT (vehicle_class) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
