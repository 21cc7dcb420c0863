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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestPurchase inserts one purchase row expiring six months out.
func CreateTestPurchase(t *testing.T, db DBLike, userID uuid.UUID, productType string, now time.Time) uuid.UUID {
	t.Helper()

	purchaseID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO purchases (id, user_id, product_type, session_ref, amount_cents, purchased_at, expires_at)
		VALUES ($1, $2, $3, $4, 4900, $5, $6)`,
		purchaseID, userID, productType, "cs_test_"+uuid.NewString(), now, now.AddDate(0, 6, 0))
	require.NoError(t, err)

	return purchaseID
}

// CreateTestEmailJob inserts a pending job already past its scheduled time.
func CreateTestEmailJob(t *testing.T, db DBLike, userID uuid.UUID, email, emailType string, now time.Time) uuid.UUID {
	return CreateTestEmailJobAt(t, db, userID, email, emailType, now.Add(-time.Minute))
}

// CreateTestEmailJobAt inserts a pending job with an explicit scheduled time.
func CreateTestEmailJobAt(t *testing.T, db DBLike, userID uuid.UUID, email, emailType string, scheduledFor time.Time) uuid.UUID {
	t.Helper()

	jobID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO email_jobs (id, user_id, email, email_type, template_name, scheduled_for)
		VALUES ($1, $2, $3, $4, $4, $5)`,
		jobID, userID, email, emailType, scheduledFor)
	require.NoError(t, err)

	return jobID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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

	return nil
}
