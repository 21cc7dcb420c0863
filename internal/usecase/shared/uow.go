package shared

import (
	"context"
	"time"

	"blueprint-api/internal/domain/purchase"
	sqlc "blueprint-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Purchases() PurchaseRepository
	EmailJobs() EmailJobRepository
	EmailLogs() EmailLogRepository
	Idempotency() IdempotencyRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	PurchasesByUser(ctx context.Context, userID uuid.UUID) ([]purchase.Purchase, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	// EmailLogExists reports whether the dedup ledger already holds an entry
	// for this user and email type.
	EmailLogExists(ctx context.Context, userID uuid.UUID, emailType string) (bool, error)
}

// Minimal snapshots for command read operations
type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Name     *string
	Role     string
	IsActive bool
}

type IdempotencyRecord struct {
	Key              uuid.UUID
	UserID           uuid.UUID
	Status           string
	RequestHash      string
	ResultPurchaseID *uuid.UUID
	ExpiresAt        time.Time
}

// NewEmailJob is the write-side shape of a scheduled notification.
type NewEmailJob struct {
	UserID       uuid.UUID
	Email        string
	EmailType    string
	TemplateName string
	ScheduledFor time.Time
	Metadata     map[string]string
}

// NewEmailLog is one append to the dedup ledger.
type NewEmailLog struct {
	UserID    uuid.UUID
	EmailType string
	Email     string
	Metadata  map[string]string
	SentAt    time.Time
}

type PurchaseRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, p *purchase.Purchase) (uuid.UUID, error)
	RaiseExpirations(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, expiresAt time.Time) (int64, error)
}

type EmailJobRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, job NewEmailJob) (uuid.UUID, error)
	// Claim transitions pending -> processing; false means another run holds the job.
	Claim(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) (bool, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, sentAt time.Time) error
	MarkError(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, message string) error
	ReleaseStuck(ctx context.Context, tx sqlc.DBTX, updatedBefore time.Time) (int64, error)
	RequeueFailed(ctx context.Context, tx sqlc.DBTX, scheduledFor time.Time, maxAttempts int32) (int64, error)
}

type EmailLogRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, entry NewEmailLog) error
}

type IdempotencyRepository interface {
	// TryInsert returns false when the key already exists for the user.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, resultHash string, purchaseID uuid.UUID) error
	ClaimExpiredIdempotencyKey(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error)
}
