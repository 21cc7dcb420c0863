package repository

import (
	"context"
	"encoding/json"
	"time"

	"blueprint-api/internal/infra"
	sqlc "blueprint-api/internal/infra/sqlc/generated"
	"blueprint-api/internal/pkg/errs"
	"blueprint-api/internal/pkg/pgconv"
	"blueprint-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// errNoTransition signals a CAS update that matched no row: the job is not in
// the state the transition expects.
var errNoTransition = errs.New("job status already transitioned")

type EmailJobWriteQueries interface {
	CreateEmailJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEmailJobParams) (sqlc.EmailJobs, error)
	ClaimEmailJob(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	MarkEmailJobSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkEmailJobSentParams) (int64, error)
	MarkEmailJobError(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkEmailJobErrorParams) (int64, error)
	ReleaseStuckEmailJobs(ctx context.Context, db sqlc.DBTX, updatedAt pgtype.Timestamptz) (int64, error)
	RequeueFailedEmailJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.RequeueFailedEmailJobsParams) (int64, error)
}

type EmailJobRepository struct {
	queries EmailJobWriteQueries
}

func NewEmailJobRepository(queries EmailJobWriteQueries) *EmailJobRepository {
	return &EmailJobRepository{
		queries: queries,
	}
}

func (r *EmailJobRepository) Create(ctx context.Context, tx sqlc.DBTX, job shared.NewEmailJob) (uuid.UUID, error) {
	metadata, err := json.Marshal(job.Metadata)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode email job metadata", err)
	}

	params := sqlc.CreateEmailJobParams{
		UserID:       job.UserID,
		Email:        job.Email,
		EmailType:    job.EmailType,
		TemplateName: job.TemplateName,
		ScheduledFor: pgconv.TimeToPgtype(job.ScheduledFor),
		Metadata:     metadata,
	}

	row, err := r.queries.CreateEmailJob(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create email job", err)
	}

	return row.ID, nil
}

func (r *EmailJobRepository) Claim(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) (bool, error) {
	affected, err := r.queries.ClaimEmailJob(ctx, tx, jobID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim email job", err)
	}
	return affected > 0, nil
}

func (r *EmailJobRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, sentAt time.Time) error {
	params := sqlc.MarkEmailJobSentParams{
		ID:     jobID,
		SentAt: pgconv.TimeToPgtype(sentAt),
	}

	affected, err := r.queries.MarkEmailJobSent(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to mark email job sent", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("email job not in processing state", errNoTransition, infra.KindNotFound)
	}
	return nil
}

func (r *EmailJobRepository) MarkError(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, message string) error {
	params := sqlc.MarkEmailJobErrorParams{
		ID:           jobID,
		ErrorMessage: pgconv.StringToPgtype(message),
	}

	affected, err := r.queries.MarkEmailJobError(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to mark email job errored", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("email job not in processing state", errNoTransition, infra.KindNotFound)
	}
	return nil
}

func (r *EmailJobRepository) ReleaseStuck(ctx context.Context, tx sqlc.DBTX, updatedBefore time.Time) (int64, error) {
	count, err := r.queries.ReleaseStuckEmailJobs(ctx, tx, pgconv.TimeToPgtype(updatedBefore))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release stuck email jobs", err)
	}
	return count, nil
}

func (r *EmailJobRepository) RequeueFailed(ctx context.Context, tx sqlc.DBTX, scheduledFor time.Time, maxAttempts int32) (int64, error) {
	params := sqlc.RequeueFailedEmailJobsParams{
		ScheduledFor: pgconv.TimeToPgtype(scheduledFor),
		Attempts:     maxAttempts,
	}

	count, err := r.queries.RequeueFailedEmailJobs(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to requeue failed email jobs", err)
	}
	return count, nil
}
