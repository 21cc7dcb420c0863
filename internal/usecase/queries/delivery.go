package queries

import (
	"context"
	"time"

	"blueprint-api/internal/infra"
	"blueprint-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmailJobNotFound = errs.New("email job not found")

type EmailJobReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EmailJobView, error)
	FindDue(ctx context.Context, now time.Time, limit int32) ([]*EmailJobView, error)
	FindByUserIDFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*EmailJobView, error)
	FindByUserIDKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*EmailJobView, error)
}

type EmailLogReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*EmailLogView, error)
}

type EmailJobPage struct {
	Jobs       []*EmailJobView `json:"jobs"`
	NextCursor string          `json:"next_cursor,omitempty"`
}

type DeliveryQueries interface {
	GetJob(ctx context.Context, id uuid.UUID) (*EmailJobView, error)
	ListUserJobs(ctx context.Context, userID uuid.UUID, limit int, after string) (*EmailJobPage, error)
	ListUserLogs(ctx context.Context, userID uuid.UUID) ([]*EmailLogView, error)
}

type deliveryQueriesImpl struct {
	readStore EmailJobReadStore
	logStore  EmailLogReadStore
}

func NewDeliveryQueries(readStore EmailJobReadStore, logStore EmailLogReadStore) DeliveryQueries {
	return &deliveryQueriesImpl{
		readStore: readStore,
		logStore:  logStore,
	}
}

func (q *deliveryQueriesImpl) GetJob(ctx context.Context, id uuid.UUID) (*EmailJobView, error) {
	job, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEmailJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (q *deliveryQueriesImpl) ListUserJobs(ctx context.Context, userID uuid.UUID, limit int, after string) (*EmailJobPage, error) {
	limit = ValidateLimit(limit)

	var (
		jobs []*EmailJobView
		err  error
	)
	if after == "" {
		jobs, err = q.readStore.FindByUserIDFirstPage(ctx, userID, int32(limit)+1)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after)
		if decodeErr != nil {
			return nil, errs.Wrap(decodeErr, "invalid cursor")
		}
		jobs, err = q.readStore.FindByUserIDKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit)+1)
	}
	if err != nil {
		return nil, err
	}

	page := &EmailJobPage{Jobs: jobs}
	if len(jobs) > limit {
		page.Jobs = jobs[:limit]
		last := page.Jobs[limit-1]
		page.NextCursor = EncodeAfterCursor(last.CreatedAt, last.ID)
	}
	return page, nil
}

func (q *deliveryQueriesImpl) ListUserLogs(ctx context.Context, userID uuid.UUID) ([]*EmailLogView, error) {
	return q.logStore.FindByUserID(ctx, userID)
}
