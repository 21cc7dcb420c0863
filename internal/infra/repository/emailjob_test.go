//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"blueprint-api/internal/infra"
	sqlc "blueprint-api/internal/infra/sqlc/generated"
	"blueprint-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEmailJobWriteQueries struct {
	mock.Mock
}

func (m *MockEmailJobWriteQueries) CreateEmailJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEmailJobParams) (sqlc.EmailJobs, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.EmailJobs), args.Error(1)
}

func (m *MockEmailJobWriteQueries) ClaimEmailJob(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmailJobWriteQueries) MarkEmailJobSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkEmailJobSentParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmailJobWriteQueries) MarkEmailJobError(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkEmailJobErrorParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmailJobWriteQueries) ReleaseStuckEmailJobs(ctx context.Context, db sqlc.DBTX, updatedAt pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, updatedAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmailJobWriteQueries) RequeueFailedEmailJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.RequeueFailedEmailJobsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

// sqlc.DBTX implementation for MockEmailJobWriteQueries
func (m *MockEmailJobWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockEmailJobWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockEmailJobWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestEmailJobCreate(t *testing.T) {
	jobID := uuid.New()
	newJob := shared.NewEmailJob{
		UserID:       uuid.New(),
		Email:        "test@example.com",
		EmailType:    "purchase_confirmation",
		TemplateName: "purchase_confirmation",
		ScheduledFor: time.Now(),
		Metadata:     map[string]string{"product": "workbook_1"},
	}

	tests := []struct {
		name      string
		mockRow   sqlc.EmailJobs
		mockError error
		wantError bool
	}{
		{
			name:    "success",
			mockRow: sqlc.EmailJobs{ID: jobID},
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockEmailJobWriteQueries)
			mockQueries.On("CreateEmailJob", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.CreateEmailJobParams) bool {
				return arg.UserID == newJob.UserID && arg.EmailType == newJob.EmailType
			})).Return(tt.mockRow, tt.mockError)

			repo := NewEmailJobRepository(mockQueries)

			id, err := repo.Create(context.Background(), mockQueries, newJob)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, jobID, id)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestEmailJobClaim(t *testing.T) {
	jobID := uuid.New()

	tests := []struct {
		name        string
		affected    int64
		mockError   error
		wantClaimed bool
		wantError   bool
	}{
		{
			name:        "claims a pending job",
			affected:    1,
			wantClaimed: true,
		},
		{
			name:        "already claimed elsewhere",
			affected:    0,
			wantClaimed: false,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockEmailJobWriteQueries)
			mockQueries.On("ClaimEmailJob", mock.Anything, mock.Anything, jobID).Return(tt.affected, tt.mockError)

			repo := NewEmailJobRepository(mockQueries)

			claimed, err := repo.Claim(context.Background(), mockQueries, jobID)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantClaimed, claimed)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestEmailJobMarkSent(t *testing.T) {
	jobID := uuid.New()
	sentAt := time.Now()

	tests := []struct {
		name         string
		affected     int64
		mockError    error
		wantError    bool
		wantNotFound bool
	}{
		{
			name:     "settles a processing job",
			affected: 1,
		},
		{
			name:         "job not in processing state",
			affected:     0,
			wantError:    true,
			wantNotFound: true,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockEmailJobWriteQueries)
			mockQueries.On("MarkEmailJobSent", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.MarkEmailJobSentParams) bool {
				return arg.ID == jobID
			})).Return(tt.affected, tt.mockError)

			repo := NewEmailJobRepository(mockQueries)

			err := repo.MarkSent(context.Background(), mockQueries, jobID, sentAt)

			if tt.wantError {
				assert.Error(t, err)
				if tt.wantNotFound {
					assert.True(t, infra.IsKind(err, infra.KindNotFound))
				}
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestEmailJobMarkError(t *testing.T) {
	jobID := uuid.New()

	tests := []struct {
		name         string
		affected     int64
		mockError    error
		wantError    bool
		wantNotFound bool
	}{
		{
			name:     "records the failure message",
			affected: 1,
		},
		{
			name:         "job not in processing state",
			affected:     0,
			wantError:    true,
			wantNotFound: true,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockEmailJobWriteQueries)
			mockQueries.On("MarkEmailJobError", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.MarkEmailJobErrorParams) bool {
				return arg.ID == jobID && arg.ErrorMessage.String == "network timeout"
			})).Return(tt.affected, tt.mockError)

			repo := NewEmailJobRepository(mockQueries)

			err := repo.MarkError(context.Background(), mockQueries, jobID, "network timeout")

			if tt.wantError {
				assert.Error(t, err)
				if tt.wantNotFound {
					assert.True(t, infra.IsKind(err, infra.KindNotFound))
				}
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestEmailJobReleaseStuck(t *testing.T) {
	tests := []struct {
		name      string
		released  int64
		mockError error
		wantError bool
	}{
		{
			name:     "releases stale claims",
			released: 2,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockEmailJobWriteQueries)
			mockQueries.On("ReleaseStuckEmailJobs", mock.Anything, mock.Anything, mock.Anything).Return(tt.released, tt.mockError)

			repo := NewEmailJobRepository(mockQueries)

			count, err := repo.ReleaseStuck(context.Background(), mockQueries, time.Now().Add(-10*time.Minute))

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.released, count)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestEmailJobRequeueFailed(t *testing.T) {
	mockQueries := new(MockEmailJobWriteQueries)
	mockQueries.On("RequeueFailedEmailJobs", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.RequeueFailedEmailJobsParams) bool {
		return arg.Attempts == int32(5)
	})).Return(int64(3), nil)

	repo := NewEmailJobRepository(mockQueries)

	count, err := repo.RequeueFailed(context.Background(), mockQueries, time.Now().Add(5*time.Minute), 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	mockQueries.AssertExpectations(t)
}
