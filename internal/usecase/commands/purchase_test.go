//go:build unit

package commands_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"blueprint-api/internal/domain/product"
	"blueprint-api/internal/domain/purchase"
	"blueprint-api/internal/pkg/clock"
	"blueprint-api/internal/usecase/commands"
	"blueprint-api/internal/usecase/shared"
	"blueprint-api/tests/common/builder"
	sharedmock "blueprint-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	purchases   *sharedmock.MockPurchaseRepository
	jobs        *sharedmock.MockEmailJobRepository
	idempotency *sharedmock.MockIdempotencyRepository
	reads       *sharedmock.MockCommandReads
	clk         *clock.MockClock
	command     commands.PurchaseCommands
}

func (s *PurchaseCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.purchases = sharedmock.NewMockPurchaseRepository(s.ctrl)
	s.jobs = sharedmock.NewMockEmailJobRepository(s.ctrl)
	s.idempotency = sharedmock.NewMockIdempotencyRepository(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Purchases().Return(s.purchases).AnyTimes()
	s.tx.EXPECT().EmailJobs().Return(s.jobs).AnyTimes()
	s.tx.EXPECT().Idempotency().Return(s.idempotency).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.command = commands.NewPurchaseCommands(s.uow, s.clk)
}

func (s *PurchaseCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPurchaseCommandsSuite(t *testing.T) {
	suite.Run(t, new(PurchaseCommandsTestSuite))
}

// requestHashFor mirrors the hash stored with an idempotency key so tests can
// fabricate a matching in-flight record.
func requestHashFor(p commands.RecordPurchaseParams) string {
	payload, _ := json.Marshal(p)
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func (s *PurchaseCommandsTestSuite) params() commands.RecordPurchaseParams {
	return commands.RecordPurchaseParams{
		UserID:      uuid.New(),
		ProductType: "workbook_1",
		SessionRef:  "cs_test_abc123",
		AmountCents: 4900,
	}
}

func (s *PurchaseCommandsTestSuite) TestRecordPurchaseValidation() {
	tests := []struct {
		name   string
		mutate func(*commands.RecordPurchaseParams)
		errIs  error
	}{
		{
			name:   "unknown product rejected",
			mutate: func(p *commands.RecordPurchaseParams) { p.ProductType = "workbook_9" },
			errIs:  commands.ErrUnknownProduct,
		},
		{
			name:   "free product rejected",
			mutate: func(p *commands.RecordPurchaseParams) { p.ProductType = "workbook_0" },
			errIs:  commands.ErrFreeProduct,
		},
		{
			name:   "missing session ref rejected",
			mutate: func(p *commands.RecordPurchaseParams) { p.SessionRef = "" },
			errIs:  commands.ErrSessionRefRequired,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			params := s.params()
			tt.mutate(&params)
			_, err := s.command.RecordPurchase(context.Background(), params)
			s.Require().ErrorIs(err, tt.errIs)
		})
	}
}

func (s *PurchaseCommandsTestSuite) TestRecordPurchaseFirstTime() {
	params := s.params()
	now := s.clk.Now()
	purchaseID := uuid.New()
	wantExpiry := now.AddDate(0, 6, 0)

	s.idempotency.EXPECT().
		TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), params.UserID, gomock.Any(), gomock.Any(), now.Add(24*time.Hour)).
		Return(true, nil)
	s.reads.EXPECT().PurchasesByUser(gomock.Any(), params.UserID).Return(nil, nil)
	s.purchases.EXPECT().
		Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, p *purchase.Purchase) (uuid.UUID, error) {
			s.Equal(params.UserID, p.UserID)
			s.Equal(product.TypeWorkbook1, p.Product)
			s.Equal(params.SessionRef, p.SessionRef)
			s.Equal(wantExpiry, p.ExpiresAt)
			return purchaseID, nil
		})
	s.purchases.EXPECT().
		RaiseExpirations(gomock.Any(), gomock.Any(), params.UserID, wantExpiry).
		Return(int64(0), nil)
	s.idempotency.EXPECT().
		UpdateStatusCompleted(gomock.Any(), gomock.Any(), gomock.Any(), params.UserID, gomock.Any(), purchaseID).
		Return(nil)

	// Follow-up scheduling: confirmation, getting-started, expiry warning.
	snapshot := builder.NewUserBuilder().BuildSnapshot()
	s.reads.EXPECT().UserByID(gomock.Any(), params.UserID).Return(snapshot, nil)
	var scheduled []shared.NewEmailJob
	s.jobs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, job shared.NewEmailJob) (uuid.UUID, error) {
			scheduled = append(scheduled, job)
			return uuid.New(), nil
		}).Times(3)

	result, err := s.command.RecordPurchase(context.Background(), params)
	s.Require().NoError(err)
	s.Equal(purchaseID, result.PurchaseID)
	s.Equal(wantExpiry, result.ExpiresAt)
	s.False(result.IsReplayed)

	s.Require().Len(scheduled, 3)
	s.Equal("purchase_confirmation", scheduled[0].EmailType)
	s.Equal(now, scheduled[0].ScheduledFor)
	s.Equal("getting_started", scheduled[1].EmailType)
	s.Equal("expiry_warning", scheduled[2].EmailType)
	s.Equal("workbook_1", scheduled[0].Metadata["product"])
}

func (s *PurchaseCommandsTestSuite) TestRecordPurchaseExtendsExistingWindow() {
	params := s.params()
	now := s.clk.Now()
	laterExpiry := now.AddDate(0, 9, 0)
	existing := []purchase.Purchase{
		builder.NewPurchaseBuilder().
			WithUserID(params.UserID).
			WithProduct(product.TypeBundle).
			WithExpiresAt(laterExpiry).
			BuildDomain(),
	}

	s.idempotency.EXPECT().
		TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), params.UserID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil)
	s.reads.EXPECT().PurchasesByUser(gomock.Any(), params.UserID).Return(existing, nil)
	s.purchases.EXPECT().
		Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, p *purchase.Purchase) (uuid.UUID, error) {
			s.Equal(laterExpiry, p.ExpiresAt)
			return uuid.New(), nil
		})
	s.purchases.EXPECT().
		RaiseExpirations(gomock.Any(), gomock.Any(), params.UserID, laterExpiry).
		Return(int64(1), nil)
	s.idempotency.EXPECT().
		UpdateStatusCompleted(gomock.Any(), gomock.Any(), gomock.Any(), params.UserID, gomock.Any(), gomock.Any()).
		Return(nil)

	snapshot := builder.NewUserBuilder().BuildSnapshot()
	s.reads.EXPECT().UserByID(gomock.Any(), params.UserID).Return(snapshot, nil)
	s.jobs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(3)

	result, err := s.command.RecordPurchase(context.Background(), params)
	s.Require().NoError(err)
	s.Equal(laterExpiry, result.ExpiresAt)
}

func (s *PurchaseCommandsTestSuite) TestRecordPurchaseReplaysCompletedVerification() {
	params := s.params()
	purchaseID := uuid.New()
	expiresAt := s.clk.Now().AddDate(0, 6, 0)

	s.idempotency.EXPECT().
		TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), params.UserID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil)
	s.reads.EXPECT().IdempotencyByKey(gomock.Any(), gomock.Any(), params.UserID).
		Return(&shared.IdempotencyRecord{
			UserID:           params.UserID,
			Status:           "completed",
			ResultPurchaseID: &purchaseID,
		}, nil)
	s.reads.EXPECT().PurchasesByUser(gomock.Any(), params.UserID).
		Return([]purchase.Purchase{{ID: purchaseID, UserID: params.UserID, Product: product.TypeWorkbook1, ExpiresAt: expiresAt}}, nil)

	result, err := s.command.RecordPurchase(context.Background(), params)
	s.Require().NoError(err)
	s.True(result.IsReplayed)
	s.Equal(purchaseID, result.PurchaseID)
	s.Equal(expiresAt, result.ExpiresAt)
}

func (s *PurchaseCommandsTestSuite) TestRecordPurchaseRejectsConcurrentVerification() {
	params := s.params()

	s.idempotency.EXPECT().
		TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), params.UserID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil)
	s.reads.EXPECT().IdempotencyByKey(gomock.Any(), gomock.Any(), params.UserID).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID) (*shared.IdempotencyRecord, error) {
			return &shared.IdempotencyRecord{
				UserID:      params.UserID,
				Status:      "processing",
				RequestHash: requestHashFor(params),
				ExpiresAt:   s.clk.Now().Add(time.Hour),
			}, nil
		})

	_, err := s.command.RecordPurchase(context.Background(), params)
	s.Require().ErrorIs(err, commands.ErrPurchaseInProgress)
}

func (s *PurchaseCommandsTestSuite) TestRecordPurchaseRejectsReusedSessionRef() {
	params := s.params()

	s.idempotency.EXPECT().
		TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), params.UserID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil)
	s.reads.EXPECT().IdempotencyByKey(gomock.Any(), gomock.Any(), params.UserID).
		Return(&shared.IdempotencyRecord{
			UserID:      params.UserID,
			Status:      "processing",
			RequestHash: "some-other-request-hash",
			ExpiresAt:   s.clk.Now().Add(time.Hour),
		}, nil)

	_, err := s.command.RecordPurchase(context.Background(), params)
	s.Require().ErrorIs(err, commands.ErrDuplicateSessionRef)
}

func (s *PurchaseCommandsTestSuite) TestRecordPurchaseReclaimsExpiredProcessingKey() {
	params := s.params()
	purchaseID := uuid.New()

	s.idempotency.EXPECT().
		TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), params.UserID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil)
	s.reads.EXPECT().IdempotencyByKey(gomock.Any(), gomock.Any(), params.UserID).
		Return(&shared.IdempotencyRecord{
			UserID:    params.UserID,
			Status:    "processing",
			ExpiresAt: s.clk.Now().Add(-time.Hour),
		}, nil)
	s.idempotency.EXPECT().
		ClaimExpiredIdempotencyKey(gomock.Any(), gomock.Any(), gomock.Any(), params.UserID, gomock.Any(), gomock.Any()).
		Return(int64(1), nil)

	s.reads.EXPECT().PurchasesByUser(gomock.Any(), params.UserID).Return(nil, nil)
	s.purchases.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(purchaseID, nil)
	s.purchases.EXPECT().RaiseExpirations(gomock.Any(), gomock.Any(), params.UserID, gomock.Any()).Return(int64(0), nil)
	s.idempotency.EXPECT().
		UpdateStatusCompleted(gomock.Any(), gomock.Any(), gomock.Any(), params.UserID, gomock.Any(), purchaseID).
		Return(nil)

	snapshot := builder.NewUserBuilder().BuildSnapshot()
	s.reads.EXPECT().UserByID(gomock.Any(), params.UserID).Return(snapshot, nil)
	s.jobs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(3)

	result, err := s.command.RecordPurchase(context.Background(), params)
	s.Require().NoError(err)
	s.False(result.IsReplayed)
}

func (s *PurchaseCommandsTestSuite) TestRecordPurchaseSurvivesFollowUpFailure() {
	params := s.params()
	purchaseID := uuid.New()

	s.idempotency.EXPECT().
		TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), params.UserID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil)
	s.reads.EXPECT().PurchasesByUser(gomock.Any(), params.UserID).Return(nil, nil)
	s.purchases.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(purchaseID, nil)
	s.purchases.EXPECT().RaiseExpirations(gomock.Any(), gomock.Any(), params.UserID, gomock.Any()).Return(int64(0), nil)
	s.idempotency.EXPECT().
		UpdateStatusCompleted(gomock.Any(), gomock.Any(), gomock.Any(), params.UserID, gomock.Any(), purchaseID).
		Return(nil)

	snapshot := builder.NewUserBuilder().BuildSnapshot()
	s.reads.EXPECT().UserByID(gomock.Any(), params.UserID).Return(snapshot, nil)
	s.jobs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uuid.Nil, errors.New("insert failed"))

	// The verified purchase is not rolled back by a follow-up enqueue failure.
	result, err := s.command.RecordPurchase(context.Background(), params)
	s.Require().NoError(err)
	s.Equal(purchaseID, result.PurchaseID)
}

func (s *PurchaseCommandsTestSuite) TestRecordPurchaseWebinarSchedulesReminder() {
	params := s.params()
	params.ProductType = "webinar"
	purchaseID := uuid.New()

	s.idempotency.EXPECT().
		TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), params.UserID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil)
	s.reads.EXPECT().PurchasesByUser(gomock.Any(), params.UserID).Return(nil, nil)
	s.purchases.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(purchaseID, nil)
	s.purchases.EXPECT().RaiseExpirations(gomock.Any(), gomock.Any(), params.UserID, gomock.Any()).Return(int64(0), nil)
	s.idempotency.EXPECT().
		UpdateStatusCompleted(gomock.Any(), gomock.Any(), gomock.Any(), params.UserID, gomock.Any(), purchaseID).
		Return(nil)

	snapshot := builder.NewUserBuilder().BuildSnapshot()
	s.reads.EXPECT().UserByID(gomock.Any(), params.UserID).Return(snapshot, nil)
	var scheduled []shared.NewEmailJob
	s.jobs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, job shared.NewEmailJob) (uuid.UUID, error) {
			scheduled = append(scheduled, job)
			return uuid.New(), nil
		}).Times(3)

	_, err := s.command.RecordPurchase(context.Background(), params)
	s.Require().NoError(err)
	s.Require().Len(scheduled, 3)
	s.Equal("purchase_confirmation", scheduled[0].EmailType)
	s.Equal("webinar_confirmation", scheduled[1].EmailType)
	s.Equal("webinar_reminder", scheduled[2].EmailType)
	s.Equal(s.clk.Now().Add(24*time.Hour), scheduled[2].ScheduledFor)
}
