//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"blueprint-api/internal/domain/email"
	"blueprint-api/internal/pkg/clock"
	"blueprint-api/internal/pkg/config"
	"blueprint-api/internal/usecase/commands"
	"blueprint-api/internal/usecase/queries"
	"blueprint-api/internal/usecase/shared"
	"blueprint-api/tests/common/builder"
	queriesmock "blueprint-api/tests/mock/queries"
	sharedmock "blueprint-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type fakeSender struct {
	calls []sentMail
	err   error
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (f *fakeSender) Send(_ context.Context, to, subject, htmlBody string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.calls = append(f.calls, sentMail{To: to, Subject: subject, Body: htmlBody})
	return "msg-" + uuid.NewString(), nil
}

type DeliveryCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	jobs      *sharedmock.MockEmailJobRepository
	logs      *sharedmock.MockEmailLogRepository
	reads     *sharedmock.MockCommandReads
	readStore *queriesmock.MockEmailJobReadStore
	sender    *fakeSender
	clk       *clock.MockClock
	cfg       config.SchedulerConfig
	delivery  commands.DeliveryCommands
}

func (s *DeliveryCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.jobs = sharedmock.NewMockEmailJobRepository(s.ctrl)
	s.logs = sharedmock.NewMockEmailLogRepository(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.readStore = queriesmock.NewMockEmailJobReadStore(s.ctrl)
	s.sender = &fakeSender{}
	s.clk = clock.NewMockClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	s.cfg = config.NewTestConfig().Scheduler

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().EmailJobs().Return(s.jobs).AnyTimes()
	s.tx.EXPECT().EmailLogs().Return(s.logs).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.delivery = commands.NewDeliveryCommands(s.uow, s.readStore, s.sender, s.clk, s.cfg)
}

func (s *DeliveryCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDeliveryCommandsSuite(t *testing.T) {
	suite.Run(t, new(DeliveryCommandsTestSuite))
}

func (s *DeliveryCommandsTestSuite) expectReleaseStuck() {
	s.jobs.EXPECT().
		ReleaseStuck(gomock.Any(), gomock.Any(), s.clk.Now().Add(-s.cfg.StuckAfter)).
		Return(int64(0), nil)
}

func (s *DeliveryCommandsTestSuite) expectUser(jobUserID uuid.UUID) {
	snapshot := builder.NewUserBuilder().WithName("Jordan").BuildSnapshot()
	snapshot.ID = jobUserID
	s.reads.EXPECT().UserByID(gomock.Any(), jobUserID).Return(snapshot, nil).AnyTimes()
}

func (s *DeliveryCommandsTestSuite) TestDrainDueSendsAndSettles() {
	job := builder.NewEmailJobBuilder().BuildReadModel()
	s.expectReleaseStuck()
	s.readStore.EXPECT().FindDue(gomock.Any(), s.clk.Now(), s.cfg.DrainLimit).
		Return([]*queries.EmailJobView{job}, nil)

	s.jobs.EXPECT().Claim(gomock.Any(), gomock.Any(), job.ID).Return(true, nil)
	s.reads.EXPECT().EmailLogExists(gomock.Any(), job.UserID, job.EmailType).Return(false, nil)
	s.expectUser(job.UserID)
	s.jobs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), job.ID, s.clk.Now()).Return(nil)
	s.logs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, entry shared.NewEmailLog) error {
			s.Equal(job.UserID, entry.UserID)
			s.Equal(job.EmailType, entry.EmailType)
			s.Equal(job.Email, entry.Email)
			return nil
		})

	result, err := s.delivery.DrainDue(context.Background(), 0)
	s.Require().NoError(err)
	s.Equal(&commands.DrainResult{Sent: 1, Errors: 0, Processed: 1}, result)

	s.Require().Len(s.sender.calls, 1)
	s.Equal(job.Email, s.sender.calls[0].To)
	s.Equal(email.Subject(email.TypePurchaseConfirmation), s.sender.calls[0].Subject)
	s.Contains(s.sender.calls[0].Body, "Hi Jordan,")
}

func (s *DeliveryCommandsTestSuite) TestDrainDueSkipsAlreadyLoggedWithoutSending() {
	job := builder.NewEmailJobBuilder().BuildReadModel()
	s.expectReleaseStuck()
	s.readStore.EXPECT().FindDue(gomock.Any(), s.clk.Now(), s.cfg.DrainLimit).
		Return([]*queries.EmailJobView{job}, nil)

	s.jobs.EXPECT().Claim(gomock.Any(), gomock.Any(), job.ID).Return(true, nil)
	s.reads.EXPECT().EmailLogExists(gomock.Any(), job.UserID, job.EmailType).Return(true, nil)
	// Settled as sent, but the ledger is not appended to again.
	s.jobs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), job.ID, s.clk.Now()).Return(nil)

	result, err := s.delivery.DrainDue(context.Background(), 0)
	s.Require().NoError(err)
	s.Equal(&commands.DrainResult{Sent: 1, Errors: 0, Processed: 1}, result)
	s.Empty(s.sender.calls)
}

func (s *DeliveryCommandsTestSuite) TestDrainDueRecordsSendFailure() {
	job := builder.NewEmailJobBuilder().BuildReadModel()
	s.sender.err = errors.New("network timeout")

	s.expectReleaseStuck()
	s.readStore.EXPECT().FindDue(gomock.Any(), s.clk.Now(), s.cfg.DrainLimit).
		Return([]*queries.EmailJobView{job}, nil)

	s.jobs.EXPECT().Claim(gomock.Any(), gomock.Any(), job.ID).Return(true, nil)
	s.reads.EXPECT().EmailLogExists(gomock.Any(), job.UserID, job.EmailType).Return(false, nil)
	s.expectUser(job.UserID)
	s.jobs.EXPECT().MarkError(gomock.Any(), gomock.Any(), job.ID, "network timeout").Return(nil)

	result, err := s.delivery.DrainDue(context.Background(), 0)
	s.Require().NoError(err)
	s.Equal(&commands.DrainResult{Sent: 0, Errors: 1, Processed: 1}, result)
}

func (s *DeliveryCommandsTestSuite) TestDrainDueKeepsSentMarkWhenLedgerAppendFails() {
	job := builder.NewEmailJobBuilder().BuildReadModel()
	s.expectReleaseStuck()
	s.readStore.EXPECT().FindDue(gomock.Any(), s.clk.Now(), s.cfg.DrainLimit).
		Return([]*queries.EmailJobView{job}, nil)

	s.jobs.EXPECT().Claim(gomock.Any(), gomock.Any(), job.ID).Return(true, nil)
	s.reads.EXPECT().EmailLogExists(gomock.Any(), job.UserID, job.EmailType).Return(false, nil)
	s.expectUser(job.UserID)

	// The combined sent-mark + ledger transaction fails on the ledger insert,
	// then the job is settled as sent on its own.
	combined := s.jobs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), job.ID, s.clk.Now()).Return(nil)
	s.logs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))
	s.jobs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), job.ID, s.clk.Now()).
		Return(nil).After(combined)

	result, err := s.delivery.DrainDue(context.Background(), 0)
	s.Require().NoError(err)
	s.Equal(&commands.DrainResult{Sent: 1, Errors: 0, Processed: 1}, result)
	s.Require().Len(s.sender.calls, 1)
}

func (s *DeliveryCommandsTestSuite) TestDrainDueIsolatesFailingJob() {
	failing := builder.NewEmailJobBuilder().WithEmail("first@example.com").BuildReadModel()
	healthy := builder.NewEmailJobBuilder().WithEmail("second@example.com").BuildReadModel()

	s.expectReleaseStuck()
	s.readStore.EXPECT().FindDue(gomock.Any(), s.clk.Now(), s.cfg.DrainLimit).
		Return([]*queries.EmailJobView{failing, healthy}, nil)

	s.jobs.EXPECT().Claim(gomock.Any(), gomock.Any(), failing.ID).Return(true, nil)
	s.jobs.EXPECT().Claim(gomock.Any(), gomock.Any(), healthy.ID).Return(true, nil)

	// First job dies at the dedup check, second goes all the way through.
	s.reads.EXPECT().EmailLogExists(gomock.Any(), failing.UserID, failing.EmailType).
		Return(false, errors.New("connection reset"))
	s.jobs.EXPECT().MarkError(gomock.Any(), gomock.Any(), failing.ID, gomock.Any()).Return(nil)

	s.reads.EXPECT().EmailLogExists(gomock.Any(), healthy.UserID, healthy.EmailType).Return(false, nil)
	s.expectUser(healthy.UserID)
	s.jobs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), healthy.ID, s.clk.Now()).Return(nil)
	s.logs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.delivery.DrainDue(context.Background(), 0)
	s.Require().NoError(err)
	s.Equal(&commands.DrainResult{Sent: 1, Errors: 1, Processed: 2}, result)
	s.Require().Len(s.sender.calls, 1)
	s.Equal("second@example.com", s.sender.calls[0].To)
}

func (s *DeliveryCommandsTestSuite) TestDrainDueSkipsJobsClaimedElsewhere() {
	job := builder.NewEmailJobBuilder().BuildReadModel()
	s.expectReleaseStuck()
	s.readStore.EXPECT().FindDue(gomock.Any(), s.clk.Now(), s.cfg.DrainLimit).
		Return([]*queries.EmailJobView{job}, nil)

	s.jobs.EXPECT().Claim(gomock.Any(), gomock.Any(), job.ID).Return(false, nil)

	result, err := s.delivery.DrainDue(context.Background(), 0)
	s.Require().NoError(err)
	s.Equal(&commands.DrainResult{Sent: 0, Errors: 0, Processed: 0}, result)
	s.Empty(s.sender.calls)
}

func (s *DeliveryCommandsTestSuite) TestDrainDueHonorsExplicitLimit() {
	s.expectReleaseStuck()
	s.readStore.EXPECT().FindDue(gomock.Any(), s.clk.Now(), int32(10)).
		Return(nil, nil)

	result, err := s.delivery.DrainDue(context.Background(), 10)
	s.Require().NoError(err)
	s.Equal(&commands.DrainResult{}, result)
}

func (s *DeliveryCommandsTestSuite) TestDrainDueFailsWhenBatchCannotBeLoaded() {
	s.expectReleaseStuck()
	s.readStore.EXPECT().FindDue(gomock.Any(), s.clk.Now(), s.cfg.DrainLimit).
		Return(nil, errors.New("db down"))

	_, err := s.delivery.DrainDue(context.Background(), 0)
	s.Require().ErrorIs(err, commands.ErrDrainFailed)
}

func (s *DeliveryCommandsTestSuite) TestDrainDueProceedsWhenStuckReleaseFails() {
	job := builder.NewEmailJobBuilder().BuildReadModel()
	s.jobs.EXPECT().ReleaseStuck(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("lock timeout"))
	s.readStore.EXPECT().FindDue(gomock.Any(), s.clk.Now(), s.cfg.DrainLimit).
		Return([]*queries.EmailJobView{job}, nil)

	s.jobs.EXPECT().Claim(gomock.Any(), gomock.Any(), job.ID).Return(true, nil)
	s.reads.EXPECT().EmailLogExists(gomock.Any(), job.UserID, job.EmailType).Return(false, nil)
	s.expectUser(job.UserID)
	s.jobs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), job.ID, s.clk.Now()).Return(nil)
	s.logs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.delivery.DrainDue(context.Background(), 0)
	s.Require().NoError(err)
	s.Equal(1, result.Sent)
}

func (s *DeliveryCommandsTestSuite) TestDrainDueFallsBackToLocalPartSalutation() {
	job := builder.NewEmailJobBuilder().WithEmail("sam.smith@example.com").BuildReadModel()
	s.expectReleaseStuck()
	s.readStore.EXPECT().FindDue(gomock.Any(), s.clk.Now(), s.cfg.DrainLimit).
		Return([]*queries.EmailJobView{job}, nil)

	s.jobs.EXPECT().Claim(gomock.Any(), gomock.Any(), job.ID).Return(true, nil)
	s.reads.EXPECT().EmailLogExists(gomock.Any(), job.UserID, job.EmailType).Return(false, nil)
	snapshot := builder.NewUserBuilder().WithEmail("sam.smith@example.com").BuildSnapshot()
	s.reads.EXPECT().UserByID(gomock.Any(), job.UserID).Return(snapshot, nil)
	s.jobs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), job.ID, s.clk.Now()).Return(nil)
	s.logs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.delivery.DrainDue(context.Background(), 0)
	s.Require().NoError(err)
	s.Require().Len(s.sender.calls, 1)
	s.Contains(s.sender.calls[0].Body, "Hi sam.smith,")
}

func (s *DeliveryCommandsTestSuite) TestRequeueFailed() {
	s.jobs.EXPECT().
		RequeueFailed(gomock.Any(), gomock.Any(), s.clk.Now().Add(s.cfg.RequeueDelay), s.cfg.MaxAttempts).
		Return(int64(3), nil)

	requeued, err := s.delivery.RequeueFailed(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(3), requeued)
}

func (s *DeliveryCommandsTestSuite) TestRequeueFailedWrapsError() {
	s.jobs.EXPECT().
		RequeueFailed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("db down"))

	_, err := s.delivery.RequeueFailed(context.Background())
	s.Require().ErrorIs(err, commands.ErrRequeueFailed)
}
