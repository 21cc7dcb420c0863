package commands

import (
	"context"
	"log/slog"

	"blueprint-api/internal/domain/email"
	"blueprint-api/internal/pkg/clock"
	"blueprint-api/internal/pkg/config"
	"blueprint-api/internal/pkg/errs"
	"blueprint-api/internal/usecase/queries"
	"blueprint-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDrainFailed   = errs.New("failed to drain due email jobs")
	ErrRequeueFailed = errs.New("failed to requeue failed email jobs")
)

// DrainResult aggregates one drain run. Processed = Sent + Errors; jobs
// claimed by a concurrent run are skipped and not counted.
type DrainResult struct {
	Sent      int `json:"sent"`
	Errors    int `json:"errors"`
	Processed int `json:"processed"`
}

type DeliveryCommands interface {
	// DrainDue claims and delivers pending jobs whose scheduled_for has
	// passed, earliest first. limit <= 0 falls back to the configured batch
	// size. One failing job never aborts the batch.
	DrainDue(ctx context.Context, limit int32) (*DrainResult, error)
	// RequeueFailed moves errored jobs back to pending until they exhaust
	// the configured attempt budget.
	RequeueFailed(ctx context.Context) (int64, error)
}

type deliveryCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.EmailJobReadStore
	sender    Sender
	clock     clock.Clock
	cfg       config.SchedulerConfig
}

func NewDeliveryCommands(
	uow shared.UnitOfWork,
	readStore queries.EmailJobReadStore,
	sender Sender,
	clock clock.Clock,
	cfg config.SchedulerConfig,
) DeliveryCommands {
	return &deliveryCommandsImpl{
		uow:       uow,
		readStore: readStore,
		sender:    sender,
		clock:     clock,
		cfg:       cfg,
	}
}

func (d *deliveryCommandsImpl) DrainDue(ctx context.Context, limit int32) (*DrainResult, error) {
	if limit <= 0 {
		limit = d.cfg.DrainLimit
	}
	now := d.clock.Now()

	// Jobs claimed by a run that died keep their processing status forever;
	// put them back before picking up the batch.
	released, err := d.releaseStuck(ctx)
	if err != nil {
		slog.Warn("failed to release stuck email jobs", "error", err.Error())
	} else if released > 0 {
		slog.Info("released stuck email jobs", "count", released)
	}

	due, err := d.readStore.FindDue(ctx, now, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrDrainFailed)
	}

	result := &DrainResult{}
	for _, job := range due {
		if ctx.Err() != nil {
			break
		}

		claimed, claimErr := d.claim(ctx, job.ID)
		if claimErr != nil {
			slog.Warn("failed to claim email job", "job_id", job.ID, "error", claimErr.Error())
			result.Errors++
			continue
		}
		if !claimed {
			continue
		}

		if d.deliver(ctx, job) {
			result.Sent++
		} else {
			result.Errors++
		}
	}
	result.Processed = result.Sent + result.Errors

	slog.Info("drained due email jobs",
		"sent", result.Sent, "errors", result.Errors, "processed", result.Processed)
	return result, nil
}

func (d *deliveryCommandsImpl) RequeueFailed(ctx context.Context) (int64, error) {
	var requeued int64
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		scheduledFor := d.clock.Now().Add(d.cfg.RequeueDelay)
		n, txErr := tx.EmailJobs().RequeueFailed(ctx, tx.DB(), scheduledFor, d.cfg.MaxAttempts)
		if txErr != nil {
			return txErr
		}
		requeued = n
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, ErrRequeueFailed)
	}
	return requeued, nil
}

func (d *deliveryCommandsImpl) releaseStuck(ctx context.Context) (int64, error) {
	var released int64
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updatedBefore := d.clock.Now().Add(-d.cfg.StuckAfter)
		n, txErr := tx.EmailJobs().ReleaseStuck(ctx, tx.DB(), updatedBefore)
		if txErr != nil {
			return txErr
		}
		released = n
		return nil
	})
	return released, err
}

// claim flips pending -> processing; false means another run won the job.
func (d *deliveryCommandsImpl) claim(ctx context.Context, jobID uuid.UUID) (bool, error) {
	var claimed bool
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, txErr := tx.EmailJobs().Claim(ctx, tx.DB(), jobID)
		if txErr != nil {
			return txErr
		}
		claimed = ok
		return nil
	})
	return claimed, err
}

// deliver runs one claimed job to a terminal status and reports whether it
// ended up sent.
func (d *deliveryCommandsImpl) deliver(ctx context.Context, job *queries.EmailJobView) bool {
	logged, err := d.uow.CommandReads().EmailLogExists(ctx, job.UserID, job.EmailType)
	if err != nil {
		d.markError(ctx, job.ID, "dedup ledger check failed: "+err.Error())
		return false
	}
	if logged {
		// Already delivered once for this user and type; settle the job
		// without contacting the provider again.
		slog.Info("skipping already-logged email job",
			"job_id", job.ID, "user_id", job.UserID, "email_type", job.EmailType)
		return d.markSent(ctx, job, false)
	}

	body, err := d.renderBody(ctx, job)
	if err != nil {
		d.markError(ctx, job.ID, "template rendering failed: "+err.Error())
		return false
	}

	subject := email.Subject(email.Type(job.EmailType))
	messageID, err := d.sender.Send(ctx, job.Email, subject, body)
	if err != nil {
		d.markError(ctx, job.ID, err.Error())
		return false
	}

	slog.Info("email sent",
		"job_id", job.ID, "email_type", job.EmailType, "message_id", messageID)
	return d.markSent(ctx, job, true)
}

func (d *deliveryCommandsImpl) renderBody(ctx context.Context, job *queries.EmailJobView) (string, error) {
	profileName := ""
	if user, err := d.uow.CommandReads().UserByID(ctx, job.UserID); err == nil && user.Name != nil {
		profileName = *user.Name
	}

	kind := email.ParseTemplateKind(job.TemplateName)
	return email.Render(kind, email.TemplateData{
		DisplayName: email.DisplayName(profileName, job.Email),
		Metadata:    job.Metadata,
	})
}

// markSent settles the job and, when the provider was actually contacted,
// appends to the dedup ledger in the same transaction.
func (d *deliveryCommandsImpl) markSent(ctx context.Context, job *queries.EmailJobView, appendLog bool) bool {
	sentAt := d.clock.Now()
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if txErr := tx.EmailJobs().MarkSent(ctx, tx.DB(), job.ID, sentAt); txErr != nil {
			return txErr
		}
		if !appendLog {
			return nil
		}
		return tx.EmailLogs().Create(ctx, tx.DB(), shared.NewEmailLog{
			UserID:    job.UserID,
			EmailType: job.EmailType,
			Email:     job.Email,
			Metadata:  job.Metadata,
			SentAt:    sentAt,
		})
	})
	if err == nil {
		return true
	}
	if !appendLog {
		slog.Warn("failed to mark email job sent", "job_id", job.ID, "error", err.Error())
		return false
	}

	// The combined transaction rolled back, taking the sent mark with it.
	// The provider already accepted the message, so a missing ledger row is
	// the lesser evil: settle the job on its own rather than leave it to be
	// released back to pending and resent.
	slog.Warn("failed to append email log, marking job sent without it",
		"job_id", job.ID, "error", err.Error())
	err = d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.EmailJobs().MarkSent(ctx, tx.DB(), job.ID, sentAt)
	})
	if err != nil {
		slog.Warn("failed to mark email job sent", "job_id", job.ID, "error", err.Error())
		return false
	}
	return true
}

func (d *deliveryCommandsImpl) markError(ctx context.Context, jobID uuid.UUID, message string) {
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.EmailJobs().MarkError(ctx, tx.DB(), jobID, message)
	})
	if err != nil {
		slog.Warn("failed to mark email job errored", "job_id", jobID, "error", err.Error())
	}
	slog.Warn("email job failed", "job_id", jobID, "error_message", message)
}
