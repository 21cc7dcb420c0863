package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"blueprint-api/internal/domain/email"
	"blueprint-api/internal/domain/product"
	"blueprint-api/internal/domain/purchase"
	"blueprint-api/internal/pkg/clock"
	"blueprint-api/internal/pkg/errs"
	"blueprint-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUnknownProduct          = errs.New("unknown product type")
	ErrFreeProduct             = errs.New("product does not require purchase")
	ErrSessionRefRequired      = errs.New("payment session reference required")
	ErrPurchaseInProgress      = errs.New("purchase verification in progress")
	ErrDuplicateSessionRef     = errs.New("session reference reused with different parameters")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const verifyEndpoint = "POST /purchases/verify"

// sessionRefNamespace turns opaque payment session references into stable
// idempotency keys (UUIDv5).
var sessionRefNamespace = uuid.MustParse("3f2a1c64-88d1-4709-b0aa-52e31d2d74f8")

type RecordPurchaseParams struct {
	UserID      uuid.UUID
	ProductType string
	SessionRef  string
	AmountCents int32
}

type RecordPurchaseResult struct {
	PurchaseID uuid.UUID
	ExpiresAt  time.Time
	IsReplayed bool
}

type PurchaseCommands interface {
	RecordPurchase(ctx context.Context, params RecordPurchaseParams) (*RecordPurchaseResult, error)
}

type purchaseCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPurchaseCommands(uow shared.UnitOfWork, clock clock.Clock) PurchaseCommands {
	return &purchaseCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (p *purchaseCommandsImpl) RecordPurchase(ctx context.Context, params RecordPurchaseParams) (*RecordPurchaseResult, error) {
	productType, err := product.Parse(params.ProductType)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownProduct)
	}
	if productType.IsFree() {
		return nil, ErrFreeProduct
	}
	if params.SessionRef == "" {
		return nil, ErrSessionRefRequired
	}

	now := p.clock.Now()
	idempotencyKey := uuid.NewSHA1(sessionRefNamespace, []byte(params.SessionRef))
	requestHash := calculateRequestHash(params)
	keyExpiresAt := now.Add(24 * time.Hour)

	var result *RecordPurchaseResult
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replay, txErr := p.claimIdempotencyKey(ctx, tx, idempotencyKey, params.UserID, requestHash, keyExpiresAt)
		if txErr != nil {
			return txErr
		}
		if replay != nil {
			result = replay
			return nil
		}

		existing, txErr := tx.Reads().PurchasesByUser(ctx, params.UserID)
		if txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		expiresAt := purchase.EffectiveExpiration(now, existing)

		purchaseID, txErr := tx.Purchases().Upsert(ctx, tx.DB(), &purchase.Purchase{
			UserID:      params.UserID,
			Product:     productType,
			SessionRef:  params.SessionRef,
			AmountCents: params.AmountCents,
			PurchasedAt: now,
			ExpiresAt:   expiresAt,
		})
		if txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		// Backfill: every other row of this user expires in lockstep.
		if _, txErr = tx.Purchases().RaiseExpirations(ctx, tx.DB(), params.UserID, expiresAt); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		resultHash := calculateResultHash(purchaseID, expiresAt)
		if txErr = tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, params.UserID, resultHash, purchaseID); txErr != nil {
			return errs.Mark(txErr, ErrIdempotencyCheckFailed)
		}

		result = &RecordPurchaseResult{
			PurchaseID: purchaseID,
			ExpiresAt:  expiresAt,
			IsReplayed: false,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.IsReplayed {
		// Best-effort follow-up scheduling: a failure here is logged but
		// never fails the verified purchase.
		p.scheduleFollowUps(ctx, params.UserID, productType, now, result.ExpiresAt)
	}

	return result, nil
}

// claimIdempotencyKey returns a non-nil replay result when the session ref was
// already verified, nil when the caller owns the key and should proceed.
func (p *purchaseCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
	keyExpiresAt time.Time,
) (*RecordPurchaseResult, error) {
	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, verifyEndpoint, requestHash, keyExpiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	record, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch record.Status {
	case "completed":
		if record.ResultPurchaseID == nil {
			return nil, errs.New("completed verification missing result purchase ID")
		}
		return p.replayResult(ctx, tx, userID, *record.ResultPurchaseID)

	case "processing":
		if p.clock.Now().After(record.ExpiresAt) {
			claimed, claimErr := tx.Idempotency().ClaimExpiredIdempotencyKey(ctx, tx.DB(), key, userID, requestHash, keyExpiresAt)
			if claimErr != nil {
				return nil, errs.Mark(claimErr, ErrIdempotencyCheckFailed)
			}
			if claimed > 0 {
				return nil, nil
			}
			return nil, ErrPurchaseInProgress
		}

		if record.RequestHash != requestHash {
			return nil, ErrDuplicateSessionRef
		}
		return nil, ErrPurchaseInProgress

	default:
		return nil, errs.New("unexpected idempotency key status: " + record.Status)
	}
}

func (p *purchaseCommandsImpl) replayResult(ctx context.Context, tx shared.Tx, userID, purchaseID uuid.UUID) (*RecordPurchaseResult, error) {
	purchases, err := tx.Reads().PurchasesByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	for _, row := range purchases {
		if row.ID == purchaseID {
			return &RecordPurchaseResult{
				PurchaseID: purchaseID,
				ExpiresAt:  row.ExpiresAt,
				IsReplayed: true,
			}, nil
		}
	}
	return nil, errs.New("replayed purchase no longer present")
}

func (p *purchaseCommandsImpl) scheduleFollowUps(ctx context.Context, userID uuid.UUID, productType product.Type, now, expiresAt time.Time) {
	user, err := p.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		slog.Warn("follow-up scheduling skipped: failed to load user",
			"user_id", userID, "error", err.Error())
		return
	}

	metadata := map[string]string{
		"product":    productType.String(),
		"expires_at": expiresAt.Format("January 2, 2006"),
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, send := range email.Schedule(productType, now, expiresAt) {
			job := shared.NewEmailJob{
				UserID:       userID,
				Email:        user.Email,
				EmailType:    send.Type.String(),
				TemplateName: send.TemplateKind.Name(),
				ScheduledFor: send.ScheduledFor,
				Metadata:     metadata,
			}
			if _, createErr := tx.EmailJobs().Create(ctx, tx.DB(), job); createErr != nil {
				return createErr
			}
		}
		return nil
	})
	if err != nil {
		slog.Warn("failed to enqueue follow-up emails",
			"user_id", userID, "product_type", productType.String(), "error", err.Error())
	}
}

func calculateRequestHash(params RecordPurchaseParams) string {
	payload, _ := json.Marshal(params)
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func calculateResultHash(purchaseID uuid.UUID, expiresAt time.Time) string {
	payload, _ := json.Marshal(map[string]string{
		"purchase_id": purchaseID.String(),
		"expires_at":  expiresAt.Format(time.RFC3339),
	})
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
