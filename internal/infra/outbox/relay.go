package outbox

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"store-reservation/internal/infra"
	sqlc "store-reservation/internal/infra/sqlc/generated"
	"store-reservation/internal/pkg/clock"
	"store-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	MaxAttempts = 5
	retryDelay  = 30 * time.Second
)

//go:generate mockgen -source=relay.go -destination=../../../tests/mock/outbox/relay_mock.go -package=outboxmock

type JobQueries interface {
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJob, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobSentParams) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error
}

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Relay drains queued notification jobs to the publisher. Jobs are claimed
// with SKIP LOCKED, so several relays can run against one database.
type Relay struct {
	db        TxBeginner
	queries   JobQueries
	publisher Publisher
	clock     clock.Clock
	interval  time.Duration
	batchSize int32

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRelay(db TxBeginner, queries JobQueries, publisher Publisher, clk clock.Clock, interval time.Duration, batchSize int32) *Relay {
	return &Relay{
		db:        db,
		queries:   queries,
		publisher: publisher,
		clock:     clk,
		interval:  interval,
		batchSize: batchSize,
	}
}

func (r *Relay) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := r.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
					slog.Error("outbox relay batch failed", "error", err.Error())
				}
			}
		}
	}()
	slog.Info("Outbox relay started", "interval", r.interval.String(), "batch_size", r.batchSize)
}

func (r *Relay) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
	slog.Info("Outbox relay stopped")
}

// RunOnce publishes one batch inside a transaction and returns how many jobs
// were sent.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("outbox rollback failed", "error", rbErr.Error())
		}
	}()

	sent, err := r.dispatch(ctx, tx)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return sent, nil
}

func (r *Relay) dispatch(ctx context.Context, db sqlc.DBTX) (int, error) {
	now := r.clock.Now()
	jobs, err := r.queries.ClaimDueNotificationJobs(ctx, db, sqlc.ClaimDueNotificationJobsParams{
		RunAt: pgconv.TimeToPgtype(now),
		Limit: r.batchSize,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	sent := 0
	for _, job := range jobs {
		if pubErr := r.publisher.Publish(ctx, job.Topic, job.Payload); pubErr != nil {
			slog.Warn("notification publish failed",
				"job_id", job.ID,
				"topic", job.Topic,
				"attempts", job.Attempts+1,
				"error", pubErr.Error())
			if err := r.queries.MarkNotificationJobFailed(ctx, db, sqlc.MarkNotificationJobFailedParams{
				LastError:   pgtype.Text{String: pubErr.Error(), Valid: true},
				MaxAttempts: MaxAttempts,
				RetryAt:     pgconv.TimeToPgtype(now.Add(retryDelay)),
				UpdatedAt:   pgconv.TimeToPgtype(now),
				ID:          job.ID,
			}); err != nil {
				return sent, infra.WrapRepoErr("failed to mark notification job failed", err)
			}
			continue
		}

		if err := r.queries.MarkNotificationJobSent(ctx, db, sqlc.MarkNotificationJobSentParams{
			ID:        job.ID,
			UpdatedAt: pgconv.TimeToPgtype(now),
		}); err != nil {
			return sent, infra.WrapRepoErr("failed to mark notification job sent", err)
		}
		sent++
	}
	return sent, nil
}
