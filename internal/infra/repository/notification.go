package repository

import (
	"context"
	"time"

	"store-reservation/internal/infra"
	sqlc "store-reservation/internal/infra/sqlc/generated"
	"store-reservation/internal/pkg/pgconv"
)

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/repository/notification_mock.go -package=repositorymock

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Topic:     topic,
		Payload:   payload,
		RunAt:     pgconv.TimeToPgtype(runAt),
		CreatedAt: pgconv.TimeToPgtype(runAt),
	}

	if err := r.queries.CreateNotificationJob(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
