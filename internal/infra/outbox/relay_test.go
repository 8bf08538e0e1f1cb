//go:build unit

package outbox

import (
	"context"
	"testing"
	"time"

	"store-reservation/internal/infra"
	sqlc "store-reservation/internal/infra/sqlc/generated"
	"store-reservation/internal/pkg/clock"
	"store-reservation/internal/pkg/pgconv"
	outboxmock "store-reservation/tests/mock/outbox"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var relayNow = time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)

func newTestRelay(ctrl *gomock.Controller) (*Relay, *outboxmock.MockJobQueries, *outboxmock.MockPublisher) {
	q := outboxmock.NewMockJobQueries(ctrl)
	pub := outboxmock.NewMockPublisher(ctrl)
	return NewRelay(nil, q, pub, clock.NewMockClock(relayNow), time.Second, 10), q, pub
}

func TestRelayDispatch(t *testing.T) {
	ctx := context.Background()
	claim := sqlc.ClaimDueNotificationJobsParams{RunAt: pgconv.TimeToPgtype(relayNow), Limit: 10}

	t.Run("publishes every claimed job by topic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r, q, pub := newTestRelay(ctrl)
		jobs := []sqlc.NotificationJob{
			{ID: 1, Topic: "reservation.created", Payload: []byte(`{"reservationId":1}`)},
			{ID: 2, Topic: "reservation.approved", Payload: []byte(`{"reservationId":1}`)},
		}
		q.EXPECT().ClaimDueNotificationJobs(gomock.Any(), gomock.Any(), claim).Return(jobs, nil)
		gomock.InOrder(
			pub.EXPECT().Publish(gomock.Any(), "reservation.created", jobs[0].Payload).Return(nil),
			q.EXPECT().MarkNotificationJobSent(gomock.Any(), gomock.Any(), sqlc.MarkNotificationJobSentParams{ID: 1, UpdatedAt: pgconv.TimeToPgtype(relayNow)}).Return(nil),
			pub.EXPECT().Publish(gomock.Any(), "reservation.approved", jobs[1].Payload).Return(nil),
			q.EXPECT().MarkNotificationJobSent(gomock.Any(), gomock.Any(), sqlc.MarkNotificationJobSentParams{ID: 2, UpdatedAt: pgconv.TimeToPgtype(relayNow)}).Return(nil),
		)

		sent, err := r.dispatch(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, sent)
	})

	t.Run("failed publish is scheduled for retry and the batch continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r, q, pub := newTestRelay(ctrl)
		jobs := []sqlc.NotificationJob{
			{ID: 1, Topic: "reservation.visited", Attempts: 2},
			{ID: 2, Topic: "reservation.refused"},
		}
		q.EXPECT().ClaimDueNotificationJobs(gomock.Any(), gomock.Any(), claim).Return(jobs, nil)
		pub.EXPECT().Publish(gomock.Any(), "reservation.visited", gomock.Any()).Return(assert.AnError)
		q.EXPECT().MarkNotificationJobFailed(gomock.Any(), gomock.Any(), sqlc.MarkNotificationJobFailedParams{
			LastError:   pgtype.Text{String: assert.AnError.Error(), Valid: true},
			MaxAttempts: MaxAttempts,
			RetryAt:     pgconv.TimeToPgtype(relayNow.Add(retryDelay)),
			UpdatedAt:   pgconv.TimeToPgtype(relayNow),
			ID:          1,
		}).Return(nil)
		pub.EXPECT().Publish(gomock.Any(), "reservation.refused", gomock.Any()).Return(nil)
		q.EXPECT().MarkNotificationJobSent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		sent, err := r.dispatch(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("claim failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r, q, _ := newTestRelay(ctrl)
		q.EXPECT().ClaimDueNotificationJobs(gomock.Any(), gomock.Any(), claim).Return(nil, assert.AnError)

		_, err := r.dispatch(ctx, nil)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
