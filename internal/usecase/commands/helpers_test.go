//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"store-reservation/internal/infra"
	"store-reservation/internal/pkg/clock"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase/commands"
	"store-reservation/internal/usecase/shared"
	"store-reservation/tests/common/builder"
	sharedmock "store-reservation/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// txMocks runs every unit of work inline against one mocked transaction.
type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	members       *sharedmock.MockMemberRepository
	stores        *sharedmock.MockStoreRepository
	reservations  *sharedmock.MockReservationRepository
	reviews       *sharedmock.MockReviewRepository
	notifications *sharedmock.MockNotificationRepository
	cache         *sharedmock.MockStoreCacheInvalidator
	clock         *clock.MockClock
}

func newTxMocks(ctrl *gomock.Controller, now time.Time) *txMocks {
	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		members:       sharedmock.NewMockMemberRepository(ctrl),
		stores:        sharedmock.NewMockStoreRepository(ctrl),
		reservations:  sharedmock.NewMockReservationRepository(ctrl),
		reviews:       sharedmock.NewMockReviewRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		cache:         sharedmock.NewMockStoreCacheInvalidator(ctrl),
		clock:         clock.NewMockClock(now),
	}
	tx := sharedmock.NewMockTx(ctrl)
	tx.EXPECT().Members().Return(m.members).AnyTimes()
	tx.EXPECT().Stores().Return(m.stores).AnyTimes()
	tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	tx.EXPECT().Reviews().Return(m.reviews).AnyTimes()
	tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	return m
}

func notFoundErr() error {
	return infra.RepositoryError{Kind: infra.KindNotFound}
}

func duplicateErr(constraint string) error {
	return infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: constraint}
}

// assertCode checks err carries the catalog code, directly or as a mark.
func assertCode(t *testing.T, err error, want *errs.Error) {
	t.Helper()
	require.Error(t, err)
	assert.Truef(t, errs.Is(err, want), "want %s, got %v", want.Code, err)
}

// decodeEvent asserts the payload of an enqueued reservation event.
func decodeEvent(t *testing.T, payload []byte) commands.ReservationEvent {
	t.Helper()
	var ev commands.ReservationEvent
	require.NoError(t, json.Unmarshal(payload, &ev))
	return ev
}

// Two days before builder.Scheduled.
var now = builder.Scheduled.Add(-48 * time.Hour)
