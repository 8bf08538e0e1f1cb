//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"store-reservation/internal/domain/member"
	"store-reservation/internal/domain/reservation"
	"store-reservation/internal/pkg/errs"
	"store-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scheduled = builder.Scheduled

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	now    time.Time
	errIs  error
}

func TestNewReservation(t *testing.T) {
	t.Run("future slot starts WAITING", func(t *testing.T) {
		now := scheduled.Add(-24 * time.Hour)
		r, err := reservation.NewReservation("u1", 5, scheduled, now)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusWaiting, r.Status())
		assert.False(t, r.Visited())
		assert.Equal(t, scheduled, r.Date())
		assert.Equal(t, int64(5), r.StoreID())
	})

	t.Run("slot equal to now is rejected", func(t *testing.T) {
		_, err := reservation.NewReservation("u1", 5, scheduled, scheduled)
		assert.ErrorIs(t, err, errs.ErrCannotReservePastDate)
	})

	t.Run("past slot is rejected", func(t *testing.T) {
		_, err := reservation.NewReservation("u1", 5, scheduled, scheduled.Add(time.Second))
		assert.ErrorIs(t, err, errs.ErrCannotReservePastDate)
	})
}

func TestReservation_Reschedule(t *testing.T) {
	newDate := scheduled.Add(24 * time.Hour)

	runCases := func(t *testing.T, cases []testCase) {
		t.Helper()
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewReservationBuilder()
				if tc.mutate != nil {
					b.With(tc.mutate)
				}
				r := b.BuildDomain()
				err := r.Reschedule("u1", newDate, tc.now)
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					assert.Equal(t, scheduled, r.Date(), "date must not change on failure")
					return
				}
				require.NoError(t, err)
				assert.Equal(t, newDate, r.Date())
				assert.Equal(t, reservation.StatusWaiting, r.Status())
			})
		}
	}

	runCases(t, []testCase{
		{name: "well before cutoff", now: scheduled.Add(-2 * time.Hour)},
		{name: "exactly at cutoff", now: scheduled.Add(-30 * time.Minute)},
		{
			name:  "one second past cutoff",
			now:   scheduled.Add(-30*time.Minute + time.Second),
			errIs: errs.ErrCannotUpdateReservation,
		},
		{
			name:   "visited reservation is frozen",
			mutate: func(b *builder.ReservationBuilder) { b.VisitedApproved() },
			now:    scheduled.Add(-5 * time.Hour),
			errIs:  errs.ErrCannotUpdateReservation,
		},
		{
			name:   "approved reservation goes back to WAITING",
			mutate: func(b *builder.ReservationBuilder) { b.Approved() },
			now:    scheduled.Add(-5 * time.Hour),
		},
		{
			name:   "someone else's reservation",
			mutate: func(b *builder.ReservationBuilder) { b.MemberID = "u2" },
			now:    scheduled.Add(-5 * time.Hour),
			errIs:  errs.ErrUnmatchReservationUser,
		},
	})

	t.Run("new date in the past", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()
		now := scheduled.Add(-5 * time.Hour)
		err := r.Reschedule("u1", now.Add(-time.Minute), now)
		assert.ErrorIs(t, err, errs.ErrCannotReservePastDate)
	})
}

func TestReservation_EnsureCancelableBy(t *testing.T) {
	cases := []testCase{
		{name: "before cutoff", now: scheduled.Add(-31 * time.Minute)},
		{name: "after cutoff", now: scheduled.Add(-29 * time.Minute), errIs: errs.ErrCannotCancelReservation},
		{name: "after the slot", now: scheduled.Add(time.Hour), errIs: errs.ErrCannotCancelReservation},
		{
			name:   "visited",
			mutate: func(b *builder.ReservationBuilder) { b.VisitedApproved() },
			now:    scheduled.Add(-3 * time.Hour),
			errIs:  errs.ErrCannotCancelReservation,
		},
		{
			name:   "not the owner",
			mutate: func(b *builder.ReservationBuilder) { b.MemberID = "u2" },
			now:    scheduled.Add(-3 * time.Hour),
			errIs:  errs.ErrUnmatchReservationUser,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			err := b.BuildDomain().EnsureCancelableBy("u1", tc.now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReservation_Decisions(t *testing.T) {
	now := scheduled.Add(-24 * time.Hour)

	testCases := []struct {
		name    string
		from    reservation.Status
		approve bool
		want    reservation.Status
		errIs   error
	}{
		{name: "approve waiting", from: reservation.StatusWaiting, approve: true, want: reservation.StatusApproval},
		{name: "refuse waiting", from: reservation.StatusWaiting, approve: false, want: reservation.StatusRefusal},
		{name: "re-approve is idempotent", from: reservation.StatusApproval, approve: true, want: reservation.StatusApproval},
		{name: "re-refuse is idempotent", from: reservation.StatusRefusal, approve: false, want: reservation.StatusRefusal},
		{name: "refusal cannot be approved", from: reservation.StatusRefusal, approve: true, errIs: errs.ErrCannotChangeReservationStatus},
		{name: "approval cannot be refused", from: reservation.StatusApproval, approve: false, errIs: errs.ErrCannotChangeReservationStatus},
		{name: "reviewed cannot be approved", from: reservation.StatusReviewed, approve: true, errIs: errs.ErrCannotChangeReservationStatus},
		{name: "reviewed cannot be refused", from: reservation.StatusReviewed, approve: false, errIs: errs.ErrCannotChangeReservationStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Status = tc.from }).BuildDomain()
			var err error
			if tc.approve {
				err = r.Approve(now)
			} else {
				err = r.Refuse(now)
			}
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.from, r.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.Status())
		})
	}
}

func TestReservation_ConfirmVisit(t *testing.T) {
	holder := builder.NewMemberBuilder().Identity()

	cases := []struct {
		testCase
		presented member.Identity
	}{
		{testCase: testCase{name: "ten minutes early", mutate: approved, now: scheduled.Add(-10 * time.Minute)}, presented: holder},
		{testCase: testCase{name: "on time", mutate: approved, now: scheduled}, presented: holder},
		{testCase: testCase{name: "ten minutes late", mutate: approved, now: scheduled.Add(10 * time.Minute)}, presented: holder},
		{testCase: testCase{name: "seconds are truncated at the late edge", mutate: approved, now: scheduled.Add(10*time.Minute + 59*time.Second)}, presented: holder},
		{
			testCase:  testCase{name: "eleven minutes early", mutate: approved, now: scheduled.Add(-11 * time.Minute), errIs: errs.ErrArriveTooEarly},
			presented: holder,
		},
		{
			testCase:  testCase{name: "truncation pushes 10m59s early outside", mutate: approved, now: scheduled.Add(-10*time.Minute - 59*time.Second), errIs: errs.ErrArriveTooEarly},
			presented: holder,
		},
		{
			testCase:  testCase{name: "eleven minutes late", mutate: approved, now: scheduled.Add(11 * time.Minute), errIs: errs.ErrArriveTooLate},
			presented: holder,
		},
		{
			testCase:  testCase{name: "waiting reservation", now: scheduled, errIs: errs.ErrNotApprovedReservation},
			presented: holder,
		},
		{
			testCase: testCase{
				name:   "already visited",
				mutate: func(b *builder.ReservationBuilder) { b.VisitedApproved() },
				now:    scheduled,
				errIs:  errs.ErrAlreadyVisitedReservation,
			},
			presented: holder,
		},
		{
			testCase:  testCase{name: "wrong phone", mutate: approved, now: scheduled, errIs: errs.ErrUnmatchReservedInformation},
			presented: member.Identity{UserID: holder.UserID, Name: holder.Name, Phone: "010-0000-0000"},
		},
		{
			testCase:  testCase{name: "identity is checked before status", now: scheduled, errIs: errs.ErrUnmatchReservedInformation},
			presented: member.Identity{UserID: "u2", Name: holder.Name, Phone: holder.Phone},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			r := b.BuildDomain()
			err := r.ConfirmVisit(tc.presented, holder, tc.now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, r.Visited())
			assert.Equal(t, reservation.StatusApproval, r.Status())
		})
	}
}

func TestReservation_AttachReview(t *testing.T) {
	now := scheduled.Add(time.Hour)

	cases := []testCase{
		{name: "visited approval", mutate: func(b *builder.ReservationBuilder) { b.VisitedApproved() }},
		{name: "approved but not visited", mutate: approved, errIs: errs.ErrNotUsedReservation},
		{name: "waiting", errIs: errs.ErrNotUsedReservation},
		{name: "refused", mutate: func(b *builder.ReservationBuilder) { b.Status = reservation.StatusRefusal }, errIs: errs.ErrNotUsedReservation},
		{
			name: "already reviewed",
			mutate: func(b *builder.ReservationBuilder) {
				b.Status = reservation.StatusReviewed
				b.Visited = true
			},
			errIs: errs.ErrAlreadyReviewedReservation,
		},
		{
			name: "someone else's reservation",
			mutate: func(b *builder.ReservationBuilder) {
				b.VisitedApproved()
				b.MemberID = "u2"
			},
			errIs: errs.ErrUnmatchReservationUser,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			r := b.BuildDomain()
			err := r.AttachReview("u1", now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, reservation.StatusReviewed, r.Status())
		})
	}
}

func TestParseStatus(t *testing.T) {
	st, err := reservation.ParseStatus("APPROVAL")
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusApproval, st)

	_, err = reservation.ParseStatus("CANCELLED")
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
}

func approved(b *builder.ReservationBuilder) { b.Approved() }
