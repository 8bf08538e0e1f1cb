//go:build unit

package response

import (
	"testing"
	"time"

	"store-reservation/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFromReservationView(t *testing.T) {
	view := &queries.ReservationView{
		ID:              100,
		MemberID:        "u1",
		MemberName:      "Kim Minsu",
		Phone:           "010-1234-5678",
		StoreID:         5,
		StoreName:       "Hanok Table",
		StoreOwnerID:    "owner1",
		Address:         "12 Insadong-gil, Seoul",
		Contact:         "02-123-4567",
		ReservationDate: time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC),
		Status:          "APPROVAL",
		Visited:         true,
	}

	got, err := FromReservationView(view, time.FixedZone("KST", 9*60*60))
	require.NoError(t, err)

	want := &ReservationResponse{
		ID:              100,
		MemberID:        "u1",
		MemberName:      "Kim Minsu",
		Phone:           "010-1234-5678",
		StoreID:         5,
		StoreName:       "Hanok Table",
		Address:         "12 Insadong-gil, Seoul",
		Contact:         "02-123-4567",
		ReservationDate: "2030-01-01T18:00:00",
		Status:          "APPROVAL",
		Visited:         true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromReservationView() mismatch (-want +got):\n%s", diff)
	}
}
