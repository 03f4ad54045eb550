package model_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/internal/domains/reservation/model"
	"hotel/shared/failure"
)

func stay(t *testing.T, checkIn, checkOut string) model.DateRange {
	t.Helper()

	r, err := model.ParseDateRange(checkIn, checkOut)
	require.NoError(t, err)

	return r
}

func TestDateRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]string
		b    [2]string
		want bool
	}{
		{name: "touching at check-out", a: [2]string{"2025-06-01", "2025-06-05"}, b: [2]string{"2025-06-05", "2025-06-08"}, want: false},
		{name: "touching at check-in", a: [2]string{"2025-06-05", "2025-06-08"}, b: [2]string{"2025-06-01", "2025-06-05"}, want: false},
		{name: "disjoint", a: [2]string{"2025-06-01", "2025-06-03"}, b: [2]string{"2025-06-10", "2025-06-12"}, want: false},
		{name: "partial overlap", a: [2]string{"2025-06-01", "2025-06-05"}, b: [2]string{"2025-06-04", "2025-06-06"}, want: true},
		{name: "contained", a: [2]string{"2025-06-01", "2025-06-10"}, b: [2]string{"2025-06-03", "2025-06-04"}, want: true},
		{name: "identical", a: [2]string{"2025-06-01", "2025-06-02"}, b: [2]string{"2025-06-01", "2025-06-02"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := stay(t, tt.a[0], tt.a[1])
			b := stay(t, tt.b[0], tt.b[1])

			assert.Equal(t, tt.want, a.Overlaps(b))
			assert.Equal(t, tt.want, b.Overlaps(a))
		})
	}
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name       string
		checkIn    string
		checkOut   string
		wantNights int
		wantErr    bool
	}{
		{name: "three nights", checkIn: "2025-06-01", checkOut: "2025-06-04", wantNights: 3},
		{name: "across month end", checkIn: "2025-01-30", checkOut: "2025-02-02", wantNights: 3},
		{name: "across leap day", checkIn: "2024-02-28", checkOut: "2024-03-01", wantNights: 2},
		{name: "five centuries", checkIn: "1900-01-01", checkOut: "2400-01-01", wantNights: 182621},
		{name: "whole calendar", checkIn: "0001-01-01", checkOut: "9999-12-31", wantNights: 3652058},
		{name: "same day", checkIn: "2025-06-01", checkOut: "2025-06-01", wantErr: true},
		{name: "reversed", checkIn: "2025-06-05", checkOut: "2025-06-01", wantErr: true},
		{name: "malformed check-in", checkIn: "06/01/2025", checkOut: "2025-06-04", wantErr: true},
		{name: "malformed check-out", checkIn: "2025-06-01", checkOut: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := model.ParseDateRange(tt.checkIn, tt.checkOut)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantNights, r.Nights())
		})
	}
}

func TestNewDateRange_TruncatesToDates(t *testing.T) {
	start := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)

	r, err := model.NewDateRange(start, end)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, 2, r.Nights())
	assert.Equal(t, "[2025-06-01, 2025-06-03)", r.String())
}

func TestConflictPredicate(t *testing.T) {
	predicate := model.ConflictPredicate("r")

	assert.True(t, strings.Contains(predicate, "r.check_in_date < :stay_check_out"))
	assert.True(t, strings.Contains(predicate, "r.check_out_date > :stay_check_in"))
	assert.True(t, strings.Contains(predicate, "r.status IN ('Confirmed', 'CheckedIn')"))
	assert.True(t, strings.Contains(predicate, "r.deleted_at IS NULL"))

	args := stay(t, "2025-06-01", "2025-06-05").ConflictArgs()
	assert.Len(t, args, 2)
	assert.Contains(t, args, model.ArgStayCheckIn)
	assert.Contains(t, args, model.ArgStayCheckOut)
}
