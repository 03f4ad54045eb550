package model

import (
	"fmt"
	"strings"
	"time"

	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
)

const (
	ArgStayCheckIn  = "stay_check_in"
	ArgStayCheckOut = "stay_check_out"

	secondsPerDay = 24 * 60 * 60
)

// DateRange is a half-open [Start, End) interval of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: timezone.DateOf(start), End: timezone.DateOf(end)}
	if !r.End.After(r.Start) {
		return r, failure.BadRequestFromString("check-out date must be after check-in date")
	}

	return r, nil
}

// ParseDateRange parses YYYY-MM-DD check-in and check-out values.
func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	start, err := timezone.ParseDate(checkIn)
	if err != nil {
		return DateRange{}, failure.BadRequestFromString(fmt.Sprintf("invalid check-in date %q", checkIn))
	}

	end, err := timezone.ParseDate(checkOut)
	if err != nil {
		return DateRange{}, failure.BadRequestFromString(fmt.Sprintf("invalid check-out date %q", checkOut))
	}

	return NewDateRange(start, end)
}

// Nights counts whole days between the UTC-midnight bounds without going through time.Duration.
func (r DateRange) Nights() int {
	return int((r.End.Unix() - r.Start.Unix()) / secondsPerDay)
}

// Overlaps is true when the ranges share at least one night. Touching ranges do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start.Format(constant.DateOnlyFormat), r.End.Format(constant.DateOnlyFormat))
}

// ConflictPredicate is the store-side form of Overlaps restricted to reservations that hold
// their room. Every conflict query is built from it; alias names the reservations relation.
func ConflictPredicate(alias string) string {
	statuses := make([]string, len(ActiveStatuses))
	for i, s := range ActiveStatuses {
		statuses[i] = fmt.Sprintf("'%s'", s)
	}

	return fmt.Sprintf(
		"%[1]s.%[2]s < :%[3]s AND %[1]s.%[4]s > :%[5]s AND %[1]s.%[6]s IN (%[7]s) AND %[1]s.%[8]s IS NULL",
		alias, FieldCheckInDate, ArgStayCheckOut, FieldCheckOutDate, ArgStayCheckIn,
		FieldStatus, strings.Join(statuses, ", "), constant.FieldDeletedAt,
	)
}

func (r DateRange) ConflictArgs() map[string]any {
	return map[string]any{
		ArgStayCheckIn:  r.Start,
		ArgStayCheckOut: r.End,
	}
}
