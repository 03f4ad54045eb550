package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/internal/domains/reservation/model"
	"hotel/internal/domains/reservation/repository"
)

func TestOverlapFilter(t *testing.T) {
	stay, err := model.ParseDateRange("2025-06-01", "2025-06-05")
	require.NoError(t, err)

	excluded := int64(9)

	tests := []struct {
		name        string
		excludeID   *int64
		wantExclude bool
	}{
		{name: "without exclusion", excludeID: nil},
		{name: "with exclusion", excludeID: &excluded, wantExclude: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := repository.OverlapFilter(3, stay, tt.excludeID)
			where, args := filter.GetWhereClause()

			assert.Contains(t, where, "reservations.room_id = :room_id")
			assert.Contains(t, where, model.ConflictPredicate(model.TableName))
			assert.Equal(t, int64(3), args["room_id"])
			assert.Equal(t, stay.Start, args[model.ArgStayCheckIn])
			assert.Equal(t, stay.End, args[model.ArgStayCheckOut])

			if tt.wantExclude {
				assert.Contains(t, where, "reservations.id != :exclude_id")
				assert.Equal(t, excluded, args["exclude_id"])
			} else {
				assert.NotContains(t, where, "exclude_id")
			}
		})
	}
}
